package hyprconf

import (
	"sort"
	"strings"
)

// Get looks up a key inside a section. The section is a dot-separated path
// ("decoration.blur"); def is returned when any path segment or the key is
// absent.
func (e *Editor) Get(section, key, def string) string {
	sec, ok := e.sections[section]
	if !ok {
		return def
	}
	if v, ok := sec[key]; ok {
		return v
	}
	return def
}

// GetTop looks up a key/value pair that appears outside any section.
func (e *Editor) GetTop(key, def string) string {
	return e.Get(topBucket, key, def)
}

// Sections returns the dot-joined paths of all known sections, sorted. The
// synthetic top-level bucket is omitted.
func (e *Editor) Sections() []string {
	out := make([]string, 0, len(e.sections))
	for k := range e.sections {
		if k == topBucket {
			continue
		}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SectionKeys returns the keys of one section, sorted. Use the empty string
// for the top-level bucket.
func (e *Editor) SectionKeys(section string) []string {
	sec, ok := e.sections[section]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(sec))
	for k := range sec {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Binds returns a copy of the parsed bind directives.
func (e *Editor) Binds() []Bind {
	return append([]Bind(nil), e.binds...)
}

// ExecOnce returns a copy of the parsed exec-once commands.
func (e *Editor) ExecOnce() []string {
	return append([]string(nil), e.execOnce...)
}

// Monitors returns a copy of the parsed monitor directives.
func (e *Editor) Monitors() []string {
	return append([]string(nil), e.monitors...)
}

// Gestures returns a copy of the parsed gesture directives.
func (e *Editor) Gestures() []Gesture {
	return append([]Gesture(nil), e.gestures...)
}

// Animations returns a copy of the parsed animation directives.
func (e *Editor) Animations() []Animation {
	return append([]Animation(nil), e.animations...)
}

// Beziers returns a copy of the parsed bezier definitions.
func (e *Editor) Beziers() []Bezier {
	return append([]Bezier(nil), e.beziers...)
}

// Variables returns the variable definitions in their original file order.
func (e *Editor) Variables() []Variable {
	out := make([]Variable, 0, len(e.varOrder))
	for _, name := range e.varOrder {
		out = append(out, Variable{Name: name, Value: e.variables[name]})
	}
	return out
}

// Variable returns the value of a single $name variable.
func (e *Editor) Variable(name string) (string, bool) {
	v, ok := e.variables[name]
	return v, ok
}

// Diagnostics returns the lines the parser could not classify on the last
// parse, for callers that want strict-mode reporting.
func (e *Editor) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), e.diags...)
}

// Resolve substitutes every known $name variable in text with its value.
// Longer names are substituted first so a variable that is a prefix of
// another ($mod vs $modShift) cannot partially match. Single pass: values
// containing further $name tokens are not expanded.
func (e *Editor) Resolve(text string) string {
	if text == "" || !strings.Contains(text, "$") {
		return text
	}
	names := make([]string, 0, len(e.variables))
	for name := range e.variables {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		text = strings.ReplaceAll(text, name, e.variables[name])
	}
	return text
}
