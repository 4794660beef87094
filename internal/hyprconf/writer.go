package hyprconf

import "strings"

// insertAt splices newLines into lines before index idx.
func insertAt(lines []string, idx int, newLines []string) []string {
	out := make([]string, 0, len(lines)+len(newLines))
	out = append(out, lines[:idx]...)
	out = append(out, newLines...)
	out = append(out, lines[idx:]...)
	return out
}

// removeMatching drops every non-comment line whose trimmed form satisfies
// match. Comment lines always survive.
func removeMatching(lines []string, match func(trimmed string) bool) []string {
	out := make([]string, 0, len(lines))
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if !strings.HasPrefix(trimmed, "#") && match(trimmed) {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// SetValue updates the first key = value line found at exactly the given
// section path, preserving its indentation and any trailing inline comment.
// When no such line exists, a new 4-space-indented line is inserted just
// before the section's closing brace. A missing section is a silent no-op;
// SetValue never fails.
func (e *Editor) SetValue(section, key, value string) {
	target := splitSectionPath(section)

	lineIdx := -1
	var replacement string
	walkLines(e.lines, func(i int, raw string, path []string) bool {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") ||
			strings.HasSuffix(trimmed, "{") || trimmed == "}" {
			return true
		}
		if !pathEquals(path, target) {
			return true
		}
		idx := strings.Index(trimmed, "=")
		if idx <= 0 || strings.TrimSpace(trimmed[:idx]) != key {
			return true
		}
		indent := raw[:len(raw)-len(strings.TrimLeft(raw, " \t"))]
		rest := strings.TrimSpace(trimmed[idx+1:])
		comment := ""
		if c := strings.Index(rest, "#"); c >= 0 {
			comment = " " + rest[c:]
		}
		lineIdx = i
		replacement = indent + key + " = " + value + comment
		return false
	})

	if lineIdx >= 0 {
		e.lines[lineIdx] = replacement
	} else if !e.insertInSection(target, key, value) {
		return
	}

	sec := sectionKey(target)
	if _, ok := e.sections[sec]; !ok {
		e.sections[sec] = make(map[string]string)
	}
	e.sections[sec][key] = stripInlineComment(value)
}

// insertInSection adds a new key = value line immediately before the
// closing brace of the target section. Reports whether an insertion point
// was found.
func (e *Editor) insertInSection(target []string, key, value string) bool {
	idx := -1
	walkLines(e.lines, func(i int, raw string, path []string) bool {
		if strings.TrimSpace(raw) == "}" && pathEquals(path, target) {
			idx = i
			return false
		}
		return true
	})
	if idx < 0 {
		return false
	}
	e.lines = insertAt(e.lines, idx, []string{"    " + key + " = " + value})
	return true
}

func isBindLine(trimmed string) bool {
	for _, kw := range bindKeywords {
		if _, ok := directiveValue(trimmed, kw); ok {
			return true
		}
	}
	return false
}

func formatBind(b Bind) string {
	btype := b.Type
	if btype == "" {
		btype = "bind"
	}
	params := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(b.Params), ","))
	if params != "" {
		return btype + " = " + b.Mods + ", " + b.Key + ", " + b.Dispatcher + ", " + params
	}
	return btype + " = " + b.Mods + ", " + b.Key + ", " + b.Dispatcher
}

// SetBinds replaces every bind-family line with the given list. New lines
// are inserted after the last keybindings marker comment, or at the end of
// the file when no marker exists.
func (e *Editor) SetBinds(binds []Bind) {
	e.binds = append([]Bind(nil), binds...)

	kept := removeMatching(e.lines, isBindLine)

	insertIdx := len(kept)
	for i, line := range kept {
		if strings.Contains(line, "KEYBINDINGS") || strings.Contains(strings.ToLower(line), "keybind") {
			insertIdx = i + 1
		}
	}

	formatted := make([]string, 0, len(binds))
	for _, b := range binds {
		formatted = append(formatted, formatBind(b))
	}
	e.lines = insertAt(kept, insertIdx, formatted)
}

// SetExecOnce replaces every exec-once line with the given commands,
// inserted after the last AUTOSTART marker comment or at the end.
func (e *Editor) SetExecOnce(commands []string) {
	e.execOnce = append([]string(nil), commands...)

	kept := removeMatching(e.lines, func(trimmed string) bool {
		_, ok := directiveValue(trimmed, "exec-once")
		return ok
	})

	insertIdx := len(kept)
	for i, line := range kept {
		if strings.Contains(line, "AUTOSTART") {
			insertIdx = i + 1
		}
	}

	formatted := make([]string, 0, len(commands))
	for _, cmd := range commands {
		formatted = append(formatted, "exec-once = "+cmd)
	}
	e.lines = insertAt(kept, insertIdx, formatted)
}

// SetMonitors replaces every monitor line. New lines go right after the
// first MONITOR marker, or at the top of the file.
func (e *Editor) SetMonitors(monitors []string) {
	e.monitors = append([]string(nil), monitors...)

	kept := removeMatching(e.lines, func(trimmed string) bool {
		_, ok := directiveValue(trimmed, "monitor")
		return ok
	})

	insertIdx := 0
	for i, line := range kept {
		if strings.Contains(strings.ToUpper(line), "MONITOR") {
			insertIdx = i + 1
			break
		}
	}

	formatted := make([]string, 0, len(monitors))
	for _, m := range monitors {
		formatted = append(formatted, "monitor="+m)
	}
	e.lines = insertAt(kept, insertIdx, formatted)
}

// SetVariables replaces every $name = value line with the given
// definitions, in order, inserted before the first non-comment content so
// variables stay at the top of the file under any header comments.
func (e *Editor) SetVariables(vars []Variable) {
	e.variables = make(map[string]string, len(vars))
	e.varOrder = make([]string, 0, len(vars))
	for _, v := range vars {
		name := v.Name
		if !strings.HasPrefix(name, "$") {
			name = "$" + name
		}
		if _, seen := e.variables[name]; !seen {
			e.varOrder = append(e.varOrder, name)
		}
		e.variables[name] = v.Value
	}

	kept := removeMatching(e.lines, func(trimmed string) bool {
		_, _, ok := variableLine(trimmed)
		return ok
	})

	insertIdx := 0
	for i, line := range kept {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			insertIdx = i
			break
		}
	}

	formatted := make([]string, 0, len(e.varOrder))
	for _, name := range e.varOrder {
		formatted = append(formatted, name+" = "+e.variables[name])
	}
	e.lines = insertAt(kept, insertIdx, formatted)
}

func formatGesture(g Gesture) string {
	fingers := g.Fingers
	if fingers == "" {
		fingers = "3"
	}
	direction := g.Direction
	if direction == "" {
		direction = "horizontal"
	}
	action := g.Action
	if action == "" {
		action = "workspace"
	}
	if g.Params != "" {
		return "gesture = " + fingers + ", " + direction + ", " + action + ", " + g.Params
	}
	return "gesture = " + fingers + ", " + direction + ", " + action
}

// SetGestures replaces every gesture line, inserting after the last line
// mentioning gestures or at the end.
func (e *Editor) SetGestures(gestures []Gesture) {
	e.gestures = append([]Gesture(nil), gestures...)

	kept := removeMatching(e.lines, func(trimmed string) bool {
		_, ok := directiveValue(trimmed, "gesture")
		return ok
	})

	insertIdx := len(kept)
	for i, line := range kept {
		if strings.Contains(strings.ToLower(line), "gesture") {
			insertIdx = i + 1
		}
	}

	formatted := make([]string, 0, len(gestures))
	for _, g := range gestures {
		formatted = append(formatted, formatGesture(g))
	}
	e.lines = insertAt(kept, insertIdx, formatted)
}

func formatAnimation(a Animation) string {
	onoff := a.OnOff
	if onoff == "" {
		onoff = "1"
	}
	speed := a.Speed
	if speed == "" {
		speed = "1"
	}
	curve := a.Curve
	if curve == "" {
		curve = "default"
	}
	if a.Style != "" {
		return "animation = " + a.Name + ", " + onoff + ", " + speed + ", " + curve + ", " + a.Style
	}
	return "animation = " + a.Name + ", " + onoff + ", " + speed + ", " + curve
}

func formatBezier(b Bezier) string {
	x0, y0, x1, y1 := b.X0, b.Y0, b.X1, b.Y1
	if x0 == "" {
		x0 = "0"
	}
	if y0 == "" {
		y0 = "0"
	}
	if x1 == "" {
		x1 = "1"
	}
	if y1 == "" {
		y1 = "1"
	}
	return "bezier = " + b.Name + ", " + x0 + ", " + y0 + ", " + x1 + ", " + y1
}

// SetAnimations replaces the animation and bezier lines inside the
// animations block. Unlike the other directive writers the insertion point
// is structural: beziers then animations are injected right after the
// "animations {" line, and old animation/bezier lines are stripped from
// that section's span only, tracked with a nested-brace depth counter.
func (e *Editor) SetAnimations(animations []Animation, beziers []Bezier) {
	e.animations = append([]Animation(nil), animations...)
	e.beziers = append([]Bezier(nil), beziers...)

	out := make([]string, 0, len(e.lines))
	inAnimations := false
	depth := 0

	for _, raw := range e.lines {
		trimmed := strings.TrimSpace(raw)

		if !inAnimations && trimmed == "animations {" {
			inAnimations = true
			depth = 1
			out = append(out, raw)
			for _, b := range beziers {
				out = append(out, "    "+formatBezier(b))
			}
			for _, a := range animations {
				out = append(out, "    "+formatAnimation(a))
			}
			continue
		}

		if inAnimations {
			if strings.HasSuffix(trimmed, "{") {
				depth++
			}
			if trimmed == "}" {
				depth--
				if depth == 0 {
					inAnimations = false
					out = append(out, raw)
					continue
				}
			}
			if _, ok := directiveValue(trimmed, "animation"); ok {
				continue
			}
			if _, ok := directiveValue(trimmed, "bezier"); ok {
				continue
			}
		}

		out = append(out, raw)
	}

	e.lines = out
}

// SetKeyboardLayouts sets input.kb_layout from a list of layout codes.
func (e *Editor) SetKeyboardLayouts(layouts []string) {
	e.SetValue("input", "kb_layout", strings.Join(layouts, ", "))
}

// SetKeyboardOptions sets input.kb_options.
func (e *Editor) SetKeyboardOptions(options string) {
	e.SetValue("input", "kb_options", options)
}
