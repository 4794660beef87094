package hyprconf

import "strings"

// bindKeywords are the accepted members of the bind directive family,
// longest first so "bindel" is not claimed by the "bind" prefix.
var bindKeywords = []string{"bindel", "bindl", "bindm", "bind"}

// directiveValue matches lines of the form "<keyword> = <rest>" and returns
// the trimmed right-hand side.
func directiveValue(trimmed, keyword string) (string, bool) {
	if !strings.HasPrefix(trimmed, keyword) {
		return "", false
	}
	rest := strings.TrimLeft(trimmed[len(keyword):], " \t")
	if !strings.HasPrefix(rest, "=") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

// variableLine matches "$name = value" definitions. The returned name
// includes the sigil.
func variableLine(trimmed string) (name, value string, ok bool) {
	if !strings.HasPrefix(trimmed, "$") {
		return "", "", false
	}
	idx := strings.Index(trimmed, "=")
	if idx < 0 {
		return "", "", false
	}
	name = strings.TrimSpace(trimmed[1:idx])
	if name == "" {
		return "", "", false
	}
	for _, r := range name {
		if r != '_' && (r < '0' || r > '9') && (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return "", "", false
		}
	}
	return "$" + name, strings.TrimSpace(trimmed[idx+1:]), true
}

// splitFields comma-splits a directive value into at most n fields, trimming
// each, so the final field may itself contain commas.
func splitFields(value string, n int) []string {
	parts := strings.SplitN(value, ",", n)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// fieldOr returns parts[i], or def when the field is absent.
func fieldOr(parts []string, i int, def string) string {
	if i < len(parts) {
		return parts[i]
	}
	return def
}

// stripInlineComment removes a trailing "# ..." comment from a value.
func stripInlineComment(value string) string {
	if idx := strings.Index(value, "#"); idx >= 0 {
		return strings.TrimSpace(value[:idx])
	}
	return value
}

// parse re-derives the structured model from the line buffer. It never
// fails: lines that match nothing are skipped and recorded as diagnostics.
func (e *Editor) parse() {
	e.sections = make(map[string]map[string]string)
	e.binds = nil
	e.execOnce = nil
	e.variables = make(map[string]string)
	e.varOrder = nil
	e.monitors = nil
	e.gestures = nil
	e.animations = nil
	e.beziers = nil
	e.diags = nil

	walkLines(e.lines, func(i int, raw string, path []string) bool {
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			return true
		}

		if strings.HasSuffix(trimmed, "{") {
			key := sectionKey(path)
			if _, ok := e.sections[key]; !ok {
				e.sections[key] = make(map[string]string)
			}
			return true
		}
		if trimmed == "}" {
			return true
		}

		// Variables are global: recognized at any nesting level.
		if name, value, ok := variableLine(trimmed); ok {
			if _, seen := e.variables[name]; !seen {
				e.varOrder = append(e.varOrder, name)
			}
			e.variables[name] = value
			return true
		}

		if len(path) == 0 {
			if value, ok := directiveValue(trimmed, "monitor"); ok {
				e.monitors = append(e.monitors, value)
				return true
			}
			if value, ok := directiveValue(trimmed, "gesture"); ok {
				parts := splitFields(value, 4)
				e.gestures = append(e.gestures, Gesture{
					Fingers:   fieldOr(parts, 0, ""),
					Direction: fieldOr(parts, 1, ""),
					Action:    fieldOr(parts, 2, ""),
					Params:    fieldOr(parts, 3, ""),
				})
				return true
			}
			for _, kw := range bindKeywords {
				if value, ok := directiveValue(trimmed, kw); ok {
					parts := splitFields(value, 4)
					e.binds = append(e.binds, Bind{
						Type:       kw,
						Mods:       fieldOr(parts, 0, ""),
						Key:        fieldOr(parts, 1, ""),
						Dispatcher: fieldOr(parts, 2, ""),
						Params:     fieldOr(parts, 3, ""),
					})
					return true
				}
			}
			if value, ok := directiveValue(trimmed, "exec-once"); ok {
				e.execOnce = append(e.execOnce, value)
				return true
			}
		}

		if pathEquals(path, []string{"animations"}) {
			if value, ok := directiveValue(trimmed, "animation"); ok {
				parts := splitFields(value, 5)
				e.animations = append(e.animations, Animation{
					Name:  fieldOr(parts, 0, ""),
					OnOff: fieldOr(parts, 1, "1"),
					Speed: fieldOr(parts, 2, "1"),
					Curve: fieldOr(parts, 3, "default"),
					Style: fieldOr(parts, 4, ""),
				})
				return true
			}
			if value, ok := directiveValue(trimmed, "bezier"); ok {
				parts := splitFields(value, 5)
				e.beziers = append(e.beziers, Bezier{
					Name: fieldOr(parts, 0, ""),
					X0:   fieldOr(parts, 1, "0"),
					Y0:   fieldOr(parts, 2, "0"),
					X1:   fieldOr(parts, 3, "1"),
					Y1:   fieldOr(parts, 4, "1"),
				})
				return true
			}
		}

		// Generic key = value, inside a section or in the synthetic top
		// bucket. Misplaced directives land here on purpose.
		if idx := strings.Index(trimmed, "="); idx > 0 {
			key := strings.TrimSpace(trimmed[:idx])
			if key != "" {
				value := stripInlineComment(strings.TrimSpace(trimmed[idx+1:]))
				sec := sectionKey(path)
				if _, ok := e.sections[sec]; !ok {
					e.sections[sec] = make(map[string]string)
				}
				e.sections[sec][key] = value
				return true
			}
		}

		e.diags = append(e.diags, Diagnostic{Line: i + 1, Reason: "unrecognized line"})
		return true
	})
}
