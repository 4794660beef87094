package hyprconf

import "strings"

// walkLines visits every line in order together with the section path in
// effect at that line, tracking brace nesting the same way for every caller
// (parser, value writer, directive writers).
//
// The path passed to fn includes a section on both its opening and closing
// brace lines: an "x {" line is visited with "x" already pushed, and the
// matching "}" line is visited before "x" is popped. Comment lines never
// affect the stack. fn returns false to stop the walk. The path slice is
// reused between calls; callers must copy it if they retain it.
func walkLines(lines []string, fn func(i int, raw string, path []string) bool) {
	var stack []string
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		comment := strings.HasPrefix(trimmed, "#")

		opened := false
		if !comment && strings.HasSuffix(trimmed, "{") {
			name := strings.TrimSpace(strings.TrimSuffix(trimmed, "{"))
			stack = append(stack, name)
			opened = true
		}

		if !fn(i, raw, stack) {
			return
		}

		if !comment && !opened && trimmed == "}" && len(stack) > 0 {
			stack = stack[:len(stack)-1]
		}
	}
}

// sectionKey joins a section path into the flat key used by the model tree.
func sectionKey(path []string) string {
	return strings.Join(path, ".")
}

// splitSectionPath is the inverse of sectionKey. The empty string maps to
// the top-level (empty) path.
func splitSectionPath(section string) []string {
	if section == "" {
		return nil
	}
	return strings.Split(section, ".")
}

// pathEquals reports whether the walker path matches a target path.
func pathEquals(path, target []string) bool {
	if len(path) != len(target) {
		return false
	}
	for i := range path {
		if path[i] != target[i] {
			return false
		}
	}
	return true
}
