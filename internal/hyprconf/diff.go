package hyprconf

import "github.com/sergi/go-diff/diffmatchpatch"

// Patch returns the pending edits as patch text: the difference between the
// file content as last loaded or saved and the current line buffer. Empty
// when nothing changed.
func (e *Editor) Patch() string {
	current := e.String()
	if current == e.loadedText {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(e.loadedText, current, false)
	patches := dmp.PatchMake(e.loadedText, diffs)
	return dmp.PatchToText(patches)
}

// Dirty reports whether the buffer differs from what is on disk as of the
// last load or save.
func (e *Editor) Dirty() bool {
	return e.String() != e.loadedText
}
