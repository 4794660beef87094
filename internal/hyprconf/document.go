// Package hyprconf reads and writes Hyprland configuration files while
// preserving their original text. Parsing produces a queryable model of
// sections, key/value pairs, repeatable directives and variables; all
// mutations patch individual lines in the underlying buffer so comments,
// blank lines and formatting survive a load/edit/save cycle byte-for-byte.
package hyprconf

import "strings"

// topBucket is the synthetic section key for key/value pairs that appear
// outside any section.
const topBucket = ""

// Bind is a single bind/bindel/bindl/bindm directive.
type Bind struct {
	Type       string // "bind", "bindel", "bindl" or "bindm"
	Mods       string
	Key        string
	Dispatcher string
	Params     string // free-form tail, may contain commas
}

// Gesture is a top-level gesture directive.
type Gesture struct {
	Fingers   string
	Direction string
	Action    string
	Params    string
}

// Animation is an animation directive inside the animations section.
type Animation struct {
	Name  string
	OnOff string
	Speed string
	Curve string
	Style string
}

// Bezier is a bezier curve definition inside the animations section.
type Bezier struct {
	Name string
	X0   string
	Y0   string
	X1   string
	Y1   string
}

// Variable is a $name = value definition. Name includes the leading sigil.
type Variable struct {
	Name  string
	Value string
}

// Diagnostic records a line the parser could not classify. The parser never
// fails on such lines; diagnostics exist for callers that want to surface
// them anyway.
type Diagnostic struct {
	Line   int // 1-based
	Reason string
}

// Editor owns the line buffer of a single config file and the structured
// model derived from it. It is not safe for concurrent use; the expected
// driver is a single UI thread issuing one operation at a time.
type Editor struct {
	path       string
	lines      []string
	loadedText string

	sections   map[string]map[string]string
	binds      []Bind
	execOnce   []string
	variables  map[string]string
	varOrder   []string
	monitors   []string
	gestures   []Gesture
	animations []Animation
	beziers    []Bezier
	diags      []Diagnostic
}

// New returns an Editor bound to the given config file path. Nothing is
// read until Load or CreateDefault is called.
func New(path string) *Editor {
	return &Editor{
		path:     path,
		sections: make(map[string]map[string]string),
	}
}

// Path returns the config file path this editor is bound to.
func (e *Editor) Path() string {
	return e.path
}

// Lines returns a copy of the current line buffer.
func (e *Editor) Lines() []string {
	out := make([]string, len(e.lines))
	copy(out, e.lines)
	return out
}

// String renders the current line buffer as it would be written to disk.
func (e *Editor) String() string {
	return strings.Join(e.lines, "\n")
}

// SetLines replaces the line buffer wholesale and re-derives the model.
// Intended for callers that obtained the text elsewhere (tests, previews).
func (e *Editor) SetLines(lines []string) {
	e.lines = make([]string, len(lines))
	copy(e.lines, lines)
	e.parse()
}
