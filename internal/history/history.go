// Package history tracks a bounded stack of reversible operations. It knows
// nothing about the config format: each entry is a description plus a pair
// of closures.
package history

// MaxHistory bounds the stack; older entries fall off the bottom.
const MaxHistory = 50

type entry struct {
	description string
	undo        func()
	redo        func()
}

// Stack is a linear undo/redo history. Not safe for concurrent use.
type Stack struct {
	entries   []entry
	index     int // last applied action, -1 when empty
	callbacks []func()
}

// New returns an empty history stack.
func New() *Stack {
	return &Stack{index: -1}
}

// Push records a new applied action and discards any undone future.
func (s *Stack) Push(description string, undo, redo func()) {
	s.entries = append(s.entries[:s.index+1], entry{description, undo, redo})
	if len(s.entries) > MaxHistory {
		s.entries = s.entries[len(s.entries)-MaxHistory:]
	}
	s.index = len(s.entries) - 1
	s.notify()
}

// Undo reverts the last action and returns its description.
func (s *Stack) Undo() (string, bool) {
	if !s.CanUndo() {
		return "", false
	}
	e := s.entries[s.index]
	s.index--
	e.undo()
	s.notify()
	return e.description, true
}

// Redo re-applies the next undone action and returns its description.
func (s *Stack) Redo() (string, bool) {
	if !s.CanRedo() {
		return "", false
	}
	s.index++
	e := s.entries[s.index]
	e.redo()
	s.notify()
	return e.description, true
}

func (s *Stack) CanUndo() bool {
	return s.index >= 0
}

func (s *Stack) CanRedo() bool {
	return s.index < len(s.entries)-1
}

// UndoDescription names the action Undo would revert, or "".
func (s *Stack) UndoDescription() string {
	if !s.CanUndo() {
		return ""
	}
	return s.entries[s.index].description
}

// RedoDescription names the action Redo would re-apply, or "".
func (s *Stack) RedoDescription() string {
	if !s.CanRedo() {
		return ""
	}
	return s.entries[s.index+1].description
}

// OnChange registers a callback invoked whenever the stack changes.
func (s *Stack) OnChange(fn func()) {
	s.callbacks = append(s.callbacks, fn)
}

func (s *Stack) notify() {
	for _, fn := range s.callbacks {
		fn()
	}
}
