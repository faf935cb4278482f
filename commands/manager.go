package commands

import "roomforge/world"

// Manager stores and manages the pending queue and the undo/redo stacks.
// Commands pushed during a frame execute together at frame end via
// ApplyAll, so mutations never interleave with in-flight queries.
type Manager struct {
	pending []*Command
	undo    []*Command
	redo    []*Command
}

// NewManager returns an empty command manager.
func NewManager() *Manager {
	return &Manager{}
}

// Push queues a command for execution at the end of the frame. Queuing a
// new command invalidates the redo stack.
func (m *Manager) Push(cmd *Command) {
	m.redo = m.redo[:0]
	m.pending = append(m.pending, cmd)
}

// ApplyAll executes every queued command against w, moving each onto the
// undo stack. The first failing command stops the flush.
func (m *Manager) ApplyAll(w *world.World) error {
	for len(m.pending) > 0 {
		cmd := m.pending[0]
		m.pending = m.pending[1:]
		if err := cmd.apply(w); err != nil {
			return err
		}
		m.undo = append(m.undo, cmd)
	}
	return nil
}

// Undo reverts the most recently applied command and pushes it onto the
// redo stack. Undo with an empty stack is a no-op.
func (m *Manager) Undo(w *world.World) error {
	if len(m.undo) == 0 {
		return nil
	}
	cmd := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]
	if err := cmd.revert(w); err != nil {
		return err
	}
	m.redo = append(m.redo, cmd)
	return nil
}

// Redo re-applies the most recently undone command.
func (m *Manager) Redo(w *world.World) error {
	if len(m.redo) == 0 {
		return nil
	}
	cmd := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]
	if err := cmd.apply(w); err != nil {
		return err
	}
	m.undo = append(m.undo, cmd)
	return nil
}

// Depth returns the size of the undo stack.
func (m *Manager) Depth() int {
	return len(m.undo)
}
