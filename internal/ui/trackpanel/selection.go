package trackpanel

import "sort"

// toggleSelect flips the selection mark on the cursor row.
func (m *Model) toggleSelect() {
	if m.list.IsEmpty() || m.cursor.Pos() >= m.list.Len() {
		return
	}
	pos := m.cursor.Pos()
	if m.selected[pos] {
		delete(m.selected, pos)
	} else {
		m.selected[pos] = true
	}
}

// clearSelection removes all selection marks.
func (m *Model) clearSelection() {
	m.selected = make(map[int]bool)
}

// selectedOrCursor returns the marked rows in ascending order, falling
// back to the cursor row when nothing is marked.
func (m *Model) selectedOrCursor() []int {
	if len(m.selected) == 0 {
		return []int{m.cursor.Pos()}
	}
	indices := make([]int, 0, len(m.selected))
	for idx := range m.selected {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	return indices
}

// moveSelected shifts the marked rows (or the cursor row) by delta.
// The whole group stays put when any member would leave the list.
// Returns true if a move was performed.
func (m *Model) moveSelected(delta int) bool {
	n := m.list.Len()
	if n == 0 || delta == 0 {
		return false
	}

	indices := m.selectedOrCursor()
	if indices[0]+delta < 0 || indices[len(indices)-1]+delta >= n {
		return false
	}

	// Moving down walks from the bottom so rows never collide.
	if delta > 0 {
		for i := len(indices) - 1; i >= 0; i-- {
			_ = m.list.Move(indices[i], indices[i]+delta)
		}
	} else {
		for _, idx := range indices {
			_ = m.list.Move(idx, idx+delta)
		}
	}

	if len(m.selected) > 0 {
		moved := make(map[int]bool, len(indices))
		for _, idx := range indices {
			moved[idx+delta] = true
		}
		m.selected = moved
	}

	m.cursor.Move(delta, n, m.listHeight())
	return true
}

// removeSelected deletes the marked rows (or the cursor row) from the
// playlist.
func (m *Model) removeSelected() {
	indices := m.selectedOrCursor()

	// Remove from the bottom up so earlier indices stay valid.
	sort.Sort(sort.Reverse(sort.IntSlice(indices)))
	for _, idx := range indices {
		_, _ = m.list.Remove(idx)
	}

	m.clearSelection()
	m.cursor.ClampToBounds(m.list.Len(), m.listHeight())
}
