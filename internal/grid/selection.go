package grid

// Selection maps row IDs to their selected state. Absent entries are
// unselected. Selecting never changes row order; callers must Prune after
// destructive row removal so no stale IDs remain selected.
type Selection map[string]bool

func NewSelection() Selection { return make(Selection) }

// Toggle flips the selected state of a single row.
func (s Selection) Toggle(id string) {
	if s[id] {
		delete(s, id)
		return
	}
	s[id] = true
}

// SetAll sets every given ID to target. With target false the entries are
// removed entirely.
func (s Selection) SetAll(ids []string, target bool) {
	for _, id := range ids {
		if target {
			s[id] = true
		} else {
			delete(s, id)
		}
	}
}

func (s Selection) IsSelected(id string) bool { return s[id] }

// AllSelected reports whether every given ID is selected. An empty set is
// never "all selected".
func (s Selection) AllSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !s[id] {
			return false
		}
	}
	return true
}

// SomeSelected reports whether at least one but not all of the given IDs
// are selected. This drives the indeterminate checkbox state.
func (s Selection) SomeSelected(ids []string) bool {
	if len(ids) == 0 {
		return false
	}
	n := 0
	for _, id := range ids {
		if s[id] {
			n++
		}
	}
	return n > 0 && n < len(ids)
}

// SelectedOf filters ids down to the selected ones, preserving order.
func (s Selection) SelectedOf(ids []string) []string {
	var out []string
	for _, id := range ids {
		if s[id] {
			out = append(out, id)
		}
	}
	return out
}

// Prune drops selection entries whose ID is not in alive.
func (s Selection) Prune(alive []string) {
	keep := make(map[string]struct{}, len(alive))
	for _, id := range alive {
		keep[id] = struct{}{}
	}
	for id := range s {
		if _, ok := keep[id]; !ok {
			delete(s, id)
		}
	}
}

func (s Selection) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}
