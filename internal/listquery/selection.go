package listquery

import "sort"

// Selection tracks checked record ids independently of the list pipeline.
// It deliberately survives filter, sort and page changes within a session;
// only an explicit Clear (or deleting the selected records) empties it.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection builds a selection pre-populated with the given ids.
// Duplicates collapse to a single entry.
func NewSelection(ids ...string) *Selection {
	s := &Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
	return s
}

// Toggle flips the checked state of one record.
func (s *Selection) Toggle(id string) {
	if id == "" {
		return
	}
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

// SelectAll checks every visible record. If all of them are already
// checked, it unchecks them instead (select-all acts as a toggle).
func (s *Selection) SelectAll(visible []string) {
	all := len(visible) > 0
	for _, id := range visible {
		if _, ok := s.ids[id]; !ok {
			all = false
			break
		}
	}
	for _, id := range visible {
		if all {
			delete(s.ids, id)
		} else if id != "" {
			s.ids[id] = struct{}{}
		}
	}
}

// Has reports whether a record is checked.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of checked records.
func (s *Selection) Len() int {
	return len(s.ids)
}

// IDs returns the checked ids in sorted order for deterministic output.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear unchecks everything.
func (s *Selection) Clear() {
	s.ids = map[string]struct{}{}
}
