package onboarding

import "slices"

// SingleSelection holds at most one option id.
type SingleSelection struct {
	id string
}

func (s *SingleSelection) Select(id string) { s.id = id }

func (s *SingleSelection) Clear() { s.id = "" }

func (s SingleSelection) Selected() (string, bool) { return s.id, s.id != "" }

// MultiSelection is an ordered set of option ids. Toggling the same id twice
// restores the previous state.
type MultiSelection struct {
	ids []string
}

func NewMultiSelection(ids ...string) *MultiSelection {
	m := &MultiSelection{}
	for _, id := range ids {
		if !m.Has(id) {
			m.ids = append(m.ids, id)
		}
	}
	return m
}

func (m *MultiSelection) Toggle(id string) {
	if i := slices.Index(m.ids, id); i >= 0 {
		m.ids = slices.Delete(m.ids, i, i+1)
		return
	}
	m.ids = append(m.ids, id)
}

func (m *MultiSelection) Has(id string) bool { return slices.Contains(m.ids, id) }

func (m *MultiSelection) Len() int { return len(m.ids) }

// IDs returns a copy of the selection in insertion order.
func (m *MultiSelection) IDs() []string { return slices.Clone(m.ids) }
