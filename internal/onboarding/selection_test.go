package onboarding

import (
	"slices"
	"testing"
)

func TestMultiSelectionToggleTwiceRestores(t *testing.T) {
	m := NewMultiSelection("keto", "vegan")
	before := m.IDs()

	m.Toggle("bulking")
	if !m.Has("bulking") {
		t.Fatal("expected bulking to be selected")
	}
	m.Toggle("bulking")

	if !slices.Equal(before, m.IDs()) {
		t.Fatalf("expected %v after double toggle, got %v", before, m.IDs())
	}
}

func TestMultiSelectionDeduplicates(t *testing.T) {
	m := NewMultiSelection("a", "b", "a")
	if m.Len() != 2 {
		t.Fatalf("expected 2 ids, got %v", m.IDs())
	}
}

func TestSingleSelection(t *testing.T) {
	var s SingleSelection
	if _, ok := s.Selected(); ok {
		t.Fatal("expected empty selection")
	}
	s.Select("keto")
	s.Select("vegan")
	if id, ok := s.Selected(); !ok || id != "vegan" {
		t.Fatalf("expected vegan, got %q", id)
	}
	s.Clear()
	if _, ok := s.Selected(); ok {
		t.Fatal("expected cleared selection")
	}
}
