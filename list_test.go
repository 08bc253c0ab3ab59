package tradebook

import (
	"slices"
	"testing"
)

func TestAddToList(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		value string
		want  []string
	}{
		{"append", []string{"a", "b"}, "c", []string{"a", "b", "c"}},
		{"trims whitespace", []string{"a"}, "  b  ", []string{"a", "b"}},
		{"ignores blank", []string{"a"}, "   ", []string{"a"}},
		{"ignores duplicate", []string{"a", "b"}, "b", []string{"a", "b"}},
		{"empty list", nil, "a", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AddToList(tt.list, tt.value); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemoveFromList(t *testing.T) {
	tests := []struct {
		name  string
		list  []string
		value string
		want  []string
	}{
		{"removes", []string{"a", "b", "c"}, "b", []string{"a", "c"}},
		{"removes all occurrences", []string{"a", "b", "a"}, "a", []string{"b"}},
		{"absent value", []string{"a"}, "z", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveFromList(tt.list, tt.value); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReplaceInList(t *testing.T) {
	tests := []struct {
		name     string
		list     []string
		old, new string
		want     []string
	}{
		{"renames in place", []string{"a", "b", "c"}, "b", "x", []string{"a", "x", "c"}},
		{"dedups after rename", []string{"a", "b"}, "b", "a", []string{"a"}},
		{"blank new keeps list", []string{"a", "b"}, "b", "  ", []string{"a", "b"}},
		{"identity rename", []string{"a", "b"}, "b", "b", []string{"a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplaceInList(tt.list, tt.old, tt.new); !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAddToListDoesNotAliasInput(t *testing.T) {
	list := make([]string, 1, 4)
	list[0] = "a"
	got := AddToList(list, "b")
	got[0] = "changed"
	if list[0] != "a" {
		t.Error("input list mutated through the result")
	}
}
