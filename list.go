package tradebook

import (
	"slices"
	"strings"
)

// Helpers for the three user-configurable display lists in meta.config.
// Lists keep their order, reject blanks and never hold duplicates.

// AddToList appends a trimmed value, ignoring blanks and duplicates.
func AddToList(list []string, value string) []string {
	v := strings.TrimSpace(value)
	if v == "" || slices.Contains(list, v) {
		return list
	}
	return append(slices.Clone(list), v)
}

// RemoveFromList removes every occurrence of value.
func RemoveFromList(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, x := range list {
		if x != value {
			out = append(out, x)
		}
	}
	return out
}

// ReplaceInList renames old to the trimmed new value, de-duplicating the
// result. A blank new value leaves the list unchanged.
func ReplaceInList(list []string, old, new string) []string {
	v := strings.TrimSpace(new)
	if v == "" || old == v {
		return list
	}
	out := make([]string, 0, len(list))
	for _, x := range list {
		if x == old {
			x = v
		}
		if !slices.Contains(out, x) {
			out = append(out, x)
		}
	}
	return out
}
