package main

// CategoryKey is a stringified diagnosis class code as sent by the backend.
type CategoryKey = string

var categoryLabels = map[CategoryKey]string{
	"0": "No Dementia",
	"1": "Dementia",
}

// categoryLabel resolves a diagnosis code to its display label. Unknown codes
// are returned unchanged.
func categoryLabel(key CategoryKey) string {
	if label, ok := categoryLabels[key]; ok {
		return label
	}
	return key
}

// orderedKeys returns the keys present in seen, expected keys first in the
// given order, then the remaining keys in the order they appeared.
func orderedKeys(expected, seen []CategoryKey) []CategoryKey {
	present := make(map[CategoryKey]bool, len(seen))
	for _, k := range seen {
		present[k] = true
	}

	out := make([]CategoryKey, 0, len(seen))
	used := make(map[CategoryKey]bool, len(seen))
	for _, k := range expected {
		if present[k] && !used[k] {
			out = append(out, k)
			used[k] = true
		}
	}
	for _, k := range seen {
		if !used[k] {
			out = append(out, k)
			used[k] = true
		}
	}
	return out
}
