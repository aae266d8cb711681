package main

import (
	"reflect"
	"testing"
)

func TestCategoryLabel(t *testing.T) {
	cases := map[CategoryKey]string{
		"0": "No Dementia",
		"1": "Dementia",
		"7": "7",
		"":  "",
	}
	for key, want := range cases {
		if got := categoryLabel(key); got != want {
			t.Errorf("categoryLabel(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestOrderedKeys(t *testing.T) {
	got := orderedKeys([]CategoryKey{"0", "1", "9"}, []CategoryKey{"x", "1", "0", "x"})
	want := []CategoryKey{"0", "1", "x"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("orderedKeys = %v, want %v", got, want)
	}
}
