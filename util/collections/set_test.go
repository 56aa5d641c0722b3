package collections

import "testing"

func TestSet(t *testing.T) {
	set := make(Set[string])

	if set.Contains("a1") {
		t.Errorf("Empty set should not contain a1")
	}

	set.Add("a1")
	set.Add("a1")
	set.Add("b2")

	if !set.Contains("a1") || !set.Contains("b2") {
		t.Errorf("Set is missing added elements: %v", set)
	}
	if len(set) != 2 {
		t.Errorf("Set should hold 2 elements, not %v", len(set))
	}
}
