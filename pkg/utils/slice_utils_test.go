package utils

import "testing"

func TestCompareIntSlices(t *testing.T) {
	cases := []struct {
		name     string
		a, b     []int
		expected bool
	}{
		{"both nil", nil, nil, true},
		{"nil and empty", nil, []int{}, true},
		{"equal", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"different length", []int{1, 2}, []int{1, 2, 3}, false},
		{"different content", []int{1, 2, 3}, []int{1, 2, 4}, false},
		{"different order", []int{1, 2}, []int{2, 1}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CompareIntSlices(c.a, c.b); got != c.expected {
				t.Errorf("CompareIntSlices(%v, %v) = %v, expected %v", c.a, c.b, got, c.expected)
			}
		})
	}
}

func TestCompareInt64Slices(t *testing.T) {
	if !CompareInt64Slices([]int64{7, 8}, []int64{7, 8}) {
		t.Error("Expected equal slices to compare true")
	}
	if CompareInt64Slices([]int64{7}, []int64{8}) {
		t.Error("Expected different slices to compare false")
	}
}
