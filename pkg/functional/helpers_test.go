package f

import (
	"slices"
	"strconv"
	"testing"
)

func TestSet(t *testing.T) {
	set := NewSet[string]()
	set.Add("a")
	set.Add("b")
	set.Add("a")

	if !set.Contains("a") || !set.Contains("b") {
		t.Errorf("Expected set to contain a and b, got %+v", set)
	}
	if set.Contains("c") {
		t.Errorf("Expected set to not contain c")
	}
	items := set.Items()
	slices.Sort(items)
	if !slices.Equal(items, []string{"a", "b"}) {
		t.Errorf("Expected items [a b], got %+v", items)
	}
}

func TestMap(t *testing.T) {
	in := []int{1, 2, 3}
	out := Map(in, strconv.Itoa)
	if !slices.Equal(out, []string{"1", "2", "3"}) {
		t.Errorf("Expected [1 2 3], got %+v", out)
	}
}

func TestFiltered(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	out := Filtered(in, func(i int) bool { return i%2 == 0 })
	if !slices.Equal(out, []int{2, 4}) {
		t.Errorf("Expected [2 4], got %+v", out)
	}
}

func TestRemoveDuplicates(t *testing.T) {
	in := []string{"a", "b", "a", "c", "b"}
	out := RemoveDuplicates(in)
	if !slices.Equal(out, []string{"a", "b", "c"}) {
		t.Errorf("Expected [a b c], got %+v", out)
	}
}

func TestSlicesItemsMatch(t *testing.T) {
	tt := []struct {
		s1          []int
		s2          []int
		result      bool
		failMessage string
	}{
		{[]int{1, 2, 3, 4}, []int{1, 2, 3}, false, "Different size Slices should not match"},
		{[]int{1, 2, 3, 3}, []int{1, 2, 3}, false, "Different size Slices should not match even with same items"},
		{[]int{1, 2, 3}, []int{1, 2, 3}, true, "Same order same items Slices should match"},
		{[]int{1, 2, 3}, []int{2, 1, 3}, true, "Different order same items Slices should match"},
		{[]int{1, 2, 3}, []int{1, 2, 4}, false, "Different items Slices should not match"},
		{[]int{1, 2, 3}, []int{1, 1, 3}, false, "Missing items Slices should not match"},
		{[]int{1, 1, 3}, []int{1, 2, 3}, false, "Missing items Slices should not match reversed"},
	}

	for _, tc := range tt {
		if SlicesItemsMatch(tc.s1, tc.s2) != tc.result {
			t.Error(tc.failMessage)
		}
	}
}
