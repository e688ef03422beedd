package compare

import (
	"sort"
	"testing"
	"testing/quick"
)

func TestFunction(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{a: 1, b: 2, want: -1},
		{a: 2, b: 1, want: +1},
		{a: 3, b: 3, want: 0},
	}

	for _, test := range tests {
		if got := Function(test.a, test.b); got != test.want {
			t.Errorf("Function(%d, %d): got=%d want=%d", test.a, test.b, got, test.want)
		}
	}
}

func TestReverse(t *testing.T) {
	f := func(values []int) bool {
		cmp := Reverse(Function[int])
		sort.Slice(values, func(i, j int) bool { return cmp(values[i], values[j]) < 0 })
		return sort.SliceIsSorted(values, func(i, j int) bool { return values[i] > values[j] })
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestLess(t *testing.T) {
	f := func(a, b string) bool {
		return Less(func(x, y string) bool { return x < y })(a, b) == Function(a, b)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
