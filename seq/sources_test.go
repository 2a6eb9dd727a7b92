package seq

import (
	"math"
	"testing"
)

func TestRange(t *testing.T) {
	tests := []struct {
		name string
		s    *Seq[int]
		want []int
	}{
		{"exclusive", Range(1, 5), []int{1, 2, 3, 4}},
		{"inclusive", RangeInclusive(1, 5, 1), []int{1, 2, 3, 4, 5}},
		{"inclusive step 2", RangeInclusive(1, 5, 2), []int{1, 3, 5}},
		{"step 2 exclusive", RangeBy(0, 7, 2), []int{0, 2, 4, 6}},
		{"descending", RangeBy(5, 0, -2), []int{5, 3, 1}},
		{"empty", Range(3, 3), nil},
		{"inverted bounds", Range(5, 1), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collect(tt.s)
			if !intSliceEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRange_InfiniteEnd(t *testing.T) {
	s := Range(0.0, math.Inf(1))
	got := Collect(Take(s, 4))
	want := []float64{0, 1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCountFrom(t *testing.T) {
	got := Collect(Take(CountFrom(10, 5), 3))
	if !intSliceEqual(got, []int{10, 15, 20}) {
		t.Errorf("got %v, want [10 15 20]", got)
	}
}

func TestRepeat(t *testing.T) {
	got := Collect(Take(Repeat("x"), 3))
	if len(got) != 3 || got[0] != "x" || got[2] != "x" {
		t.Errorf("got %v, want [x x x]", got)
	}
}

func TestRepeatN(t *testing.T) {
	got := Collect(RepeatN(7, 4))
	if !intSliceEqual(got, []int{7, 7, 7, 7}) {
		t.Errorf("got %v, want [7 7 7 7]", got)
	}
	if n := Count(RepeatN(7, 0)); n != 0 {
		t.Errorf("RepeatN(_, 0) yielded %d values", n)
	}
}

func TestRepeatWith_CallsAfreshPerPull(t *testing.T) {
	calls := 0
	s := RepeatWithN(func() int { calls++; return calls }, 3)
	got := Collect(s)
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
	if calls != 3 {
		t.Errorf("fn called %d times, want 3", calls)
	}
}

func TestRepeatWith_LazyUntilPulled(t *testing.T) {
	calls := 0
	s := RepeatWith(func() int { calls++; return calls })
	if calls != 0 {
		t.Fatalf("fn called %d times before any pull", calls)
	}
	s.Next()
	if calls != 1 {
		t.Errorf("fn called %d times after one pull, want 1", calls)
	}
}

func TestIterate(t *testing.T) {
	doubled := Iterate(func(n int) int { return n * 2 }, 1)
	got := Collect(Take(doubled, 5))
	if !intSliceEqual(got, []int{1, 2, 4, 8, 16}) {
		t.Errorf("got %v, want [1 2 4 8 16]", got)
	}
}

func TestIterate_FnAppliedOnDemand(t *testing.T) {
	calls := 0
	s := Iterate(func(n int) int { calls++; return n + 1 }, 0)
	s.Next()
	if calls != 0 {
		t.Errorf("fn called %d times after pulling only init, want 0", calls)
	}
	s.Next()
	if calls != 1 {
		t.Errorf("fn called %d times after two pulls, want 1", calls)
	}
}
