package seq

import (
	"strings"
	"testing"
)

func TestConcat(t *testing.T) {
	s := Concat(Of(1, 2), Of[int](), Of(3), Of(4, 5))
	got := Collect(s)
	if !intSliceEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Errorf("got %v, want [1 2 3 4 5]", got)
	}
}

func TestConcat_AuxiliariesPulledLazily(t *testing.T) {
	pulled := false
	aux := Each(Of(9), func(int) { pulled = true })
	s := Concat(Of(1, 2), aux)
	s.Next()
	s.Next()
	if pulled {
		t.Error("auxiliary chain pulled before the primary was exhausted")
	}
	s.Next()
	if !pulled {
		t.Error("auxiliary chain never pulled")
	}
}

func TestCycle_TakeEleven(t *testing.T) {
	got := Collect(Take(Cycle(Of(1, 2)), 11))
	want := []int{1, 2, 1, 2, 1, 2, 1, 2, 1, 2, 1}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCycle_Empty(t *testing.T) {
	s := Cycle(Of[int]())
	if _, ok := s.Next(); ok {
		t.Error("cycle over empty chain yielded a value")
	}
	if _, ok := s.Next(); ok {
		t.Error("empty cycle resurrected")
	}
}

func TestCycle_UpstreamConsumedOnce(t *testing.T) {
	calls := 0
	up := Each(Of(1, 2, 3), func(int) { calls++ })
	got := Collect(Take(Cycle(up), 9))
	if !intSliceEqual(got, []int{1, 2, 3, 1, 2, 3, 1, 2, 3}) {
		t.Errorf("got %v", got)
	}
	if calls != 3 {
		t.Errorf("upstream pulled %d times, want 3 (replays use the cache)", calls)
	}
}

func TestZip(t *testing.T) {
	s := Zip(Of(1, 2, 3), Of("a", "b", "c"))
	got := Collect(s)
	want := []Pair[int, string]{{1, "a"}, {2, "b"}, {3, "c"}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at %d got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestZip_StopsAtShortest(t *testing.T) {
	tests := []struct {
		name string
		a, b int // lengths
		want int
	}{
		{"left shorter", 2, 5, 2},
		{"right shorter", 5, 2, 2},
		{"equal", 3, 3, 3},
		{"left empty", 0, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Zip(Range(0, tt.a), Range(0, tt.b))
			if n := Count(s); n != tt.want {
				t.Errorf("zip length %d, want %d", n, tt.want)
			}
		})
	}
}

func TestZip_NoExtraPullAfterExhaustion(t *testing.T) {
	pulls := 0
	right := Each(Of(1, 2, 3), func(int) { pulls++ })
	s := Zip(Of("only"), right)
	Collect(s)
	s.Next()
	if pulls > 1 {
		t.Errorf("right side pulled %d times after left exhausted, want at most 1", pulls)
	}
}

func TestZip_InfiniteParticipant(t *testing.T) {
	s := Zip(CountFrom(0, 1), Of("a", "b"))
	if n := Count(s); n != 2 {
		t.Errorf("zip with infinite left yielded %d pairs, want 2", n)
	}
}

func TestZip3(t *testing.T) {
	s := Zip3(Of(1, 2), Of("a", "b"), Of(true, false))
	got := Collect(s)
	if len(got) != 2 || got[0] != (Triple[int, string, bool]{1, "a", true}) {
		t.Errorf("got %v", got)
	}
}

func TestZipMany(t *testing.T) {
	s := ZipMany(Of(1, 2, 3), Of(10, 20), Of(100, 200, 300))
	got := Collect(s)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if !intSliceEqual(got[0], []int{1, 10, 100}) || !intSliceEqual(got[1], []int{2, 20, 200}) {
		t.Errorf("got %v", got)
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"between pairs only", []string{"a", "b", "c"}, "a,b,c"},
		{"single element", []string{"a"}, "a"},
		{"empty", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectString(Join(FromSlice(tt.items), ","))
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoin_LazyPerPull(t *testing.T) {
	s := Join(Of(1, 2), 0)
	if v, _ := s.Next(); v != 1 {
		t.Fatalf("got %d, want 1", v)
	}
	if v, _ := s.Next(); v != 0 {
		t.Fatalf("got %d, want separator 0", v)
	}
	if v, _ := s.Next(); v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
	if _, ok := s.Next(); ok {
		t.Error("trailing separator emitted")
	}
}

func TestJoinWith(t *testing.T) {
	s := JoinWith(Of("a", "b", "c"), Of("-", "-"))
	got := CollectString(s)
	if got != "a--b--c" {
		t.Errorf("got %q, want %q", got, "a--b--c")
	}
}

func TestJoinWith_SeparatorConsumedOnce(t *testing.T) {
	calls := 0
	sep := RepeatWithN(func() string { calls++; return "." }, 2)
	s := JoinWith(Of("a", "b", "c", "d"), sep)
	got := CollectString(s)
	if got != strings.Join([]string{"a", "b", "c", "d"}, "..") {
		t.Errorf("got %q", got)
	}
	// Three gaps, but the live separator chain is consumed exactly once;
	// the second and third gaps replay the cache.
	if calls != 2 {
		t.Errorf("separator chain pulled %d times, want 2", calls)
	}
}

func TestJoinWith_EmptySeparator(t *testing.T) {
	got := CollectString(JoinWith(Of("a", "b"), Of[string]()))
	if got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}
