package pipeline

import (
	"context"
	"errors"
	"strconv"
	"testing"
)

var errStage = errors.New("stage failed")

func double(_ context.Context, n int) (int, error) { return 2 * n, nil }

func TestTransforms(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	repeat := func(_ context.Context, n int) (Iterator[int], error) {
		out := make([]int, n)
		for i := range out {
			out[i] = n
		}
		return &sliceIter[int]{items: out}, nil
	}

	tests := []struct {
		name  string
		build func(*Pipeline[int]) *Pipeline[int]
		in    []int
		want  []int
	}{
		{"identity", func(p *Pipeline[int]) *Pipeline[int] { return p }, []int{3, 1, 2}, []int{3, 1, 2}},
		{"map", func(p *Pipeline[int]) *Pipeline[int] { return Map(p, double) }, []int{1, 2, 3}, []int{2, 4, 6}},
		{"map empty", func(p *Pipeline[int]) *Pipeline[int] { return Map(p, double) }, nil, nil},
		{"filter", func(p *Pipeline[int]) *Pipeline[int] { return Filter(p, even) }, []int{1, 2, 3, 4}, []int{2, 4}},
		{"filter none", func(p *Pipeline[int]) *Pipeline[int] { return Filter(p, even) }, []int{1, 3}, nil},
		{"flat map", func(p *Pipeline[int]) *Pipeline[int] { return FlatMap(p, repeat) }, []int{1, 0, 2}, []int{1, 2, 2}},
		{"concat", func(p *Pipeline[int]) *Pipeline[int] {
			return Concat(p, FromSlice([]int{}), FromSlice([]int{9}))
		}, []int{7, 8}, []int{7, 8, 9}},
		{"map then filter", func(p *Pipeline[int]) *Pipeline[int] {
			return Filter(Map(p, double), func(n int) bool { return n > 4 })
		}, []int{1, 2, 3, 4}, []int{6, 8}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), tc.build(FromSlice(tc.in)))
			if err != nil {
				t.Fatal(err)
			}
			if !intSliceEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMap_ChangesType(t *testing.T) {
	labels := Map(FromSlice([]int{250, 4500}), func(_ context.Context, n int) (string, error) {
		return "v" + strconv.Itoa(n), nil
	})
	got, err := Collect(context.Background(), labels)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "v250" || got[1] != "v4500" {
		t.Errorf("got %v", got)
	}
}

func TestStageErrorsEndTheRun(t *testing.T) {
	failOn := func(bad int) func(context.Context, int) (int, error) {
		return func(_ context.Context, n int) (int, error) {
			if n == bad {
				return 0, errStage
			}
			return n, nil
		}
	}
	tests := []struct {
		name  string
		build func(*Pipeline[int]) *Pipeline[int]
		want  []int
	}{
		{"map", func(p *Pipeline[int]) *Pipeline[int] { return Map(p, failOn(3)) }, []int{1, 2}},
		{"tap", func(p *Pipeline[int]) *Pipeline[int] {
			return Tap(p, func(ctx context.Context, n int) error {
				_, err := failOn(2)(ctx, n)
				return err
			})
		}, []int{1}},
		{"flat map", func(p *Pipeline[int]) *Pipeline[int] {
			return FlatMap(p, func(_ context.Context, n int) (Iterator[int], error) {
				if n == 2 {
					return nil, errStage
				}
				return &sliceIter[int]{items: []int{n}}, nil
			})
		}, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), tc.build(FromSlice([]int{1, 2, 3, 4})))
			if !errors.Is(err, errStage) {
				t.Fatalf("expected stage error, got %v", err)
			}
			if !intSliceEqual(got, tc.want) {
				t.Errorf("partial result %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTap_SeesEveryValue(t *testing.T) {
	var seen []int
	p := Tap(FromSlice([]int{4, 5, 6}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		return nil
	})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{4, 5, 6}) || !intSliceEqual(seen, got) {
		t.Errorf("got %v, seen %v", got, seen)
	}
}

func TestReduce(t *testing.T) {
	sum := func(acc, n int) int { return acc + n }
	tests := []struct {
		name string
		in   []int
		init int
		want int
	}{
		{"sum", []int{500, 4500, 2000, 250, 3000}, 0, 10250},
		{"empty yields init", nil, 100, 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(context.Background(), Reduce(FromSlice(tc.in), tc.init, sum))
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0] != tc.want {
				t.Errorf("got %v, want [%d]", got, tc.want)
			}
		})
	}
}

func TestFrom_ConsumedByFirstRun(t *testing.T) {
	p := From[int](&sliceIter[int]{items: []int{1, 2}})
	first, _ := Collect(context.Background(), p)
	second, _ := Collect(context.Background(), p)
	if len(first) != 2 || len(second) != 0 {
		t.Errorf("first=%v second=%v", first, second)
	}
}

func TestDrainAndForEach(t *testing.T) {
	var drained []int
	err := Drain(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		drained = append(drained, n)
		return nil
	}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(drained, []int{1, 2, 3}) {
		t.Errorf("drained %v", drained)
	}

	calls := 0
	err = ForEach(context.Background(), FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		calls++
		if n == 2 {
			return errStage
		}
		return nil
	})
	if !errors.Is(err, errStage) || calls != 2 {
		t.Errorf("err=%v calls=%d", err, calls)
	}
}

func TestIter_ManualPull(t *testing.T) {
	ctx := context.Background()
	it := Map(FromSlice([]int{1, 2}), double).Iter(ctx)
	defer it.Close()

	var got []int
	for {
		v, ok, err := it.Next(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			break
		}
		got = append(got, v)
	}
	if !intSliceEqual(got, []int{2, 4}) {
		t.Errorf("got %v", got)
	}
}

func TestConcat_ClosesEveryPart(t *testing.T) {
	closed := 0
	part := func(items ...int) *Pipeline[int] {
		return FromFunc(func(context.Context) Iterator[int] {
			return &closeCountingIter{inner: &sliceIter[int]{items: items}, closed: &closed}
		})
	}
	if _, err := Collect(context.Background(), Concat(part(1), part(), part(2, 3))); err != nil {
		t.Fatal(err)
	}
	if closed != 3 {
		t.Errorf("closed %d parts, want 3", closed)
	}
}

// --- helpers ---

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
