package pipeline

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"
)

func TestForEachKeepsInputOrder(t *testing.T) {
	items := []int{5, 1, 4, 2, 3, 0, 6, 7}
	var got []int
	err := ForEach(context.Background(), Config{Threads: 4}, items,
		func(_ context.Context, n int) ([]int, error) {
			// Later items finish first.
			time.Sleep(time.Duration(8-n) * time.Millisecond)
			return []int{n, n * 10}, nil
		},
		func(v int) error {
			got = append(got, v)
			return nil
		})
	if err != nil {
		t.Fatal(err)
	}
	want := []int{5, 50, 1, 10, 4, 40, 2, 20, 3, 30, 0, 0, 6, 60, 7, 70}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestForEachEmpty(t *testing.T) {
	called := false
	err := ForEach(context.Background(), Config{}, []string(nil),
		func(context.Context, string) ([]string, error) { called = true; return nil, nil },
		func(string) error { called = true; return nil })
	if err != nil || called {
		t.Errorf("err=%v called=%v", err, called)
	}
}

func TestForEachWorkError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	err := ForEach(context.Background(), Config{Threads: 2}, []int{0, 1, 2, 3, 4, 5},
		func(_ context.Context, n int) ([]int, error) {
			if n == 2 {
				return nil, boom
			}
			return []int{n}, nil
		},
		func(v int) error {
			seen = append(seen, v)
			return nil
		})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !slices.Equal(seen, []int{0, 1}) {
		t.Errorf("visited %v before the failing item, want [0 1]", seen)
	}
}

func TestForEachVisitError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ForEach(context.Background(), Config{Threads: 3}, make([]int, 50),
		func(context.Context, int) ([]int, error) { return []int{1}, nil },
		func(int) error {
			n++
			if n == 3 {
				return stop
			}
			return nil
		})
	if !errors.Is(err, stop) || n != 3 {
		t.Errorf("err=%v visits=%d, want stop after 3", err, n)
	}
}

func TestForEachCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, Config{Threads: 2}, []int{1, 2, 3},
		func(context.Context, int) ([]int, error) { return []int{1}, nil },
		func(int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
