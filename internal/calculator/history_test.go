package calculator

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleHistory() *History {
	h := NewHistory()
	h.Add(NewCalculation(d("2"), d("3"), Add))
	h.Add(NewCalculation(d("4"), d("3"), Subtract))
	h.Add(NewCalculation(d("10"), d("3"), Multiply))
	h.Add(NewCalculation(d("9"), d("3"), Divide))
	return h
}

func names(calcs []Calculation) []string {
	out := make([]string, 0, len(calcs))
	for _, c := range calcs {
		out = append(out, c.String())
	}
	return out
}

func TestHistoryAddAndLatest(t *testing.T) {
	h := NewHistory()
	calc := NewCalculation(d("5"), d("3"), Add)

	h.Add(calc)

	latest, ok := h.Latest()
	if !ok {
		t.Fatal("expected a latest calculation")
	}
	if !latest.Equal(calc) {
		t.Fatalf("expected latest %s, got %s", calc, latest)
	}
}

func TestHistoryAll(t *testing.T) {
	h := sampleHistory()

	want := []string{
		"Calculation(2, 3, add)",
		"Calculation(4, 3, subtract)",
		"Calculation(10, 3, multiply)",
		"Calculation(9, 3, divide)",
	}
	if diff := cmp.Diff(want, names(h.All())); diff != "" {
		t.Fatalf("history mismatch (-want +got):\n%s", diff)
	}

	// Reading does not consume the history, and the snapshot is detached.
	snapshot := h.All()
	snapshot[0] = NewCalculation(d("0"), d("0"), Add)
	if diff := cmp.Diff(want, names(h.All())); diff != "" {
		t.Fatalf("history changed after snapshot mutation (-want +got):\n%s", diff)
	}
}

func TestHistoryLatestIsLastAdded(t *testing.T) {
	h := sampleHistory()

	latest, ok := h.Latest()
	if !ok {
		t.Fatal("expected a latest calculation")
	}
	if want := NewCalculation(d("9"), d("3"), Divide); !latest.Equal(want) {
		t.Fatalf("expected latest %s, got %s", want, latest)
	}
}

func TestHistoryClear(t *testing.T) {
	h := sampleHistory()

	h.Clear()
	h.Clear()

	if _, ok := h.Latest(); ok {
		t.Fatal("expected no latest calculation after clear")
	}
	if got := len(h.All()); got != 0 {
		t.Fatalf("expected empty history, got %d records", got)
	}
	if h.Len() != 0 {
		t.Fatalf("expected Len 0, got %d", h.Len())
	}
}

func TestHistoryFilter(t *testing.T) {
	h := sampleHistory()
	h.Add(NewCalculation(d("1"), d("1"), Add))

	tests := []struct {
		name string
		want []string
	}{
		{name: "add", want: []string{"Calculation(2, 3, add)", "Calculation(1, 1, add)"}},
		{name: "multiply", want: []string{"Calculation(10, 3, multiply)"}},
		{name: "Add", want: []string{}},
		{name: "power", want: []string{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := h.Filter(tc.name)
			if got == nil {
				t.Fatal("expected non-nil result")
			}
			if diff := cmp.Diff(tc.want, names(got)); diff != "" {
				t.Fatalf("filter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHistoryConcurrentAccess(t *testing.T) {
	h := NewHistory()
	const writes = 500

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			h.Add(NewCalculation(d("1"), d("2"), Add))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < writes; i++ {
			_ = h.Len()
			_, _ = h.Latest()
			_ = h.Filter("add")
			_ = h.All()
		}
	}()
	wg.Wait()

	if got := h.Len(); got != writes {
		t.Fatalf("expected %d records, got %d", writes, got)
	}
}
