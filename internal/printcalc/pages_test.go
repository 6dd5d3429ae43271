package printcalc

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	t.Run("all keyword", func(t *testing.T) {
		sel, err := Resolve("all", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Count != 10 {
			t.Fatalf("expected 10 pages, got %d", sel.Count)
		}
		if sel.Pages[0] != 1 || sel.Pages[9] != 10 {
			t.Fatalf("unexpected pages: %v", sel.Pages)
		}
	})

	t.Run("empty expression means all", func(t *testing.T) {
		sel, err := Resolve("   ", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(sel.Pages, []int{1, 2, 3}) {
			t.Fatalf("unexpected pages: %v", sel.Pages)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		sel, err := Resolve("ALL", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel.Count != 2 {
			t.Fatalf("expected 2 pages, got %d", sel.Count)
		}
	})

	t.Run("mixed singles and ranges", func(t *testing.T) {
		sel, err := Resolve("1-3,5", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(sel.Pages, []int{1, 2, 3, 5}) {
			t.Fatalf("unexpected pages: %v", sel.Pages)
		}
		if sel.Count != 4 {
			t.Fatalf("expected count 4, got %d", sel.Count)
		}
	})

	t.Run("whitespace insignificant", func(t *testing.T) {
		sel, err := Resolve(" 1 - 3 , 5 ", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(sel.Pages, []int{1, 2, 3, 5}) {
			t.Fatalf("unexpected pages: %v", sel.Pages)
		}
	})

	t.Run("duplicates normalized not rejected", func(t *testing.T) {
		a, err := Resolve("3,1,2,2,1", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := Resolve("1-3", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("expected identical selections, got %v and %v", a, b)
		}
	})

	t.Run("out of bounds rejected not clamped", func(t *testing.T) {
		_, err := Resolve("11", 10)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
		if oob.Page != 11 || oob.TotalPages != 10 {
			t.Fatalf("unexpected detail: %+v", oob)
		}
	})

	t.Run("range end out of bounds", func(t *testing.T) {
		_, err := Resolve("8-12", 10)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
		if oob.Page != 12 {
			t.Fatalf("expected offending page 12, got %d", oob.Page)
		}
	})

	t.Run("non-positive page count rejected", func(t *testing.T) {
		for _, totalPages := range []int{0, -3} {
			_, err := Resolve("1-2", totalPages)
			var invalid *InvalidPageCountError
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidPageCountError for %d, got %v", totalPages, err)
			}
			if invalid.TotalPages != totalPages {
				t.Fatalf("unexpected detail: %+v", invalid)
			}
		}
	})

	t.Run("zero page rejected", func(t *testing.T) {
		_, err := Resolve("0-3", 10)
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) {
			t.Fatalf("expected OutOfBoundsError, got %v", err)
		}
	})

	t.Run("inverted range rejected not swapped", func(t *testing.T) {
		_, err := Resolve("5-3", 10)
		var inv *InvertedRangeError
		if !errors.As(err, &inv) {
			t.Fatalf("expected InvertedRangeError, got %v", err)
		}
		if inv.Start != 5 || inv.End != 3 {
			t.Fatalf("unexpected detail: %+v", inv)
		}
	})

	t.Run("malformed term", func(t *testing.T) {
		for _, expr := range []string{"abc", "1-x", "x-3", "1.5", "2-"} {
			_, err := Resolve(expr, 10)
			var mal *MalformedTermError
			if !errors.As(err, &mal) {
				t.Fatalf("expected MalformedTermError for %q, got %v", expr, err)
			}
		}
	})

	t.Run("only separators yields empty selection", func(t *testing.T) {
		_, err := Resolve(",,", 10)
		var empty *EmptySelectionError
		if !errors.As(err, &empty) {
			t.Fatalf("expected EmptySelectionError, got %v", err)
		}
	})

	t.Run("invalid total pages", func(t *testing.T) {
		if _, err := Resolve("1", 0); err == nil {
			t.Fatalf("expected error for zero total pages")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := Resolve("10-12,1,8", 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 0; i < 10; i++ {
			again, err := Resolve("10-12,1,8", 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(first, again) {
				t.Fatalf("resolution not deterministic: %v vs %v", first, again)
			}
		}
	})
}
