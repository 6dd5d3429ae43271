// Package printcalc is the canonical page-selection and cost computation
// shared by the advisory estimate endpoint and the authoritative job
// submission path. Both must run the exact same algorithm so that their
// results only ever diverge when their inputs do.
package printcalc

import (
	"sort"
	"strconv"
	"strings"
)

// Selection is the resolved form of a page-selection expression:
// distinct 1-based page numbers, sorted ascending.
type Selection struct {
	Pages []int
	Count int
}

const allPagesToken = "all"

// Resolve parses a page-selection expression ("all", "1-5,8,10-12")
// against a document's page count. The grammar is case-insensitive and
// whitespace-insignificant; "all" and the empty expression select every
// page. Duplicate pages are normalized away, everything else that is off
// is rejected with a typed error. Resolve is pure and deterministic.
func Resolve(expression string, totalPages int) (Selection, error) {
	if totalPages < 1 {
		return Selection{}, &InvalidPageCountError{TotalPages: totalPages}
	}

	expr := strings.ToLower(strings.TrimSpace(expression))
	if expr == "" || expr == allPagesToken {
		pages := make([]int, totalPages)
		for i := range pages {
			pages[i] = i + 1
		}
		return Selection{Pages: pages, Count: totalPages}, nil
	}

	seen := make(map[int]struct{})
	for _, term := range strings.Split(expr, ",") {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}

		lo, hi, err := parseTerm(term)
		if err != nil {
			return Selection{}, err
		}
		if lo < 1 {
			return Selection{}, &OutOfBoundsError{Page: lo, TotalPages: totalPages}
		}
		if hi > totalPages {
			return Selection{}, &OutOfBoundsError{Page: hi, TotalPages: totalPages}
		}
		for n := lo; n <= hi; n++ {
			seen[n] = struct{}{}
		}
	}

	if len(seen) == 0 {
		return Selection{}, &EmptySelectionError{}
	}

	pages := make([]int, 0, len(seen))
	for n := range seen {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return Selection{Pages: pages, Count: len(pages)}, nil
}

func parseTerm(term string) (lo, hi int, err error) {
	if i := strings.IndexByte(term, '-'); i >= 0 {
		a, errA := strconv.Atoi(strings.TrimSpace(term[:i]))
		b, errB := strconv.Atoi(strings.TrimSpace(term[i+1:]))
		if errA != nil || errB != nil {
			return 0, 0, &MalformedTermError{Term: term}
		}
		if a > b {
			return 0, 0, &InvertedRangeError{Start: a, End: b}
		}
		return a, b, nil
	}

	n, err := strconv.Atoi(term)
	if err != nil {
		return 0, 0, &MalformedTermError{Term: term}
	}
	return n, n, nil
}
