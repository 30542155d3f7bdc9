package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyengg/x7z/tree"
)

// ErrNoValidPicks is returned by parsePicks if none of the numbers refer to a listed file.
var ErrNoValidPicks = errors.New("no valid file numbers")

// parsePicks parses the record numbers shown by the list command into a selection of record indices.
//
// s contains whitespace-separated 1-based numbers and inclusive ranges such as "1-5 8 10-12", or "all". Numbers outside
// [1, n] are dropped, and a reversed range such as "5-2" selects nothing.
func parsePicks(s string, n int) (tree.Selection, error) {
	sel := tree.NewSelection()

	if strings.EqualFold(strings.TrimSpace(s), "all") {
		for i := 0; i < n; i++ {
			sel.Add(i)
		}
		if sel.Len() == 0 {
			return nil, ErrNoValidPicks
		}
		return sel, nil
	}

	for _, part := range strings.Fields(s) {
		lo, hi, isRange := strings.Cut(part, "-")

		start, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf(`invalid pick "%s": %w`, part, err)
		}

		end := start
		if isRange {
			if end, err = strconv.Atoi(hi); err != nil {
				return nil, fmt.Errorf(`invalid pick "%s": %w`, part, err)
			}
		}

		for i := max(start, 1); i <= min(end, n); i++ {
			sel.Add(i - 1)
		}
	}

	if sel.Len() == 0 {
		return nil, ErrNoValidPicks
	}

	return sel, nil
}
