package sieve

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidLimit = errors.New("limit must be a non-negative integer")

// ParseLimit converts caller input into a limit. Anything that is not a
// decimal integer >= 0 is rejected.
func ParseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLimit, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	return n, nil
}
