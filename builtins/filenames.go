package builtins

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCount is the largest count accepted; the whole name list is built
// before any file is touched.
const MaxCount = 1_000_000

// Filenames returns count names of the form prefix_i for i = 1..count.
// The prefix is used as-is.
func Filenames(prefix string, count int) ([]string, error) {
	if prefix == "" {
		return nil, fmt.Errorf("%w: prefix must not be empty", ErrInvalidArgs)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count must be a positive integer, got %d", ErrInvalidArgs, count)
	}
	if count > MaxCount {
		return nil, fmt.Errorf("%w: count %d exceeds the maximum of %d", ErrInvalidArgs, count, MaxCount)
	}

	names := make([]string, count)
	for i := range names {
		names[i] = prefix + "_" + strconv.Itoa(i+1)
	}
	return names, nil
}

// ParseCount converts the raw -c value into a positive count.
func ParseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: count %q is not an integer", ErrInvalidArgs, raw)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: count must be a positive integer, got %d", ErrInvalidArgs, n)
	}
	if n > MaxCount {
		return 0, fmt.Errorf("%w: count %d exceeds the maximum of %d", ErrInvalidArgs, n, MaxCount)
	}
	return n, nil
}
