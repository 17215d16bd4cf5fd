package covid

import (
	"strconv"
	"strings"
)

// Coerce converts a raw numeric field to an integer.
//
// Every comma is removed first so "1,084,282" reads as 1084282. Empty,
// non-numeric, negative or out-of-range input yields 0. Coerce never fails.
func Coerce(text string) int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(text, ",", ""), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
