package dataset

import (
	"strconv"
	"strings"

	"github.com/homier/hashtab"
)

var isbnSeparators = strings.NewReplacer("-", "", " ", "")

// NormalizeISBN turns an identifier into a ChainingMap key. Hyphens and
// spaces are stripped and the rest parsed as a base-10 integer; identifiers
// that don't parse fall back to the sum of their character codes.
func NormalizeISBN(id string) int64 {
	key, err := strconv.ParseInt(isbnSeparators.Replace(id), 10, 64)
	if err != nil {
		return int64(hashtab.CharCodeSum(id))
	}

	return key
}
