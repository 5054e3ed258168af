package internal

import (
	"strconv"

	"github.com/jinzhu/inflection"
)

// Count formats n followed by word, pluralized unless n is 1.
func Count(n int, word string) string {
	if n != 1 {
		word = inflection.Plural(word)
	}
	return strconv.Itoa(n) + " " + word
}
