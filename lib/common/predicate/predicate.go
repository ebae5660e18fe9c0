package predicate

import (
	"github.com/sboehler/forecast/lib/common/regex"
)

type Predicate[T any] func(T) bool

func True[T any](_ T) bool {
	return true
}

// Matches is true if any of the regexes matches one of the keys of t. It
// is always true if there are no regexes.
func Matches[T any](rxs regex.Regexes, keys ...func(T) string) Predicate[T] {
	if len(rxs) == 0 {
		return True[T]
	}
	return func(t T) bool {
		for _, key := range keys {
			if rxs.MatchString(key(t)) {
				return true
			}
		}
		return false
	}
}
