package predicate

import (
	"regexp"
	"testing"

	"github.com/sboehler/forecast/lib/common/regex"
)

type pair struct{ name, code string }

func TestMatches(t *testing.T) {
	var rxs regex.Regexes
	rxs.Add(regexp.MustCompile("^Acme"))
	rxs.Add(regexp.MustCompile("^F9"))
	pred := Matches(rxs,
		func(p pair) string { return p.name },
		func(p pair) string { return p.code },
	)
	tests := []struct {
		p    pair
		want bool
	}{
		{pair{"Acme SpA", "F001"}, true},
		{pair{"Beta Srl", "F900"}, true},
		{pair{"Beta Srl", "F001"}, false},
	}
	for _, test := range tests {
		if got := pred(test.p); got != test.want {
			t.Errorf("Matches(%v) = %t, want %t", test.p, got, test.want)
		}
	}
}

func TestMatchesWithoutRegexes(t *testing.T) {
	pred := Matches(nil, func(p pair) string { return p.name })
	if !pred(pair{"anything", ""}) {
		t.Errorf("Matches() without regexes = false, want true")
	}
}
