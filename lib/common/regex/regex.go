package regex

import "regexp"

type Regexes []*regexp.Regexp

func (rxs *Regexes) Add(r *regexp.Regexp) {
	*rxs = append(*rxs, r)
}

// MatchString reports whether any of the regexes matches s.
func (rxs Regexes) MatchString(s string) bool {
	for _, r := range rxs {
		if r.MatchString(s) {
			return true
		}
	}
	return false
}
