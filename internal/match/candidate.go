package match

import "sort"

// DefaultSuggestThreshold is the minimum similarity for a name to be suggested.
const DefaultSuggestThreshold = 0.6

// Candidate is a member name scored against a looked-up name.
type Candidate struct {
	Name  string
	Score float64
}

// CandidateList is sorted by descending score, then by name.
type CandidateList []Candidate

func (c CandidateList) Len() int      { return len(c) }
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Best returns the highest ranked candidate.
func (c CandidateList) Best() (Candidate, bool) {
	if len(c) == 0 {
		return Candidate{}, false
	}

	return c[0], true
}

// RankNames scores every name against target.
func RankNames(target string, names []string) CandidateList {
	list := make(CandidateList, 0, len(names))
	for _, name := range names {
		list = append(list, Candidate{Name: name, Score: NameSimilarity(target, name)})
	}

	sort.Sort(list)

	return list
}

// Suggest returns the name closest to target if it scores at least threshold.
func Suggest(target string, names []string, threshold float64) (string, bool) {
	best, ok := RankNames(target, names).Best()
	if !ok || best.Score < threshold {
		return "", false
	}

	return best.Name, true
}
