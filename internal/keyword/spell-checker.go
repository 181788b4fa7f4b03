package keyword

import (
	"sort"
	"strings"
	"sync"
)

// Suggestion is a candidate correction for one term.
type Suggestion struct {
	Term      string  // The suggested term
	Distance  int     // Edit distance from the original term
	Frequency int     // Document frequency in the catalogue
	Score     float64 // Combined score for ranking
}

// SpellCheckResult contains the result of spell checking a query.
type SpellCheckResult struct {
	OriginalQuery   string
	CorrectedQuery  string
	Suggestions     []Suggestion // Suggestions for each misspelled term
	HasCorrections  bool
	MisspelledTerms []string
}

// SpellChecker corrects query terms against a TermDictionary.
// It is safe for concurrent use.
type SpellChecker struct {
	dictionary     TermDictionary
	maxDistance    int
	minFreq        int
	maxSuggestions int
	minTermLength  int
	transpositions bool
	suggestions    *SuggestionCache

	cacheMu    sync.RWMutex
	termsCache []string
	termSet    map[string]struct{}
	cacheValid bool
}

// SpellCheckerOption is a functional option for configuring SpellChecker.
type SpellCheckerOption func(*SpellChecker)

// WithMaxDistance sets the maximum edit distance for suggestions.
func WithMaxDistance(d int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if d > 0 {
			s.maxDistance = d
		}
	}
}

// WithMinFrequency ignores dictionary terms seen in fewer documents than f.
func WithMinFrequency(f int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if f >= 0 {
			s.minFreq = f
		}
	}
}

// WithMaxSuggestions sets the maximum number of suggestions returned per term.
func WithMaxSuggestions(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n > 0 {
			s.maxSuggestions = n
		}
	}
}

// WithMinTermLength leaves terms shorter than n runes uncorrected.
func WithMinTermLength(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n >= 0 {
			s.minTermLength = n
		}
	}
}

// WithTranspositions counts swapped adjacent letters as a single edit.
func WithTranspositions(enabled bool) SpellCheckerOption {
	return func(s *SpellChecker) {
		s.transpositions = enabled
	}
}

// WithSuggestionCache remembers the suggestions of up to n terms.
func WithSuggestionCache(n int) SpellCheckerOption {
	return func(s *SpellChecker) {
		if n > 0 {
			s.suggestions = NewSuggestionCache(n)
		}
	}
}

// NewSpellChecker creates a new SpellChecker with the given dictionary.
func NewSpellChecker(dict TermDictionary, opts ...SpellCheckerOption) *SpellChecker {
	s := &SpellChecker{
		dictionary:     dict,
		maxDistance:    2,
		minFreq:        1,
		maxSuggestions: 5,
		minTermLength:  3,
		termSet:        make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// RefreshCache reloads the term list from the dictionary.
func (s *SpellChecker) RefreshCache() error {
	terms, err := s.dictionary.GetAllTerms()
	if err != nil {
		return err
	}

	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		set[strings.ToLower(t)] = struct{}{}
	}

	s.cacheMu.Lock()
	s.termsCache = terms
	s.termSet = set
	s.cacheValid = true
	s.cacheMu.Unlock()
	if s.suggestions != nil {
		s.suggestions.Purge()
	}
	return nil
}

func (s *SpellChecker) ensureCache() error {
	s.cacheMu.RLock()
	valid := s.cacheValid
	s.cacheMu.RUnlock()
	if valid {
		return nil
	}
	return s.RefreshCache()
}

func (s *SpellChecker) known(term string) bool {
	s.cacheMu.RLock()
	defer s.cacheMu.RUnlock()
	_, ok := s.termSet[term]
	return ok
}

// Check checks every whitespace-separated term of query and proposes a corrected query.
func (s *SpellChecker) Check(query string) (*SpellCheckResult, error) {
	if err := s.ensureCache(); err != nil {
		return nil, err
	}

	terms := strings.Fields(strings.ToLower(query))
	result := &SpellCheckResult{
		OriginalQuery:   query,
		Suggestions:     make([]Suggestion, 0),
		MisspelledTerms: make([]string, 0),
	}

	corrected := make([]string, 0, len(terms))
	for _, term := range terms {
		if s.known(term) || len([]rune(term)) < s.minTermLength {
			corrected = append(corrected, term)
			continue
		}

		suggestions := s.Suggest(term)
		if len(suggestions) == 0 {
			corrected = append(corrected, term)
			continue
		}
		result.HasCorrections = true
		result.MisspelledTerms = append(result.MisspelledTerms, term)
		result.Suggestions = append(result.Suggestions, suggestions...)
		corrected = append(corrected, suggestions[0].Term)
	}

	result.CorrectedQuery = strings.Join(corrected, " ")
	return result, nil
}

// Suggest returns corrections for a single term, best first.
func (s *SpellChecker) Suggest(term string) []Suggestion {
	if err := s.ensureCache(); err != nil {
		return nil
	}

	termLower := strings.ToLower(term)
	if s.suggestions != nil {
		if cached, ok := s.suggestions.Get(termLower); ok {
			return cached
		}
	}
	termLen := len([]rune(termLower))

	s.cacheMu.RLock()
	terms := s.termsCache
	s.cacheMu.RUnlock()

	suggestions := make([]Suggestion, 0)
	for _, dictTerm := range terms {
		candidate := strings.ToLower(dictTerm)
		if candidate == termLower {
			continue
		}

		// Length difference is a lower bound on the distance.
		lenDiff := len([]rune(candidate)) - termLen
		if lenDiff < 0 {
			lenDiff = -lenDiff
		}
		if lenDiff > s.maxDistance {
			continue
		}

		distance := s.distance(termLower, candidate)
		if distance > s.maxDistance {
			continue
		}
		freq, err := s.dictionary.GetTermFrequency(dictTerm)
		if err != nil || freq < s.minFreq {
			continue
		}

		suggestions = append(suggestions, Suggestion{
			Term:      dictTerm,
			Distance:  distance,
			Frequency: freq,
			Score:     float64(freq) / float64(distance+1),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Term < suggestions[j].Term
	})

	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}
	if s.suggestions != nil {
		s.suggestions.Set(termLower, suggestions)
	}
	return suggestions
}

func (s *SpellChecker) distance(a, b string) int {
	if s.transpositions {
		return DamerauLevenshteinDistance(a, b)
	}
	return LevenshteinDistance(a, b)
}

// IsMisspelled reports whether term is absent from the dictionary.
func (s *SpellChecker) IsMisspelled(term string) bool {
	if err := s.ensureCache(); err != nil {
		return false
	}
	return !s.known(strings.ToLower(term))
}

// GetSuggestedQuery returns the corrected query, or query itself when nothing needs fixing.
func (s *SpellChecker) GetSuggestedQuery(query string) string {
	result, err := s.Check(query)
	if err != nil || !result.HasCorrections {
		return query
	}
	return result.CorrectedQuery
}
