package models

// MatchKind classifies how a query matched a piece of text.
type MatchKind int

const (
	// MatchNone means the query did not match.
	MatchNone MatchKind = iota
	// MatchExact means normalized text equals normalized query.
	MatchExact
	// MatchStarts means the text begins with the query.
	MatchStarts
	// MatchWord means the query occurs as a whole word in the original text.
	MatchWord
	// MatchWordBoundary means a substring match touching a non-word character on at least one side.
	MatchWordBoundary
	// MatchPartialWord means a substring match buried inside a larger token.
	MatchPartialWord
	// MatchContains means plain substring containment.
	MatchContains
	// MatchFuzzy means edit-distance similarity cleared the threshold.
	MatchFuzzy
	// MatchMultiWord means some of the query's words were found individually.
	MatchMultiWord
)

var matchKindNames = [...]string{
	MatchNone:         "none",
	MatchExact:        "exact",
	MatchStarts:       "starts",
	MatchWord:         "word",
	MatchWordBoundary: "word-boundary",
	MatchPartialWord:  "partial-word",
	MatchContains:     "contains",
	MatchFuzzy:        "fuzzy",
	MatchMultiWord:    "multi-word",
}

// String returns the wire name of the match kind.
func (k MatchKind) String() string {
	if k < 0 || int(k) >= len(matchKindNames) {
		return "unknown"
	}
	return matchKindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k MatchKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names decode to MatchNone.
func (k *MatchKind) UnmarshalText(text []byte) error {
	for i, name := range matchKindNames {
		if name == string(text) {
			*k = MatchKind(i)
			return nil
		}
	}
	*k = MatchNone
	return nil
}

// FieldMatch is the outcome of matching a query against one field.
type FieldMatch struct {
	Kind  MatchKind `json:"kind"`
	Score float64   `json:"score"`
}

// Matched reports whether the field matched at all.
func (m FieldMatch) Matched() bool {
	return m.Kind != MatchNone && m.Score > 0
}
