package ranking

// ScoringWeights holds every constant of the matching and scoring policy.
type ScoringWeights struct {
	// Fuzzy matcher scores per match kind
	ExactScore        float64 `yaml:"exact_score"`         // default: 100
	ExactBonus        float64 `yaml:"exact_bonus"`         // default: 1.5 (exact = 150)
	StartsScore       float64 `yaml:"starts_score"`        // default: 80
	WordScore         float64 `yaml:"word_score"`          // default: 75
	WordBoundaryScore float64 `yaml:"word_boundary_score"` // default: 65
	PartialWordScore  float64 `yaml:"partial_word_score"`  // default: 55
	ContainsScore     float64 `yaml:"contains_score"`      // default: 50
	FuzzyScore        float64 `yaml:"fuzzy_score"`         // default: 30, scaled by similarity
	MultiWordScore    float64 `yaml:"multi_word_score"`    // default: 40, scaled by matched word ratio
	FuzzyThreshold    float64 `yaml:"fuzzy_threshold"`     // default: 0.7

	// Product field weights
	TitleWeight       float64 `yaml:"title_weight"`       // default: 2.0
	CategoryWeight    float64 `yaml:"category_weight"`    // default: 1.5
	DescriptionWeight float64 `yaml:"description_weight"` // default: 0.5
	TagWeight         float64 `yaml:"tag_weight"`         // default: 0.8
	KeywordWeight     float64 `yaml:"keyword_weight"`     // default: 0.6

	// Product flat bonuses
	TitleWordBoundaryBonus    float64 `yaml:"title_word_boundary_bonus"`   // default: 70
	TitleSubstringBonus       float64 `yaml:"title_substring_bonus"`       // default: 40
	TitleSynonymBonus         float64 `yaml:"title_synonym_bonus"`         // default: 30, per synonym
	SynonymMinLength          int     `yaml:"synonym_min_length"`          // default: 3
	CategoryOverlapBonus      float64 `yaml:"category_overlap_bonus"`      // default: 50
	DescriptionSubstringBonus float64 `yaml:"description_substring_bonus"` // default: 20
	IntentBonus               float64 `yaml:"intent_bonus"`                // default: 100
	AllWordsBonus             float64 `yaml:"all_words_bonus"`             // default: 25
	PopularBonus              float64 `yaml:"popular_bonus"`               // default: 5
	FeaturedBonus             float64 `yaml:"featured_bonus"`              // default: 3

	// Category scoring
	CategoryNameWeight        float64 `yaml:"category_name_weight"`         // default: 2.0
	CategoryNameSynonymWeight float64 `yaml:"category_name_synonym_weight"` // default: 1.5
	CategorySlugWeight        float64 `yaml:"category_slug_weight"`         // default: 1.5
	CategoryDescriptionWeight float64 `yaml:"category_description_weight"`  // default: 0.8
	CategoryKeywordWeight     float64 `yaml:"category_keyword_weight"`      // default: 1.0
	CategoryIntentBonus       float64 `yaml:"category_intent_bonus"`        // default: 50
	CategoryFeaturedBonus     float64 `yaml:"category_featured_bonus"`      // default: 5

	// Product search category boost
	CategoryBoost float64 `yaml:"category_boost"` // default: 80
	// CategoryOverlapMinLength is the shortest category name/slug and query
	// for which substring overlap counts as a matching category.
	CategoryOverlapMinLength int `yaml:"category_overlap_min_length"` // default: 1
}

// DefaultScoringWeights returns the default scoring policy.
func DefaultScoringWeights() *ScoringWeights {
	return &ScoringWeights{
		ExactScore:        100,
		ExactBonus:        1.5,
		StartsScore:       80,
		WordScore:         75,
		WordBoundaryScore: 65,
		PartialWordScore:  55,
		ContainsScore:     50,
		FuzzyScore:        30,
		MultiWordScore:    40,
		FuzzyThreshold:    0.7,

		TitleWeight:       2.0,
		CategoryWeight:    1.5,
		DescriptionWeight: 0.5,
		TagWeight:         0.8,
		KeywordWeight:     0.6,

		TitleWordBoundaryBonus:    70,
		TitleSubstringBonus:       40,
		TitleSynonymBonus:         30,
		SynonymMinLength:          3,
		CategoryOverlapBonus:      50,
		DescriptionSubstringBonus: 20,
		IntentBonus:               100,
		AllWordsBonus:             25,
		PopularBonus:              5,
		FeaturedBonus:             3,

		CategoryNameWeight:        2.0,
		CategoryNameSynonymWeight: 1.5,
		CategorySlugWeight:        1.5,
		CategoryDescriptionWeight: 0.8,
		CategoryKeywordWeight:     1.0,
		CategoryIntentBonus:       50,
		CategoryFeaturedBonus:     5,

		CategoryBoost:            80,
		CategoryOverlapMinLength: 1,
	}
}
