package keyword

import (
	"testing"
)

func TestBuildVocabulary(t *testing.T) {
	docs := []string{
		"Crochet Flower Bouquet handmade crochet",
		"Lavender Soy Candle",
		"",
		"Handmade Leather Tote Bag 2024",
	}
	v, err := BuildVocabulary(docs)
	if err != nil {
		t.Fatalf("BuildVocabulary: %v", err)
	}

	for _, term := range []string{"crochet", "bouquet", "lavender", "candle", "tote", "handmade"} {
		ok, err := v.ContainsTerm(term)
		if err != nil {
			t.Fatalf("ContainsTerm(%q): %v", term, err)
		}
		if !ok {
			t.Errorf("vocabulary missing %q", term)
		}
	}

	if ok, _ := v.ContainsTerm("2024"); ok {
		t.Error("numeric terms should be skipped")
	}
	if ok, _ := v.ContainsTerm("Crochet"); ok {
		t.Error("terms should be lowercased by the analyzer")
	}

	freq, _ := v.GetTermFrequency("handmade")
	if freq != 2 {
		t.Errorf("GetTermFrequency(handmade) = %d, want 2 (document frequency)", freq)
	}
	freq, _ = v.GetTermFrequency("crochet")
	if freq != 1 {
		t.Errorf("GetTermFrequency(crochet) = %d, want 1", freq)
	}

	terms, _ := v.GetAllTerms()
	if len(terms) != v.Len() {
		t.Errorf("GetAllTerms returned %d terms, Len() = %d", len(terms), v.Len())
	}
	for i := 1; i < len(terms); i++ {
		if terms[i-1] > terms[i] {
			t.Fatalf("terms not sorted at %d: %q > %q", i, terms[i-1], terms[i])
		}
	}
}

func TestBuildVocabulary_Empty(t *testing.T) {
	v, err := BuildVocabulary(nil)
	if err != nil {
		t.Fatalf("BuildVocabulary(nil): %v", err)
	}
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
}

func TestVocabulary_FeedsSpellChecker(t *testing.T) {
	v, err := BuildVocabulary([]string{"scented candle", "scented candle jar", "crochet bag"})
	if err != nil {
		t.Fatalf("BuildVocabulary: %v", err)
	}
	sc := NewSpellChecker(v)
	if got := sc.GetSuggestedQuery("scentd candel"); got != "scented candle" {
		t.Errorf("GetSuggestedQuery = %q, want %q", got, "scented candle")
	}
}
