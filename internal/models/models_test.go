package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCategoryRef(t *testing.T) {
	tests := []struct {
		name     string
		ref      CategoryRef
		byID     bool
		byName   bool
		zero     bool
		wantJSON string
	}{
		{"by id", CategoryByID("Candles"), true, false, false, `{"id":"Candles"}`},
		{"by name", CategoryByName("Handmade Crochet"), false, true, false, `{"name":"Handmade Crochet"}`},
		{"empty value", CategoryByID(""), true, false, true, `{"id":""}`},
		{"zero", CategoryRef{}, false, false, true, `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ref.IsByID(); got != tt.byID {
				t.Errorf("IsByID() = %v, want %v", got, tt.byID)
			}
			if got := tt.ref.IsByName(); got != tt.byName {
				t.Errorf("IsByName() = %v, want %v", got, tt.byName)
			}
			if got := tt.ref.IsZero(); got != tt.zero {
				t.Errorf("IsZero() = %v, want %v", got, tt.zero)
			}
			data, err := json.Marshal(tt.ref)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("Marshal = %s, want %s", data, tt.wantJSON)
			}
		})
	}
}

func TestCategoryRef_UnmarshalJSON(t *testing.T) {
	var ref CategoryRef
	if err := json.Unmarshal([]byte(`{"name":"Home decor"}`), &ref); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !ref.IsByName() || ref.Value() != "Home decor" {
		t.Errorf("got %s, want name:Home decor", ref)
	}
}

func TestMatchKind_String(t *testing.T) {
	tests := []struct {
		kind MatchKind
		want string
	}{
		{MatchNone, "none"},
		{MatchExact, "exact"},
		{MatchStarts, "starts"},
		{MatchWord, "word"},
		{MatchWordBoundary, "word-boundary"},
		{MatchPartialWord, "partial-word"},
		{MatchContains, "contains"},
		{MatchFuzzy, "fuzzy"},
		{MatchMultiWord, "multi-word"},
		{MatchKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("MatchKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestMatchKind_TextRoundTrip(t *testing.T) {
	var k MatchKind
	if err := k.UnmarshalText([]byte("partial-word")); err != nil {
		t.Fatal(err)
	}
	if k != MatchPartialWord {
		t.Errorf("got %v, want partial-word", k)
	}
	if err := k.UnmarshalText([]byte("bogus")); err != nil {
		t.Fatal(err)
	}
	if k != MatchNone {
		t.Errorf("unknown name decoded to %v, want none", k)
	}
}

func TestSearchIntent_HasCategory(t *testing.T) {
	intent := &SearchIntent{Categories: []string{"home-decor", "Candles"}}
	if !intent.HasCategory("Candles") {
		t.Error("expected Candles in intent")
	}
	if intent.HasCategory("Handbags") {
		t.Error("Handbags should not be in intent")
	}
	if intent.HasCategory("") {
		t.Error("empty id should never match")
	}
	var nilIntent *SearchIntent
	if nilIntent.HasCategory("Candles") {
		t.Error("nil intent should not match")
	}
}

func TestScoredProduct_JSON(t *testing.T) {
	sp := &ScoredProduct{
		Product:        &Product{ID: 7, Title: "Lavender Candle", Category: CategoryByID("Candles")},
		RelevanceScore: 162.5,
		MatchDetails:   MatchDetails{TitleMatch: FieldMatch{Kind: MatchWord, Score: 75}, IntentMatch: true},
	}
	data, err := json.Marshal(sp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"id":7`, `"title":"Lavender Candle"`, `"_relevanceScore":162.5`, `"kind":"word"`, `"intentMatch":true`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, "createdAt") {
		t.Errorf("zero createdAt should be omitted: %s", s)
	}
}

func TestEmptyCombinedResponse(t *testing.T) {
	resp := EmptyCombinedResponse("")
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"products":[]`, `"categories":[]`, `"all":[]`, `"hasResults":false`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
}
