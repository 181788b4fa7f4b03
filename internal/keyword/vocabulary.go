package keyword

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
)

// TermDictionary provides the term list the spell checker corrects against.
type TermDictionary interface {
	// GetAllTerms returns all unique terms.
	GetAllTerms() ([]string, error)
	// GetTermFrequency returns the number of documents containing the term.
	GetTermFrequency(term string) (int, error)
	// ContainsTerm reports whether the term is known.
	ContainsTerm(term string) (bool, error)
}

const vocabularyField = "text"

// Vocabulary is an immutable term dictionary built from catalogue text.
type Vocabulary struct {
	terms []string
	freq  map[string]int
}

// BuildVocabulary tokenizes every document with bleve's standard analyzer
// (lowercase, unicode word segmentation, English stop words removed) and
// records each term's document frequency. The index lives only in memory
// and is closed before returning.
func BuildVocabulary(docs []string) (*Vocabulary, error) {
	im := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()
	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = standard.Name
	textField.Store = false
	docMapping.AddFieldMappingsAt(vocabularyField, textField)
	im.DefaultMapping = docMapping

	index, err := bleve.NewMemOnly(im)
	if err != nil {
		return nil, fmt.Errorf("failed to create vocabulary index: %w", err)
	}
	defer index.Close()

	batch := index.NewBatch()
	for i, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		if err := batch.Index(strconv.Itoa(i), map[string]interface{}{vocabularyField: doc}); err != nil {
			return nil, fmt.Errorf("failed to index vocabulary document %d: %w", i, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to index vocabulary: %w", err)
	}

	dict, err := index.FieldDict(vocabularyField)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary terms: %w", err)
	}
	defer dict.Close()

	v := &Vocabulary{freq: make(map[string]int)}
	for {
		entry, err := dict.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to read vocabulary terms: %w", err)
		}
		if entry == nil {
			break
		}
		// Numbers are never worth correcting towards.
		if _, convErr := strconv.Atoi(entry.Term); convErr == nil {
			continue
		}
		v.terms = append(v.terms, entry.Term)
		v.freq[entry.Term] = int(entry.Count)
	}
	sort.Strings(v.terms)
	return v, nil
}

// Len returns the number of distinct terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// GetAllTerms returns all terms in lexical order.
func (v *Vocabulary) GetAllTerms() ([]string, error) {
	out := make([]string, len(v.terms))
	copy(out, v.terms)
	return out, nil
}

// GetTermFrequency returns the document frequency of term, or 0.
func (v *Vocabulary) GetTermFrequency(term string) (int, error) {
	return v.freq[term], nil
}

// ContainsTerm reports whether term occurs in any document.
func (v *Vocabulary) ContainsTerm(term string) (bool, error) {
	_, ok := v.freq[term]
	return ok, nil
}
