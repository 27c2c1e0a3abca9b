// Package mlmodel loads and evaluates the pretrained TF-IDF vectorizer and
// k-means clustering artifacts exported from the training pipeline.
package mlmodel

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Vectorizer errors.
var (
	ErrEmptyVocabulary = errors.New("mlmodel: vectorizer has empty vocabulary")
	ErrIDFMismatch     = errors.New("mlmodel: idf weight count does not match vocabulary size")
)

// Vectorizer is a TF-IDF vectorizer with a fixed vocabulary, exported as
// JSON by the training pipeline.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// Validate checks the vectorizer invariants after load.
func (v *Vectorizer) Validate() error {
	if len(v.Vocabulary) == 0 {
		return ErrEmptyVocabulary
	}
	if len(v.IDF) != len(v.Vocabulary) {
		return fmt.Errorf("%w: %d idf weights for %d terms", ErrIDFMismatch, len(v.IDF), len(v.Vocabulary))
	}
	for term, idx := range v.Vocabulary {
		if idx < 0 || idx >= len(v.IDF) {
			return fmt.Errorf("mlmodel: term %q has out-of-range index %d", term, idx)
		}
	}
	return nil
}

// Features returns the dimensionality of produced vectors.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Transform converts normalized text into an L2-normalized TF-IDF vector.
// Terms outside the vocabulary are ignored; text with no known terms
// produces the zero vector, which is a valid input for Predict.
func (v *Vectorizer) Transform(text string) ([]float64, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	vec := make([]float64, len(v.IDF))
	for _, term := range strings.Fields(text) {
		idx, ok := v.Vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] += v.IDF[idx]
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
