package classifier

import (
	"fmt"
	"math"
	"sort"
)

// Feature is one non-zero entry of a sparse document vector.
type Feature struct {
	Index int
	Value float64
}

// Vector is a sparse document vector ordered by feature index.
type Vector []Feature

// Vectorizer turns text into L2-normalized TF-IDF vectors.
//
// Terms are the normalized tokens seen at fit time; the inverse document
// frequency of term t over n documents is ln((1+n)/(1+df(t))) + 1.
type Vectorizer struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
}

// FitVectorizer learns the vocabulary and IDF weights of docs.
func FitVectorizer(docs []string) (*Vectorizer, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("fit vectorizer: no documents")
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}
	if len(df) == 0 {
		return nil, fmt.Errorf("fit vectorizer: empty vocabulary")
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v := &Vectorizer{
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
	}
	for i, t := range terms {
		v.Vocabulary[t] = i
		v.IDF[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return v, nil
}

// Features returns the vocabulary size.
func (v *Vectorizer) Features() int {
	return len(v.IDF)
}

// Transform vectorizes doc. Unknown tokens are ignored, so text made only of
// unseen words yields an empty vector.
func (v *Vectorizer) Transform(doc string) Vector {
	counts := make(map[int]float64)
	for _, tok := range tokenize(doc) {
		if i, ok := v.Vocabulary[tok]; ok {
			counts[i]++
		}
	}

	vec := make(Vector, 0, len(counts))
	for i, c := range counts {
		vec = append(vec, Feature{Index: i, Value: c * v.IDF[i]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].Index < vec[b].Index })

	var sumSq float64
	for _, f := range vec {
		sumSq += f.Value * f.Value
	}
	if sumSq > 0 {
		norm := math.Sqrt(sumSq)
		for i := range vec {
			vec[i].Value /= norm
		}
	}
	return vec
}

func (v *Vectorizer) validate() error {
	if len(v.IDF) == 0 {
		return fmt.Errorf("vectorizer has no features")
	}
	if len(v.Vocabulary) != len(v.IDF) {
		return fmt.Errorf("vectorizer vocabulary has %d terms but %d idf weights", len(v.Vocabulary), len(v.IDF))
	}
	for term, i := range v.Vocabulary {
		if i < 0 || i >= len(v.IDF) {
			return fmt.Errorf("vectorizer term %q has out-of-range index %d", term, i)
		}
	}
	return nil
}
