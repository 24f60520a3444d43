package moderation

import "sort"

// BatchResult aggregates per-string results. ErrorMessage is set iff at
// least one string was rejected, and is always the fixed RejectionMessage.
type BatchResult struct {
	AllClean     bool     `json:"allClean"`
	Results      []Result `json:"results"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
}

// ObjectResult is the all-or-nothing verdict for a whole request payload.
// Callers that need per-field detail should use CheckTexts directly.
type ObjectResult struct {
	IsClean      bool   `json:"isClean"`
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// CheckTexts runs CheckText over each element in order. An empty slice is
// vacuously clean.
func (f *Filter) CheckTexts(texts []string) BatchResult {
	batch := BatchResult{
		AllClean: true,
		Results:  make([]Result, 0, len(texts)),
	}

	for _, t := range texts {
		res := f.CheckText(t)
		if !res.IsClean {
			batch.AllClean = false
		}
		batch.Results = append(batch.Results, res)
	}

	if !batch.AllClean {
		batch.ErrorMessage = RejectionMessage
	}
	return batch
}

// CheckObject walks an arbitrary JSON-like value (as produced by
// encoding/json into any), collects every string leaf, and gates on the
// batch verdict. Non-string scalars are ignored, never stringified. The walk
// is depth-first with map keys visited in sorted order so results are
// reproducible for a given payload shape.
func (f *Filter) CheckObject(v any) ObjectResult {
	var texts []string
	collectStrings(v, &texts)

	batch := f.CheckTexts(texts)
	return ObjectResult{
		IsClean:      batch.AllClean,
		ErrorMessage: batch.ErrorMessage,
	}
}

// Strings returns every string leaf of a JSON-like value in traversal
// order. Callers that need per-field detail (for example the rejection
// event log) run this through CheckTexts themselves; CheckObject stays an
// all-or-nothing gate.
func Strings(v any) []string {
	var texts []string
	collectStrings(v, &texts)
	return texts
}

func collectStrings(v any, out *[]string) {
	switch t := v.(type) {
	case string:
		*out = append(*out, t)
	case []string:
		*out = append(*out, t...)
	case []any:
		for _, e := range t {
			collectStrings(e, out)
		}
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			collectStrings(t[k], out)
		}
	}
}
