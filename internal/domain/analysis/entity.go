package analysis

// MaxUploadBytes is the inclusive cap on an uploaded image (5 MiB).
const MaxUploadBytes = 5 * 1024 * 1024

// Finding is one detected problem with its category and suggested remediation.
type Finding struct {
	Problem     string `json:"problem"`
	ProblemType string `json:"problem_type"`
	Suggestion  string `json:"suggestion"`
}

// Report is the wire shape of an analysis result: three parallel arrays,
// index i across all three refers to one finding. The arrays always have
// equal length, including the empty case.
type Report struct {
	Problems     []string `json:"problems"`
	ProblemTypes []string `json:"problem_types"`
	Suggestions  []string `json:"suggestions"`
}

// EmptyReport returns a report with non-nil empty arrays so the JSON
// encoding is always [] and never null.
func EmptyReport() Report {
	return Report{
		Problems:     []string{},
		ProblemTypes: []string{},
		Suggestions:  []string{},
	}
}

// Len returns the number of findings.
func (r Report) Len() int { return len(r.Problems) }

// Aligned reports whether the three arrays have matching length.
func (r Report) Aligned() bool {
	return len(r.Problems) == len(r.ProblemTypes) && len(r.Problems) == len(r.Suggestions)
}

// Findings converts the parallel arrays back into per-finding structs.
func (r Report) Findings() []Finding {
	out := make([]Finding, 0, len(r.Problems))
	for i := range r.Problems {
		out = append(out, Finding{
			Problem:     r.Problems[i],
			ProblemType: r.ProblemTypes[i],
			Suggestion:  r.Suggestions[i],
		})
	}
	return out
}
