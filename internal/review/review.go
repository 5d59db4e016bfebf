package review

import "github.com/themelint/themelint/internal/schema"

// Counts returns the valid, warn, invalid totals across all results.
func Counts(results []schema.Result) (valid, warn, invalid int) {
	for _, res := range results {
		switch res.Status {
		case schema.StatusValid:
			valid++
		case schema.StatusWarn:
			warn++
		case schema.StatusInvalid:
			invalid++
		}
	}
	return valid, warn, invalid
}

// Verdict computes the overall verdict: any invalid result makes the file
// INVALID, otherwise any deprecated property makes it DEPRECATED, otherwise
// CLEAN. An empty file is CLEAN.
func Verdict(results []schema.Result) schema.Verdict {
	for _, res := range results {
		if res.Status == schema.StatusInvalid {
			return schema.VerdictInvalid
		}
	}
	for _, res := range results {
		if res.Status == schema.StatusWarn {
			return schema.VerdictDeprecated
		}
	}
	return schema.VerdictClean
}

// Summarize bundles the verdict and counts into a schema.Summary.
func Summarize(results []schema.Result) schema.Summary {
	valid, warn, invalid := Counts(results)
	return schema.Summary{
		Verdict:      Verdict(results),
		ValidCount:   valid,
		WarnCount:    warn,
		InvalidCount: invalid,
	}
}
