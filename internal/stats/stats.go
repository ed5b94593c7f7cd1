// Package stats computes per-category counts and sums over a collection.
package stats

// Classifier names one statistic. Match selects the records it covers (nil
// means every record). Value is summed over the matching records; when nil
// each match counts as 1.
type Classifier[T any] struct {
	Label string
	Match func(rec *T) bool
	Value func(rec *T) float64
}

// Count is a classifier counting the records that satisfy match.
func Count[T any](label string, match func(rec *T) bool) Classifier[T] {
	return Classifier[T]{Label: label, Match: match}
}

// Sum is a classifier summing value over the records that satisfy match.
func Sum[T any](label string, match func(rec *T) bool, value func(rec *T) float64) Classifier[T] {
	return Classifier[T]{Label: label, Match: match, Value: value}
}

// Result maps classifier labels to their computed value.
type Result map[string]float64

// Int returns the value under label truncated to an int; missing labels are 0.
func (r Result) Int(label string) int {
	return int(r[label])
}

// Aggregate evaluates every classifier over records. Each classifier makes its
// own pass and keeps its own accumulator, so their order only matters when two
// share a label: the later one wins.
func Aggregate[T any](records []T, classifiers ...Classifier[T]) Result {
	out := make(Result, len(classifiers))
	for _, c := range classifiers {
		out[c.Label] = c.evaluate(records)
	}
	return out
}

func (c Classifier[T]) evaluate(records []T) float64 {
	var acc float64
	for i := range records {
		rec := &records[i]
		if c.Match != nil && !c.Match(rec) {
			continue
		}
		if c.Value == nil {
			acc++
			continue
		}
		acc += c.Value(rec)
	}
	return acc
}

// GroupBy buckets records by key and evaluates value (count when nil) per
// bucket. Keys come back in first-seen order.
func GroupBy[T any](records []T, key func(rec *T) string, value func(rec *T) float64) ([]string, Result) {
	keys := make([]string, 0)
	out := make(Result)
	for i := range records {
		rec := &records[i]
		k := key(rec)
		if k == "" {
			continue
		}
		if _, seen := out[k]; !seen {
			keys = append(keys, k)
		}
		if value == nil {
			out[k]++
			continue
		}
		out[k] += value(rec)
	}
	return keys, out
}
