package output

import "sort"

// SplitResult holds the full stage-output set of one train/evaluation
// split. Stages that never ran stay nil.
type SplitResult struct {
	Train        *Train        `json:"train,omitempty" yaml:"train,omitempty"`
	Eval         *Eval         `json:"eval,omitempty" yaml:"eval,omitempty"`
	FairnessPost *FairnessPost `json:"fairness_post,omitempty" yaml:"fairness_post,omitempty"`
}

// Collection maps a split identifier to that split's results. Aggregation
// stages consume it read-only and must never assume a fixed split count.
type Collection map[string]*SplitResult

// Splits returns the split identifiers in lexical order.
func (c Collection) Splits() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Metric collects the named evaluation metric across all splits that
// produced it, keyed by split identifier.
func (c Collection) Metric(name string) map[string]float64 {
	values := make(map[string]float64, len(c))
	for split, res := range c {
		if res == nil || res.Eval == nil {
			continue
		}
		if v, ok := res.Eval.Metrics[name]; ok {
			values[split] = v
		}
	}

	return values
}
