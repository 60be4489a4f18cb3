package batch

import (
	"fmt"

	line "Linea/internal/calc/line"
)

type LineBatchInput struct {
	Items []line.Input `json:"items"`
}

type LineBatchResult struct {
	Results []line.Result `json:"results"`
}

// CalculateLines computes one summary per item. Items with rejected
// sections still occupy their slot, carrying the per-section errors.
func CalculateLines(in LineBatchInput) (LineBatchResult, error) {
	if len(in.Items) == 0 {
		return LineBatchResult{}, fmt.Errorf("no items")
	}
	out := LineBatchResult{Results: make([]line.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Results = append(out.Results, line.Calculate(item))
	}
	return out, nil
}
