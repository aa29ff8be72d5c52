package batch

import (
	"fmt"
	"math"

	wall "Thermowall/internal/calc/wall"
)

const MaxItems = 500

type WallBatchInput struct {
	Items []wall.Input `json:"items"`
}

type WallBatchResult struct {
	Results []wall.Result `json:"results"`
	Totals  wall.Volume   `json:"totals"`
}

// CalculateWalls computes every item and sums volumes per material.
// The first invalid item aborts the batch.
func CalculateWalls(in WallBatchInput, resolver wall.Resolver) (WallBatchResult, error) {
	if len(in.Items) == 0 {
		return WallBatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return WallBatchResult{}, fmt.Errorf("too many items: %d > %d", len(in.Items), MaxItems)
	}
	out := WallBatchResult{
		Results: make([]wall.Result, 0, len(in.Items)),
		Totals:  wall.Volume{},
	}
	for i, item := range in.Items {
		if err := resolver.Resolve(&item); err != nil {
			return WallBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		res, err := wall.Calculate(item)
		if err != nil {
			return WallBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		for _, v := range res.Volumes {
			for name, m3 := range v {
				out.Totals[name] = roundVolume(out.Totals[name] + m3)
			}
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}

func roundVolume(v float64) float64 {
	return math.Round(v*100) / 100
}
