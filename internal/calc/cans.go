package calc

import (
	"math"
	"sort"
)

// CanCount is a number of containers of one size.
type CanCount struct {
	SizeLiters float64 `json:"size_liters"`
	Count      int     `json:"count"`
}

// CanSuggestion is a purchase combination covering a paint requirement.
type CanSuggestion struct {
	Strategy        string     `json:"strategy"`
	Cans            []CanCount `json:"cans"`
	PurchasedLiters float64    `json:"purchased_liters"`
}

// CanStrategy picks container counts for a required volume. Implementations
// must purchase at least the required liters, or fail when the counts cannot
// be represented.
type CanStrategy interface {
	Name() string
	Suggest(liters float64, sizes []float64) (CanSuggestion, error)
}

// GreedyLargestFirst fills from the largest container down and rounds the
// remainder up with the smallest one. It is not an optimal coin change: 2.8 L
// becomes 2.7 + 0.9 rather than a tighter combination.
type GreedyLargestFirst struct{}

// Name implements CanStrategy.
func (GreedyLargestFirst) Name() string { return "greedy-largest-first" }

// Suggest implements CanStrategy.
func (g GreedyLargestFirst) Suggest(liters float64, sizes []float64) (CanSuggestion, error) {
	out := CanSuggestion{Strategy: g.Name(), Cans: []CanCount{}}

	usable := make([]float64, 0, len(sizes))
	for _, s := range sizes {
		if isFinite(s) && s > 0 {
			usable = append(usable, s)
		}
	}
	if len(usable) == 0 {
		return out, nil
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(usable)))

	remaining := nonNegative(liters)
	last := len(usable) - 1
	for i, size := range usable {
		round := FloorUnits
		if i == last {
			round = CeilUnits
		}
		n, ok := round(remaining / size)
		if !ok {
			return CanSuggestion{}, errNonFiniteResult
		}
		remaining = math.Max(remaining-float64(n)*size, 0)
		out.Cans = append(out.Cans, CanCount{SizeLiters: size, Count: n})
		out.PurchasedLiters += float64(n) * size
	}
	out.PurchasedLiters = math.Round(out.PurchasedLiters*1000) / 1000
	return out, nil
}
