package calc

import "math"

// PaintJobSpec is the input of the paint calculator.
type PaintJobSpec struct {
	Room             RoomDimensions `json:"room"`
	OpeningsArea     float64        `json:"openings_area"`
	CoveragePerLiter float64        `json:"coverage_per_liter"` // m² per liter per coat
	Coats            int            `json:"coats"`
	WastePercent     float64        `json:"waste_percent"`
	PaintCeiling     bool           `json:"paint_ceiling"`
	RoughWalls       bool           `json:"rough_walls"`
	Primer           bool           `json:"primer"`
}

// PaintResult is the output of the paint calculator.
type PaintResult struct {
	WallAreaPerCoat    float64       `json:"wall_area_per_coat"`
	CeilingAreaPerCoat float64       `json:"ceiling_area_per_coat"`
	WallAreaTotal      float64       `json:"wall_area_total"`
	CeilingAreaTotal   float64       `json:"ceiling_area_total"`
	EffectiveCoverage  float64       `json:"effective_coverage"`
	LitersWalls        float64       `json:"liters_walls"`
	LitersCeiling      float64       `json:"liters_ceiling"`
	Liters             float64       `json:"liters"`
	LitersRounded      float64       `json:"liters_rounded"`
	Cans               CanSuggestion `json:"cans"`
}

// Paint computes liters of paint and a can combination for a room.
func (c *Calculator) Paint(spec PaintJobSpec) (PaintResult, error) {
	if err := spec.Room.Validate(); err != nil {
		return PaintResult{}, err
	}
	if err := requireFinite("coverage_per_liter", spec.CoveragePerLiter); err != nil {
		return PaintResult{}, err
	}

	coverage := math.Max(spec.CoveragePerLiter, c.tables.MinCoverage)
	if spec.RoughWalls {
		coverage *= c.tables.RoughWallFactor
	}
	if spec.Primer {
		coverage *= c.tables.PrimerFactor
	}
	if !isFinite(coverage) || coverage <= 0 {
		return PaintResult{}, errNonFiniteResult
	}

	coats := spec.Coats
	if coats < 1 {
		coats = 1
	}
	wasteFactor := 1 + nonNegative(spec.WastePercent)/100

	wallPerCoat := NetArea(spec.Room.WallArea(), nonNegative(spec.OpeningsArea))
	ceilingPerCoat := 0.0
	if spec.PaintCeiling {
		ceilingPerCoat = spec.Room.FloorArea()
	}

	wallTotal := wallPerCoat * float64(coats) * wasteFactor
	ceilingTotal := ceilingPerCoat * float64(coats) * wasteFactor
	litersWalls := wallTotal / coverage
	litersCeiling := ceilingTotal / coverage
	liters := litersWalls + litersCeiling

	if !allFinite(wallTotal, ceilingTotal, liters) {
		return PaintResult{}, errNonFiniteResult
	}
	cans, err := c.cans.Suggest(liters, c.tables.CanSizes)
	if err != nil {
		return PaintResult{}, err
	}

	return PaintResult{
		WallAreaPerCoat:    wallPerCoat,
		CeilingAreaPerCoat: ceilingPerCoat,
		WallAreaTotal:      wallTotal,
		CeilingAreaTotal:   ceilingTotal,
		EffectiveCoverage:  coverage,
		LitersWalls:        litersWalls,
		LitersCeiling:      litersCeiling,
		Liters:             liters,
		LitersRounded:      Round1(liters),
		Cans:               cans,
	}, nil
}
