package calc

import "fmt"

// TileMode selects whether tiles go on the floor or the walls.
type TileMode string

const (
	TileFloor TileMode = "floor"
	TileWall  TileMode = "wall"
)

// TileJobSpec is the input of the tile calculator. When SurfaceArea is positive
// it is used as the gross area; otherwise the area comes from Room and Mode.
// DeductionArea is the bathtub/screen footprint in floor mode and the window
// and door openings in wall mode.
type TileJobSpec struct {
	Mode              TileMode       `json:"mode"`
	Room              RoomDimensions `json:"room"`
	SurfaceArea       float64        `json:"surface_area"`
	DeductionArea     float64        `json:"deduction_area"`
	TileLengthCm      float64        `json:"tile_length_cm"`
	TileWidthCm       float64        `json:"tile_width_cm"`
	GroutMm           float64        `json:"grout_mm"`
	Layout            LayoutMethod   `json:"layout"`
	PiecesPerPack     int            `json:"pieces_per_pack"`
	ExtraWastePercent float64        `json:"extra_waste_percent"`
}

// TileResult is the output of the tile calculator.
type TileResult struct {
	GrossArea     float64 `json:"gross_area"`
	NetArea       float64 `json:"net_area"`
	TileArea      float64 `json:"tile_area"` // m² per tile including one grout joint
	WastePercent  float64 `json:"waste_percent"`
	AreaWithWaste float64 `json:"area_with_waste"`
	Tiles         int     `json:"tiles"`
	Packs         int     `json:"packs"`
	AdhesiveKg    float64 `json:"adhesive_kg"`
}

// Tile computes tile, pack and adhesive quantities.
func (c *Calculator) Tile(spec TileJobSpec) (TileResult, error) {
	gross, err := c.tileGrossArea(spec)
	if err != nil {
		return TileResult{}, err
	}
	if err := requirePositive("tile_length_cm", spec.TileLengthCm); err != nil {
		return TileResult{}, err
	}
	if err := requirePositive("tile_width_cm", spec.TileWidthCm); err != nil {
		return TileResult{}, err
	}
	if spec.PiecesPerPack <= 0 {
		return TileResult{}, fmt.Errorf("%w: pieces_per_pack must be greater than 0", ErrInvalidInput)
	}

	layoutWaste, ok := c.tables.LayoutWaste[spec.Layout]
	if !ok {
		return TileResult{}, fmt.Errorf("%w: unknown layout %q", ErrInvalidInput, spec.Layout)
	}

	grout := nonNegative(spec.GroutMm) / 1000
	tileArea := (spec.TileLengthCm/100 + grout) * (spec.TileWidthCm/100 + grout)

	net := NetArea(gross, nonNegative(spec.DeductionArea))
	waste := layoutWaste + nonNegative(spec.ExtraWastePercent)
	withWaste := net * (1 + waste/100)
	adhesive := net * c.tables.AdhesiveKgPerM2
	if !allFinite(tileArea, withWaste, adhesive) {
		return TileResult{}, errNonFiniteResult
	}

	tiles, ok := CeilUnits(withWaste / tileArea)
	if !ok {
		return TileResult{}, errNonFiniteResult
	}
	packs, _ := CeilUnits(float64(tiles) / float64(spec.PiecesPerPack))

	return TileResult{
		GrossArea:     gross,
		NetArea:       net,
		TileArea:      tileArea,
		WastePercent:  waste,
		AreaWithWaste: withWaste,
		Tiles:         tiles,
		Packs:         packs,
		AdhesiveKg:    adhesive,
	}, nil
}

func (c *Calculator) tileGrossArea(spec TileJobSpec) (float64, error) {
	if spec.SurfaceArea != 0 {
		if err := requirePositive("surface_area", spec.SurfaceArea); err != nil {
			return 0, err
		}
		return spec.SurfaceArea, nil
	}

	switch spec.Mode {
	case TileWall:
		if err := spec.Room.Validate(); err != nil {
			return 0, err
		}
		return spec.Room.WallArea(), nil
	case TileFloor, "":
		if err := requirePositive("length", spec.Room.Length); err != nil {
			return 0, err
		}
		if err := requirePositive("width", spec.Room.Width); err != nil {
			return 0, err
		}
		return spec.Room.FloorArea(), nil
	default:
		return 0, fmt.Errorf("%w: unknown tile mode %q", ErrInvalidInput, spec.Mode)
	}
}
