package calc

import "fmt"

// LightingJobSpec is the input of the lighting calculator.
type LightingJobSpec struct {
	Length         float64  `json:"length"`
	Width          float64  `json:"width"`
	RoomType       RoomType `json:"room_type"`
	LumenPerLamp   float64  `json:"lumen_per_lamp"`
	ReservePercent float64  `json:"reserve_percent"`
}

// LightingResult is the output of the lighting calculator.
type LightingResult struct {
	Area              float64 `json:"area"`
	LuxNorm           float64 `json:"lux_norm"`
	Lumens            float64 `json:"lumens"`
	LumensWithReserve float64 `json:"lumens_with_reserve"`
	Lamps             int     `json:"lamps"`
}

// Lighting computes the luminous flux a room needs and the lamp count.
func (c *Calculator) Lighting(spec LightingJobSpec) (LightingResult, error) {
	if err := requirePositive("length", spec.Length); err != nil {
		return LightingResult{}, err
	}
	if err := requirePositive("width", spec.Width); err != nil {
		return LightingResult{}, err
	}
	if err := requirePositive("lumen_per_lamp", spec.LumenPerLamp); err != nil {
		return LightingResult{}, err
	}
	lux, ok := c.tables.LuxNorms[spec.RoomType]
	if !ok {
		return LightingResult{}, fmt.Errorf("%w: unknown room type %q", ErrInvalidInput, spec.RoomType)
	}

	area := FloorArea(spec.Length, spec.Width)
	lumens := area * lux
	withReserve := lumens * (1 + nonNegative(spec.ReservePercent)/100)
	if !allFinite(lumens, withReserve) {
		return LightingResult{}, errNonFiniteResult
	}
	lamps, ok := CeilUnits(withReserve / spec.LumenPerLamp)
	if !ok {
		return LightingResult{}, errNonFiniteResult
	}

	return LightingResult{
		Area:              area,
		LuxNorm:           lux,
		Lumens:            lumens,
		LumensWithReserve: withReserve,
		Lamps:             lamps,
	}, nil
}
