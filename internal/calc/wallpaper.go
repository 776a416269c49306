package calc

import "fmt"

// WallpaperJobSpec is the input of the wallpaper calculator. WallLength is the
// perimeter to cover in meters; when it is zero the length is derived from
// WallArea (minus OpeningsArea) divided by WallHeight.
type WallpaperJobSpec struct {
	WallHeight    float64 `json:"wall_height"`
	WallLength    float64 `json:"wall_length"`
	OpeningsWidth float64 `json:"openings_width"`
	WallArea      float64 `json:"wall_area"`
	OpeningsArea  float64 `json:"openings_area"`
	RollLength    float64 `json:"roll_length"`
	RollWidth     float64 `json:"roll_width"`
	PatternRepeat float64 `json:"pattern_repeat"` // meters, 0 for plain wallpaper
}

// WallpaperResult is the output of the wallpaper calculator.
type WallpaperResult struct {
	NetWallLength  float64 `json:"net_wall_length"`
	StripLength    float64 `json:"strip_length"`
	StripsPerRoll  int     `json:"strips_per_roll"`
	StripsNeeded   int     `json:"strips_needed"`
	RollsForStrips int     `json:"rolls_for_strips"`
	SpareRolls     int     `json:"spare_rolls"`
	Rolls          int     `json:"rolls"`
}

// Wallpaper computes the number of rolls. Rolls are counted from whole strips
// and a fixed number of spare rolls is always added on top.
func (c *Calculator) Wallpaper(spec WallpaperJobSpec) (WallpaperResult, error) {
	if err := requirePositive("wall_height", spec.WallHeight); err != nil {
		return WallpaperResult{}, err
	}
	if err := requirePositive("roll_length", spec.RollLength); err != nil {
		return WallpaperResult{}, err
	}
	if err := requirePositive("roll_width", spec.RollWidth); err != nil {
		return WallpaperResult{}, err
	}

	length, err := wallpaperLength(spec)
	if err != nil {
		return WallpaperResult{}, err
	}

	stripLength := spec.WallHeight + nonNegative(spec.PatternRepeat)
	perRoll, ok := FloorUnits(spec.RollLength / stripLength)
	if !ok {
		return WallpaperResult{}, errNonFiniteResult
	}
	if perRoll == 0 {
		return WallpaperResult{}, fmt.Errorf("%w: a roll of %.2f m is shorter than one strip of %.2f m",
			ErrInvalidInput, spec.RollLength, stripLength)
	}

	strips, ok := CeilUnits(length / spec.RollWidth)
	if !ok {
		return WallpaperResult{}, errNonFiniteResult
	}
	forStrips, _ := CeilUnits(float64(strips) / float64(perRoll))
	spare := c.tables.WallpaperSpareRolls

	return WallpaperResult{
		NetWallLength:  length,
		StripLength:    stripLength,
		StripsPerRoll:  perRoll,
		StripsNeeded:   strips,
		RollsForStrips: forStrips,
		SpareRolls:     spare,
		Rolls:          forStrips + spare,
	}, nil
}

func wallpaperLength(spec WallpaperJobSpec) (float64, error) {
	if spec.WallLength != 0 {
		if err := requirePositive("wall_length", spec.WallLength); err != nil {
			return 0, err
		}
		return NetArea(spec.WallLength, nonNegative(spec.OpeningsWidth)), nil
	}
	if err := requirePositive("wall_area", spec.WallArea); err != nil {
		return 0, err
	}
	return NetArea(spec.WallArea, nonNegative(spec.OpeningsArea)) / spec.WallHeight, nil
}
