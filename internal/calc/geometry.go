package calc

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every calculator refusal. A calculator that
// returns an error has produced no result.
var ErrInvalidInput = errors.New("invalid calculator input")

// unitTolerance absorbs float noise before rounding to whole purchasable units.
const unitTolerance = 1e-9

// RoomDimensions describes a rectangular room in meters.
type RoomDimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Validate rejects zero, negative and non-finite dimensions.
func (d RoomDimensions) Validate() error {
	if err := requirePositive("length", d.Length); err != nil {
		return err
	}
	if err := requirePositive("width", d.Width); err != nil {
		return err
	}
	return requirePositive("height", d.Height)
}

// WallArea is the gross area of the four walls.
func (d RoomDimensions) WallArea() float64 {
	return WallArea(d.Length, d.Width, d.Height)
}

// FloorArea is the floor (or ceiling) area.
func (d RoomDimensions) FloorArea() float64 {
	return FloorArea(d.Length, d.Width)
}

// WallArea returns 2×(length+width)×height.
func WallArea(length, width, height float64) float64 {
	return 2 * (length + width) * height
}

// FloorArea returns length×width.
func FloorArea(length, width float64) float64 {
	return length * width
}

// NetArea subtracts openings from a gross area and never goes below zero.
func NetArea(gross, openings float64) float64 {
	return math.Max(gross-math.Max(openings, 0), 0)
}

// maxUnits bounds whole-unit counts to what both int and float64 hold exactly.
var maxUnits = math.Min(1<<53, float64(math.MaxInt))

// CeilUnits rounds a raw requirement up to whole units. It reports false when
// x is NaN or too large to count.
func CeilUnits(x float64) (int, bool) {
	if math.IsNaN(x) || x >= maxUnits {
		return 0, false
	}
	if x <= 0 {
		return 0, true
	}
	return int(math.Ceil(x - unitTolerance)), true
}

// FloorUnits rounds down to whole units, with the same range rule as CeilUnits.
func FloorUnits(x float64) (int, bool) {
	if math.IsNaN(x) || x >= maxUnits {
		return 0, false
	}
	if x <= 0 {
		return 0, true
	}
	return int(math.Floor(x + unitTolerance)), true
}

// Round1 rounds to one decimal place for display.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func requirePositive(field string, value float64) error {
	if !isFinite(value) || value <= 0 {
		return fmt.Errorf("%w: %s must be a finite number greater than 0", ErrInvalidInput, field)
	}
	return nil
}

func requireFinite(field string, value float64) error {
	if !isFinite(value) {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, field)
	}
	return nil
}

// nonNegative clamps negative and non-finite optional values to zero.
func nonNegative(x float64) float64 {
	if !isFinite(x) || x < 0 {
		return 0
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// allFinite reports whether every value is a finite number.
func allFinite(values ...float64) bool {
	for _, v := range values {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

var errNonFiniteResult = fmt.Errorf("%w: result is not a finite number or is too large to count", ErrInvalidInput)
