package calc

import "fmt"

// HeatingSystem is the kind of heating element.
type HeatingSystem string

const (
	SystemCable HeatingSystem = "cable"
	SystemMat   HeatingSystem = "mat"
)

// UnderfloorJobSpec is the input of the underfloor heating calculator.
type UnderfloorJobSpec struct {
	RoomArea        float64       `json:"room_area"`
	CoveragePercent float64       `json:"coverage_percent"`
	FloorCovering   FloorCovering `json:"floor_covering"`
	System          HeatingSystem `json:"system"`
	Mode            HeatingMode   `json:"mode"`
	HeatLoss        HeatLoss      `json:"heat_loss"`
	BelowFloor      BelowFloor    `json:"below_floor"`
	CablePowerWPerM float64       `json:"cable_power_w_per_m"`
	MatPowerWPerM2  float64       `json:"mat_power_w_per_m2"`
	HoursPerDay     float64       `json:"hours_per_day"`
	DaysPerMonth    float64       `json:"days_per_month"`
	LoadPercent     float64       `json:"load_percent"`
	TariffPerKwh    *float64      `json:"tariff_per_kwh,omitempty"`
}

// UnderfloorResult is the output of the underfloor heating calculator. Exactly
// one of CableLengthM and MatAreaM2 is set, matching the system. EstimatedCost
// is nil when no tariff was supplied.
type UnderfloorResult struct {
	HeatedArea       float64  `json:"heated_area"`
	CoveragePercent  float64  `json:"coverage_percent"`
	PowerPerM2       float64  `json:"power_per_m2"`
	HeatLossFactor   float64  `json:"heat_loss_factor"`
	BelowFloorFactor float64  `json:"below_floor_factor"`
	TotalPowerW      float64  `json:"total_power_w"`
	CableLengthM     float64  `json:"cable_length_m,omitempty"`
	MatAreaM2        float64  `json:"mat_area_m2,omitempty"`
	MonthlyKwh       float64  `json:"monthly_kwh"`
	EstimatedCost    *float64 `json:"estimated_cost,omitempty"`
}

// Underfloor computes heating power, element size and monthly consumption.
func (c *Calculator) Underfloor(spec UnderfloorJobSpec) (UnderfloorResult, error) {
	if err := requirePositive("room_area", spec.RoomArea); err != nil {
		return UnderfloorResult{}, err
	}

	power, ok := c.tables.FloorPower[spec.FloorCovering]
	if !ok {
		return UnderfloorResult{}, fmt.Errorf("%w: unknown floor covering %q", ErrInvalidInput, spec.FloorCovering)
	}
	heatLoss, ok := c.tables.HeatLossFactors[spec.HeatLoss]
	if !ok {
		return UnderfloorResult{}, fmt.Errorf("%w: unknown heat loss %q", ErrInvalidInput, spec.HeatLoss)
	}
	below, ok := c.tables.BelowFloorFactors[spec.BelowFloor]
	if !ok {
		return UnderfloorResult{}, fmt.Errorf("%w: unknown below-floor condition %q", ErrInvalidInput, spec.BelowFloor)
	}

	coverage := clamp(nonNegative(spec.CoveragePercent), c.tables.MinCoveragePercent, c.tables.MaxCoveragePercent)
	heatedArea := spec.RoomArea * coverage / 100
	perM2 := power.For(spec.Mode)
	totalW := heatedArea * perM2 * heatLoss * below

	res := UnderfloorResult{
		HeatedArea:       heatedArea,
		CoveragePercent:  coverage,
		PowerPerM2:       perM2,
		HeatLossFactor:   heatLoss,
		BelowFloorFactor: below,
		TotalPowerW:      totalW,
	}

	switch spec.System {
	case SystemCable:
		if err := requirePositive("cable_power_w_per_m", spec.CablePowerWPerM); err != nil {
			return UnderfloorResult{}, err
		}
		res.CableLengthM = totalW / spec.CablePowerWPerM
	case SystemMat:
		if err := requirePositive("mat_power_w_per_m2", spec.MatPowerWPerM2); err != nil {
			return UnderfloorResult{}, err
		}
		res.MatAreaM2 = totalW / spec.MatPowerWPerM2
	default:
		return UnderfloorResult{}, fmt.Errorf("%w: unknown heating system %q", ErrInvalidInput, spec.System)
	}

	hours := clamp(nonNegative(spec.HoursPerDay), 0, 24)
	days := clamp(nonNegative(spec.DaysPerMonth), 0, 31)
	load := clamp(nonNegative(spec.LoadPercent), 0, 100)
	res.MonthlyKwh = totalW / 1000 * hours * days * load / 100

	if !allFinite(res.TotalPowerW, res.CableLengthM, res.MatAreaM2, res.MonthlyKwh) {
		return UnderfloorResult{}, errNonFiniteResult
	}

	if spec.TariffPerKwh != nil {
		cost := res.MonthlyKwh * nonNegative(*spec.TariffPerKwh)
		if !isFinite(cost) {
			return UnderfloorResult{}, errNonFiniteResult
		}
		res.EstimatedCost = &cost
	}
	return res, nil
}
