package main

import (
	"math"
	"net/http"
	"strings"

	"github.com/Simplici0/remont/internal/calc"
)

// Form fields are read leniently: a missing or unparsable number becomes 0
// and the calculator decides whether that is acceptable.

func formNumber(r *http.Request, field string) float64 {
	return calc.ParseLocaleNumber(r.FormValue(field))
}

func formInt(r *http.Request, field string) int {
	v := formNumber(r, field)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0
	}
	return int(math.Round(v))
}

func formBool(r *http.Request, field string) bool {
	switch strings.ToLower(strings.TrimSpace(r.FormValue(field))) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func formString(r *http.Request, field string) string {
	return strings.TrimSpace(r.FormValue(field))
}

func formRoom(r *http.Request) calc.RoomDimensions {
	return calc.RoomDimensions{
		Length: formNumber(r, "length"),
		Width:  formNumber(r, "width"),
		Height: formNumber(r, "height"),
	}
}

func parsePaintForm(r *http.Request) calc.PaintJobSpec {
	return calc.PaintJobSpec{
		Room:             formRoom(r),
		OpeningsArea:     formNumber(r, "openings_area"),
		CoveragePerLiter: formNumber(r, "coverage_per_liter"),
		Coats:            formInt(r, "coats"),
		WastePercent:     formNumber(r, "waste_percent"),
		PaintCeiling:     formBool(r, "paint_ceiling"),
		RoughWalls:       formBool(r, "rough_walls"),
		Primer:           formBool(r, "primer"),
	}
}

func parseTileForm(r *http.Request) calc.TileJobSpec {
	return calc.TileJobSpec{
		Mode:              calc.TileMode(formString(r, "mode")),
		Room:              formRoom(r),
		SurfaceArea:       formNumber(r, "surface_area"),
		DeductionArea:     formNumber(r, "deduction_area"),
		TileLengthCm:      formNumber(r, "tile_length_cm"),
		TileWidthCm:       formNumber(r, "tile_width_cm"),
		GroutMm:           formNumber(r, "grout_mm"),
		Layout:            calc.LayoutMethod(formString(r, "layout")),
		PiecesPerPack:     formInt(r, "pieces_per_pack"),
		ExtraWastePercent: formNumber(r, "extra_waste_percent"),
	}
}

func parseWallpaperForm(r *http.Request) calc.WallpaperJobSpec {
	return calc.WallpaperJobSpec{
		WallHeight:    formNumber(r, "wall_height"),
		WallLength:    formNumber(r, "wall_length"),
		OpeningsWidth: formNumber(r, "openings_width"),
		WallArea:      formNumber(r, "wall_area"),
		OpeningsArea:  formNumber(r, "openings_area"),
		RollLength:    formNumber(r, "roll_length"),
		RollWidth:     formNumber(r, "roll_width"),
		PatternRepeat: formNumber(r, "pattern_repeat"),
	}
}

func parseLightingForm(r *http.Request) calc.LightingJobSpec {
	return calc.LightingJobSpec{
		Length:         formNumber(r, "length"),
		Width:          formNumber(r, "width"),
		RoomType:       calc.RoomType(formString(r, "room_type")),
		LumenPerLamp:   formNumber(r, "lumen_per_lamp"),
		ReservePercent: formNumber(r, "reserve_percent"),
	}
}

// parseUnderfloorForm falls back to defaultTariff when the form carries no
// parsable tariff.
func parseUnderfloorForm(r *http.Request, defaultTariff *float64) calc.UnderfloorJobSpec {
	spec := calc.UnderfloorJobSpec{
		RoomArea:        formNumber(r, "room_area"),
		CoveragePercent: formNumber(r, "coverage_percent"),
		FloorCovering:   calc.FloorCovering(formString(r, "floor_covering")),
		System:          calc.HeatingSystem(formString(r, "system")),
		Mode:            calc.HeatingMode(formString(r, "mode")),
		HeatLoss:        calc.HeatLoss(formString(r, "heat_loss")),
		BelowFloor:      calc.BelowFloor(formString(r, "below_floor")),
		CablePowerWPerM: formNumber(r, "cable_power_w_per_m"),
		MatPowerWPerM2:  formNumber(r, "mat_power_w_per_m2"),
		HoursPerDay:     formNumber(r, "hours_per_day"),
		DaysPerMonth:    formNumber(r, "days_per_month"),
		LoadPercent:     formNumber(r, "load_percent"),
		TariffPerKwh:    defaultTariff,
	}
	if tariff, ok := calc.ParseNumber(r.FormValue("tariff_per_kwh")); ok {
		spec.TariffPerKwh = &tariff
	}
	return spec
}

// parseBudgetForm pairs repeated category and cost fields by position. Rows
// with neither a category nor a cost are skipped.
func parseBudgetForm(r *http.Request) calc.BudgetSpec {
	categories := r.Form["category"]
	costs := r.Form["cost"]

	n := max(len(categories), len(costs))
	items := make([]calc.BudgetLineItem, 0, n)
	for i := 0; i < n; i++ {
		var item calc.BudgetLineItem
		if i < len(categories) {
			item.Category = strings.TrimSpace(categories[i])
		}
		if i < len(costs) {
			item.Cost = strings.TrimSpace(costs[i])
		}
		if item.Category == "" && item.Cost == "" {
			continue
		}
		items = append(items, item)
	}

	return calc.BudgetSpec{
		Items:          items,
		ReservePercent: formNumber(r, "reserve_percent"),
	}
}
