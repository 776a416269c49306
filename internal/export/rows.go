// Package export renders saved calculations as share text, spreadsheets and
// QR codes.
package export

import (
	"strconv"

	"github.com/Simplici0/remont/internal/calc"
)

// Row is one labelled quantity of a calculation result. Label and Unit are
// message IDs.
type Row struct {
	Label     string
	LabelData map[string]any
	Value     float64
	Decimals  int
	Unit      string
}

// Rows lists the quantities worth showing for a calculator result. Unknown
// types yield no rows.
func Rows(result any) []Row {
	switch r := result.(type) {
	case calc.PaintResult:
		return paintRows(r)
	case calc.TileResult:
		return []Row{
			{Label: "row_gross_area", Value: r.GrossArea, Decimals: 2, Unit: "unit_m2"},
			{Label: "row_net_area", Value: r.NetArea, Decimals: 2, Unit: "unit_m2"},
			{Label: "row_waste_percent", Value: r.WastePercent, Decimals: 0, Unit: "unit_percent"},
			{Label: "row_tiles", Value: float64(r.Tiles), Unit: "unit_pcs"},
			{Label: "row_packs", Value: float64(r.Packs), Unit: "unit_pcs"},
			{Label: "row_adhesive", Value: r.AdhesiveKg, Decimals: 1, Unit: "unit_kg"},
		}
	case calc.WallpaperResult:
		return []Row{
			{Label: "row_net_wall_length", Value: r.NetWallLength, Decimals: 2, Unit: "unit_m"},
			{Label: "row_strips_per_roll", Value: float64(r.StripsPerRoll), Unit: "unit_pcs"},
			{Label: "row_strips_needed", Value: float64(r.StripsNeeded), Unit: "unit_pcs"},
			{Label: "row_rolls", Value: float64(r.Rolls), Unit: "unit_pcs"},
		}
	case calc.LightingResult:
		return []Row{
			{Label: "row_area", Value: r.Area, Decimals: 2, Unit: "unit_m2"},
			{Label: "row_lux_norm", Value: r.LuxNorm, Unit: "unit_lx"},
			{Label: "row_lumens", Value: r.LumensWithReserve, Unit: "unit_lm"},
			{Label: "row_lamps", Value: float64(r.Lamps), Unit: "unit_pcs"},
		}
	case calc.UnderfloorResult:
		return underfloorRows(r)
	case calc.BudgetResult:
		return budgetRows(r)
	default:
		return nil
	}
}

func paintRows(r calc.PaintResult) []Row {
	rows := []Row{
		{Label: "row_wall_area_per_coat", Value: r.WallAreaPerCoat, Decimals: 2, Unit: "unit_m2"},
	}
	if r.CeilingAreaPerCoat > 0 {
		rows = append(rows, Row{Label: "row_ceiling_area_per_coat", Value: r.CeilingAreaPerCoat, Decimals: 2, Unit: "unit_m2"})
	}
	rows = append(rows,
		Row{Label: "row_area_total", Value: r.WallAreaTotal + r.CeilingAreaTotal, Decimals: 2, Unit: "unit_m2"},
		Row{Label: "row_liters", Value: r.LitersRounded, Decimals: 1, Unit: "unit_l"},
	)
	for _, can := range r.Cans.Cans {
		if can.Count == 0 {
			continue
		}
		rows = append(rows, Row{
			Label:     "row_can",
			LabelData: map[string]any{"Size": strconv.FormatFloat(can.SizeLiters, 'f', -1, 64)},
			Value:     float64(can.Count),
			Unit:      "unit_pcs",
		})
	}
	return append(rows, Row{Label: "row_purchased_liters", Value: r.Cans.PurchasedLiters, Decimals: 1, Unit: "unit_l"})
}

func underfloorRows(r calc.UnderfloorResult) []Row {
	rows := []Row{
		{Label: "row_heated_area", Value: r.HeatedArea, Decimals: 2, Unit: "unit_m2"},
		{Label: "row_total_power", Value: r.TotalPowerW, Decimals: 0, Unit: "unit_w"},
	}
	if r.CableLengthM > 0 {
		rows = append(rows, Row{Label: "row_cable_length", Value: r.CableLengthM, Decimals: 1, Unit: "unit_m"})
	}
	if r.MatAreaM2 > 0 {
		rows = append(rows, Row{Label: "row_mat_area", Value: r.MatAreaM2, Decimals: 2, Unit: "unit_m2"})
	}
	rows = append(rows, Row{Label: "row_monthly_kwh", Value: r.MonthlyKwh, Decimals: 1, Unit: "unit_kwh"})
	if r.EstimatedCost != nil {
		rows = append(rows, Row{Label: "row_estimated_cost", Value: *r.EstimatedCost, Decimals: 2, Unit: "unit_money"})
	}
	return rows
}

func budgetRows(r calc.BudgetResult) []Row {
	rows := make([]Row, 0, len(r.Lines)+3)
	for _, line := range r.Lines {
		rows = append(rows, Row{
			Label:     "row_budget_line",
			LabelData: map[string]any{"Category": line.Category},
			Value:     line.Cost,
			Decimals:  2,
			Unit:      "unit_money",
		})
	}
	return append(rows,
		Row{Label: "row_subtotal", Value: r.Subtotal, Decimals: 2, Unit: "unit_money"},
		Row{Label: "row_reserve", LabelData: map[string]any{"Percent": r.ReservePercent}, Value: r.ReserveAmount, Decimals: 2, Unit: "unit_money"},
		Row{Label: "row_total", Value: r.Total, Decimals: 2, Unit: "unit_money"},
	)
}
