package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func newTestCalculator() *Calculator {
	return New(DefaultTables())
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"12.5", 12.5, true},
		{"12,5", 12.5, true},
		{" 2,7 м ", 2.7, true},
		{"1 250,50 ₽", 1250.5, true},
		{"1.250,5", 1250.5, true},
		{"1,250.5", 1250.5, true},
		{"-3", -3, true},
		{"\u22122,5", -2.5, true},
		{"1\u00a0250", 1250, true},
		{"12 руб.", 12, true},
		{"1e3", 0, false},
		{"5-3", 0, false},
		{"--5", 0, false},
		{"2 м 3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
		{",", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseNumber(tc.raw)
		if ok != tc.ok {
			t.Fatalf("ParseNumber(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
		}
		nearlyEqual(t, "ParseNumber("+tc.raw+")", got, tc.want)
	}
}

func TestParseNonNegativeClampsAndDefaults(t *testing.T) {
	assert.Equal(t, 0.0, ParseNonNegative("-15"))
	assert.Equal(t, 0.0, ParseNonNegative("abc"))
	assert.Equal(t, 0.0, ParseLocaleNumber("abc"))
	assert.Equal(t, 4.5, ParseNonNegative("4,5"))
}

func TestNetAreaNeverNegative(t *testing.T) {
	nearlyEqual(t, "net", NetArea(10, 4), 6)
	nearlyEqual(t, "net over", NetArea(10, 40), 0)
	nearlyEqual(t, "net negative openings", NetArea(10, -4), 10)
}

func mustUnits(t *testing.T) func(n int, ok bool) int {
	return func(n int, ok bool) int {
		t.Helper()
		require.True(t, ok)
		return n
	}
}

func TestCeilUnitsIgnoresFloatNoise(t *testing.T) {
	assert.Equal(t, 101, mustUnits(t)(CeilUnits(100.2)))
	assert.Equal(t, 10, mustUnits(t)(CeilUnits(5.3/0.53)))
	assert.Equal(t, 0, mustUnits(t)(CeilUnits(0)))
	assert.Equal(t, 0, mustUnits(t)(CeilUnits(-2)))
	assert.Equal(t, 4, mustUnits(t)(FloorUnits(10/2.5)))
}

func TestUnitsRefuseUncountableValues(t *testing.T) {
	for _, x := range []float64{1e19, 1e300, math.Inf(1), math.NaN()} {
		_, ok := CeilUnits(x)
		assert.False(t, ok, "CeilUnits(%v)", x)
		_, ok = FloorUnits(x)
		assert.False(t, ok, "FloorUnits(%v)", x)
	}
}

func TestPaint_RoomWithoutCeiling(t *testing.T) {
	res, err := newTestCalculator().Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: 5, Width: 4, Height: 2.7},
		CoveragePerLiter: 10,
		Coats:            2,
		WastePercent:     10,
	})
	require.NoError(t, err)

	nearlyEqual(t, "wallAreaPerCoat", res.WallAreaPerCoat, 48.6)
	nearlyEqual(t, "wallAreaTotal", res.WallAreaTotal, 106.92)
	nearlyEqual(t, "liters", res.Liters, 10.692)
	nearlyEqual(t, "litersRounded", res.LitersRounded, 10.7)
	nearlyEqual(t, "ceiling", res.CeilingAreaTotal, 0)

	assert.Equal(t, "greedy-largest-first", res.Cans.Strategy)
	assert.Equal(t, []CanCount{{9, 1}, {2.7, 0}, {0.9, 2}}, res.Cans.Cans)
	nearlyEqual(t, "purchased", res.Cans.PurchasedLiters, 10.8)
}

func TestPaint_CeilingOpeningsAndFactors(t *testing.T) {
	res, err := newTestCalculator().Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: 5, Width: 4, Height: 2.7},
		OpeningsArea:     8.6,
		CoveragePerLiter: 10,
		Coats:            1,
		PaintCeiling:     true,
		RoughWalls:       true,
		Primer:           true,
	})
	require.NoError(t, err)

	nearlyEqual(t, "wallAreaPerCoat", res.WallAreaPerCoat, 40)
	nearlyEqual(t, "ceilingAreaPerCoat", res.CeilingAreaPerCoat, 20)
	nearlyEqual(t, "effectiveCoverage", res.EffectiveCoverage, 10*0.85*1.1)
	nearlyEqual(t, "liters", res.Liters, 60/(10*0.85*1.1))
}

func TestPaint_ZeroHeightHasNoResult(t *testing.T) {
	_, err := newTestCalculator().Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: 5, Width: 4, Height: 0},
		CoveragePerLiter: 10,
		Coats:            2,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestPaint_NonFiniteDimensionHasNoResult(t *testing.T) {
	_, err := newTestCalculator().Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: math.Inf(1), Width: 4, Height: 2.7},
		CoveragePerLiter: 10,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPaint_ZeroCoverageIsClamped(t *testing.T) {
	res, err := newTestCalculator().Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: 2, Width: 2, Height: 2.5},
		CoveragePerLiter: 0,
		Coats:            0,
	})
	require.NoError(t, err)
	nearlyEqual(t, "effectiveCoverage", res.EffectiveCoverage, 0.1)
	nearlyEqual(t, "liters", res.Liters, 200)
	assert.False(t, math.IsInf(res.Liters, 0))
}

func TestPaint_MonotonicInWaste(t *testing.T) {
	c := newTestCalculator()
	spec := PaintJobSpec{Room: RoomDimensions{Length: 3, Width: 3, Height: 2.5}, CoveragePerLiter: 8, Coats: 2}

	prev := -1.0
	for _, waste := range []float64{0, 5, 10, 15, 30} {
		spec.WastePercent = waste
		res, err := c.Paint(spec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Liters, prev)
		prev = res.Liters
	}
}

func TestPaint_Idempotent(t *testing.T) {
	c := newTestCalculator()
	spec := PaintJobSpec{Room: RoomDimensions{Length: 4.2, Width: 3.1, Height: 2.6}, CoveragePerLiter: 9, Coats: 2, WastePercent: 7, PaintCeiling: true}

	first, err := c.Paint(spec)
	require.NoError(t, err)
	second, err := c.Paint(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGreedyCans_CoversRequirement(t *testing.T) {
	sizes := DefaultTables().CanSizes
	for liters := 0.0; liters <= 40; liters += 0.13 {
		s, err := GreedyLargestFirst{}.Suggest(liters, sizes)
		require.NoError(t, err)
		if s.PurchasedLiters+1e-6 < liters {
			t.Fatalf("purchased %.3f L < needed %.3f L", s.PurchasedLiters, liters)
		}
	}
}

func TestGreedyCans_KnownOvershoot(t *testing.T) {
	s, err := GreedyLargestFirst{}.Suggest(2.8, []float64{0.9, 9, 2.7})
	require.NoError(t, err)
	assert.Equal(t, []CanCount{{9, 0}, {2.7, 1}, {0.9, 1}}, s.Cans)
	nearlyEqual(t, "purchased", s.PurchasedLiters, 3.6)
}

type oneSizeStrategy struct{}

func (oneSizeStrategy) Name() string { return "one-size" }

func (oneSizeStrategy) Suggest(liters float64, _ []float64) (CanSuggestion, error) {
	n, ok := CeilUnits(liters)
	if !ok {
		return CanSuggestion{}, errNonFiniteResult
	}
	return CanSuggestion{Strategy: "one-size", Cans: []CanCount{{1, n}}, PurchasedLiters: float64(n)}, nil
}

func TestPaint_CustomCanStrategy(t *testing.T) {
	c := newTestCalculator().WithCanStrategy(oneSizeStrategy{})
	res, err := c.Paint(PaintJobSpec{Room: RoomDimensions{Length: 5, Width: 4, Height: 2.7}, CoveragePerLiter: 10, Coats: 2, WastePercent: 10})
	require.NoError(t, err)
	assert.Equal(t, "one-size", res.Cans.Strategy)
	assert.Equal(t, 11, res.Cans.Cans[0].Count)
}

func TestTile_FloorStraightLayout(t *testing.T) {
	res, err := newTestCalculator().Tile(TileJobSpec{
		Mode:          TileFloor,
		SurfaceArea:   6,
		TileLengthCm:  30,
		TileWidthCm:   30,
		GroutMm:       3,
		Layout:        LayoutStraight,
		PiecesPerPack: 8,
	})
	require.NoError(t, err)

	nearlyEqual(t, "tileArea", res.TileArea, 0.303*0.303)
	nearlyEqual(t, "wastePercent", res.WastePercent, 10)
	assert.Equal(t, 72, res.Tiles)
	assert.Equal(t, 9, res.Packs)
	nearlyEqual(t, "adhesive", res.AdhesiveKg, 27)
}

func TestTile_LayoutWasteTable(t *testing.T) {
	want := map[LayoutMethod]float64{
		LayoutStraight:    12,
		LayoutDiagonal:    17,
		LayoutHerringbone: 22,
		LayoutBrick:       14,
	}
	c := newTestCalculator()
	for layout, waste := range want {
		res, err := c.Tile(TileJobSpec{SurfaceArea: 10, TileLengthCm: 20, TileWidthCm: 20, Layout: layout, PiecesPerPack: 10, ExtraWastePercent: 2})
		require.NoError(t, err)
		nearlyEqual(t, string(layout), res.WastePercent, waste)
	}
}

func TestTile_FloorModeSubtractsBathtub(t *testing.T) {
	res, err := newTestCalculator().Tile(TileJobSpec{
		Mode:          TileFloor,
		Room:          RoomDimensions{Length: 3, Width: 2},
		DeductionArea: 1.2,
		TileLengthCm:  60,
		TileWidthCm:   30,
		Layout:        LayoutBrick,
		PiecesPerPack: 6,
	})
	require.NoError(t, err)
	nearlyEqual(t, "gross", res.GrossArea, 6)
	nearlyEqual(t, "net", res.NetArea, 4.8)
	// 4.8 * 1.12 / 0.18 = 29.87
	assert.Equal(t, 30, res.Tiles)
	assert.Equal(t, 5, res.Packs)
}

func TestTile_WallModeSubtractsOpenings(t *testing.T) {
	res, err := newTestCalculator().Tile(TileJobSpec{
		Mode:          TileWall,
		Room:          RoomDimensions{Length: 2, Width: 1.5, Height: 2.5},
		DeductionArea: 1.5,
		TileLengthCm:  25,
		TileWidthCm:   40,
		Layout:        LayoutStraight,
		PiecesPerPack: 12,
	})
	require.NoError(t, err)
	nearlyEqual(t, "gross", res.GrossArea, 17.5)
	nearlyEqual(t, "net", res.NetArea, 16)
	assert.Equal(t, 176, res.Tiles)
	assert.Equal(t, 15, res.Packs)
}

func TestTile_RejectsInvalidInput(t *testing.T) {
	c := newTestCalculator()
	base := TileJobSpec{SurfaceArea: 6, TileLengthCm: 30, TileWidthCm: 30, Layout: LayoutStraight, PiecesPerPack: 8}

	noPack := base
	noPack.PiecesPerPack = 0
	_, err := c.Tile(noPack)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noTile := base
	noTile.TileWidthCm = 0
	_, err = c.Tile(noTile)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badLayout := base
	badLayout.Layout = "spiral"
	_, err = c.Tile(badLayout)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noArea := base
	noArea.SurfaceArea = 0
	_, err = c.Tile(noArea)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTile_MonotonicInExtraWaste(t *testing.T) {
	c := newTestCalculator()
	prev := 0
	for _, extra := range []float64{0, 1, 3, 5, 10, 25} {
		res, err := c.Tile(TileJobSpec{SurfaceArea: 12.3, TileLengthCm: 45, TileWidthCm: 45, GroutMm: 2, Layout: LayoutDiagonal, PiecesPerPack: 5, ExtraWastePercent: extra})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Tiles, prev)
		prev = res.Tiles
	}
}

func TestWallpaper_StripBased(t *testing.T) {
	res, err := newTestCalculator().Wallpaper(WallpaperJobSpec{
		WallHeight: 2.5,
		WallLength: 12,
		RollLength: 10,
		RollWidth:  0.53,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, res.StripsPerRoll)
	assert.Equal(t, 23, res.StripsNeeded)
	assert.Equal(t, 6, res.RollsForStrips)
	assert.Equal(t, 1, res.SpareRolls)
	assert.Equal(t, 7, res.Rolls)
}

func TestWallpaper_PatternRepeatShortensRolls(t *testing.T) {
	res, err := newTestCalculator().Wallpaper(WallpaperJobSpec{
		WallHeight:    2.5,
		WallLength:    12,
		RollLength:    10,
		RollWidth:     0.53,
		PatternRepeat: 0.64,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.StripsPerRoll)
	assert.Equal(t, 9, res.Rolls)
}

func TestWallpaper_AreaFallback(t *testing.T) {
	res, err := newTestCalculator().Wallpaper(WallpaperJobSpec{
		WallHeight:   2.5,
		WallArea:     32,
		OpeningsArea: 2,
		RollLength:   10,
		RollWidth:    0.53,
	})
	require.NoError(t, err)
	nearlyEqual(t, "netWallLength", res.NetWallLength, 12)
	assert.Equal(t, 7, res.Rolls)
}

func TestWallpaper_WallTallerThanRoll(t *testing.T) {
	_, err := newTestCalculator().Wallpaper(WallpaperJobSpec{WallHeight: 3, WallLength: 10, RollLength: 2.5, RollWidth: 1.06})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLighting_Office(t *testing.T) {
	res, err := newTestCalculator().Lighting(LightingJobSpec{
		Length:         5,
		Width:          4,
		RoomType:       RoomOffice,
		LumenPerLamp:   1000,
		ReservePercent: 10,
	})
	require.NoError(t, err)

	nearlyEqual(t, "lumens", res.Lumens, 6000)
	nearlyEqual(t, "withReserve", res.LumensWithReserve, 6600)
	assert.Equal(t, 7, res.Lamps)
}

func TestLighting_LuxTable(t *testing.T) {
	want := map[RoomType]float64{
		RoomLiving: 150, RoomKitchen: 250, RoomBathroom: 200, RoomBedroom: 150,
		RoomOffice: 300, RoomHallway: 100, RoomKids: 200,
	}
	assert.Equal(t, want, DefaultTables().LuxNorms)
}

func TestLighting_RejectsInvalidInput(t *testing.T) {
	c := newTestCalculator()
	_, err := c.Lighting(LightingJobSpec{Length: 5, Width: 4, RoomType: RoomOffice, LumenPerLamp: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.Lighting(LightingJobSpec{Length: 0, Width: 4, RoomType: RoomOffice, LumenPerLamp: 800})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = c.Lighting(LightingJobSpec{Length: 5, Width: 4, RoomType: "garage", LumenPerLamp: 800})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnderfloor_CableWithTariff(t *testing.T) {
	tariff := 6.5
	res, err := newTestCalculator().Underfloor(UnderfloorJobSpec{
		RoomArea:        10,
		CoveragePercent: 70,
		FloorCovering:   CoveringTile,
		System:          SystemCable,
		Mode:            ModeComfort,
		HeatLoss:        HeatLossHigh,
		BelowFloor:      BelowUnheated,
		CablePowerWPerM: 18,
		HoursPerDay:     8,
		DaysPerMonth:    30,
		LoadPercent:     50,
		TariffPerKwh:    &tariff,
	})
	require.NoError(t, err)

	power := 7 * 150 * 1.15 * 1.1
	nearlyEqual(t, "heatedArea", res.HeatedArea, 7)
	nearlyEqual(t, "totalPowerW", res.TotalPowerW, power)
	nearlyEqual(t, "cableLength", res.CableLengthM, power/18)
	nearlyEqual(t, "matArea", res.MatAreaM2, 0)
	nearlyEqual(t, "monthlyKwh", res.MonthlyKwh, power/1000*8*30*0.5)
	require.NotNil(t, res.EstimatedCost)
	nearlyEqual(t, "cost", *res.EstimatedCost, res.MonthlyKwh*6.5)
}

func TestUnderfloor_MatWithoutTariff(t *testing.T) {
	res, err := newTestCalculator().Underfloor(UnderfloorJobSpec{
		RoomArea:        5,
		CoveragePercent: 100,
		FloorCovering:   CoveringWood,
		System:          SystemMat,
		Mode:            ModePrimary,
		HeatLoss:        HeatLossNormal,
		BelowFloor:      BelowHeated,
		MatPowerWPerM2:  150,
		HoursPerDay:     6,
		DaysPerMonth:    30,
		LoadPercent:     40,
	})
	require.NoError(t, err)

	nearlyEqual(t, "totalPowerW", res.TotalPowerW, 5*130*0.95)
	nearlyEqual(t, "matArea", res.MatAreaM2, 5*130*0.95/150)
	assert.Nil(t, res.EstimatedCost)
}

func TestUnderfloor_TileNeedsMorePowerThanWood(t *testing.T) {
	tables := DefaultTables()
	for _, mode := range []HeatingMode{ModeComfort, ModePrimary} {
		assert.Greater(t, tables.FloorPower[CoveringTile].For(mode), tables.FloorPower[CoveringWood].For(mode))
	}
}

func TestUnderfloor_CoverageIsClamped(t *testing.T) {
	res, err := newTestCalculator().Underfloor(UnderfloorJobSpec{
		RoomArea: 10, CoveragePercent: 10, FloorCovering: CoveringLaminate, System: SystemCable,
		HeatLoss: HeatLossGood, BelowFloor: BelowGround, CablePowerWPerM: 20,
	})
	require.NoError(t, err)
	nearlyEqual(t, "coverage", res.CoveragePercent, 30)
	nearlyEqual(t, "heatedArea", res.HeatedArea, 3)
	nearlyEqual(t, "monthlyKwh", res.MonthlyKwh, 0)
}

func TestUnderfloor_RejectsInvalidInput(t *testing.T) {
	c := newTestCalculator()
	base := UnderfloorJobSpec{
		RoomArea: 10, CoveragePercent: 80, FloorCovering: CoveringTile, System: SystemCable,
		HeatLoss: HeatLossNormal, BelowFloor: BelowHeated, CablePowerWPerM: 18,
	}

	noPower := base
	noPower.CablePowerWPerM = 0
	_, err := c.Underfloor(noPower)
	assert.ErrorIs(t, err, ErrInvalidInput)

	noArea := base
	noArea.RoomArea = 0
	_, err = c.Underfloor(noArea)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badSystem := base
	badSystem.System = "water"
	_, err = c.Underfloor(badSystem)
	assert.ErrorIs(t, err, ErrInvalidInput)

	badCovering := base
	badCovering.FloorCovering = "marble"
	_, err = c.Underfloor(badCovering)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBudget_InvalidCostCountsAsZero(t *testing.T) {
	res, err := newTestCalculator().Budget(BudgetSpec{
		Items: []BudgetLineItem{
			{Category: "Materials", Cost: "1000"},
			{Category: "Labor", Cost: "2 500"},
			{Category: "Other", Cost: "abc"},
		},
		ReservePercent: 20,
	})
	require.NoError(t, err)

	nearlyEqual(t, "subtotal", res.Subtotal, 3500)
	nearlyEqual(t, "reserve", res.ReserveAmount, 700)
	nearlyEqual(t, "total", res.Total, 4200)
	require.Len(t, res.Lines, 3)
	nearlyEqual(t, "invalid line", res.Lines[2].Cost, 0)
}

func TestBudget_NegativeCostAndReserve(t *testing.T) {
	res, err := newTestCalculator().Budget(BudgetSpec{
		Items:          []BudgetLineItem{{Category: "Refund", Cost: "-300"}, {Category: "Tiles", Cost: "0,10"}, {Category: "Glue", Cost: "0,20"}},
		ReservePercent: -5,
	})
	require.NoError(t, err)
	nearlyEqual(t, "subtotal", res.Subtotal, 0.3)
	nearlyEqual(t, "reserve", res.ReserveAmount, 0)
	nearlyEqual(t, "total", res.Total, 0.3)
}

func TestBudget_NonFiniteReserveHasNoResult(t *testing.T) {
	_, err := newTestCalculator().Budget(BudgetSpec{ReservePercent: math.NaN()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBudget_Empty(t *testing.T) {
	res, err := newTestCalculator().Budget(BudgetSpec{ReservePercent: 10})
	require.NoError(t, err)
	assert.Empty(t, res.Lines)
	nearlyEqual(t, "total", res.Total, 0)
}

func TestHugeRequirementsHaveNoResult(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Paint(PaintJobSpec{
		Room:             RoomDimensions{Length: 1e150, Width: 1e150, Height: 1e10},
		CoveragePerLiter: 10,
		Coats:            1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "paint")

	_, err = c.Tile(TileJobSpec{
		Mode:          TileFloor,
		SurfaceArea:   1e18,
		TileLengthCm:  1,
		TileWidthCm:   1,
		Layout:        LayoutStraight,
		PiecesPerPack: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "tile")

	_, err = c.Wallpaper(WallpaperJobSpec{
		WallHeight: 2.5,
		WallLength: 1e300,
		RollLength: 10,
		RollWidth:  0.53,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "wallpaper")

	_, err = c.Wallpaper(WallpaperJobSpec{
		WallHeight: 1e-300,
		WallLength: 12,
		RollLength: 1e300,
		RollWidth:  0.53,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "wallpaper strips per roll")

	_, err = c.Lighting(LightingJobSpec{
		Length:       1e10,
		Width:        1e10,
		RoomType:     RoomOffice,
		LumenPerLamp: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "lighting")
}

func TestGreedyCans_RefusesUncountableVolume(t *testing.T) {
	_, err := GreedyLargestFirst{}.Suggest(1e300, DefaultTables().CanSizes)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnderfloor_HugeTariffHasNoResult(t *testing.T) {
	tariff := 1e308
	_, err := newTestCalculator().Underfloor(UnderfloorJobSpec{
		RoomArea:        10,
		CoveragePercent: 70,
		FloorCovering:   CoveringTile,
		System:          SystemMat,
		Mode:            ModeComfort,
		HeatLoss:        HeatLossHigh,
		BelowFloor:      BelowUnheated,
		MatPowerWPerM2:  150,
		HoursPerDay:     8,
		DaysPerMonth:    30,
		LoadPercent:     50,
		TariffPerKwh:    &tariff,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
