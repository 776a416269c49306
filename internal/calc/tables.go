// Package calc implements the renovation calculators: paint, tile, wallpaper,
// lighting, underfloor heating and budget. Every calculator is a pure function
// of its input and the Tables it was built with.
package calc

// LayoutMethod is a tile installation pattern.
type LayoutMethod string

const (
	LayoutStraight    LayoutMethod = "straight"
	LayoutDiagonal    LayoutMethod = "diagonal"
	LayoutHerringbone LayoutMethod = "herringbone"
	LayoutBrick       LayoutMethod = "brick"
)

// RoomType selects an illuminance norm.
type RoomType string

const (
	RoomLiving   RoomType = "living"
	RoomKitchen  RoomType = "kitchen"
	RoomBathroom RoomType = "bathroom"
	RoomBedroom  RoomType = "bedroom"
	RoomOffice   RoomType = "office"
	RoomHallway  RoomType = "hallway"
	RoomKids     RoomType = "kids"
)

// FloorCovering is the finish laid over a heating system.
type FloorCovering string

const (
	CoveringTile      FloorCovering = "tile"
	CoveringPorcelain FloorCovering = "porcelain"
	CoveringLaminate  FloorCovering = "laminate"
	CoveringLinoleum  FloorCovering = "linoleum"
	CoveringCarpet    FloorCovering = "carpet"
	CoveringWood      FloorCovering = "wood"
)

// HeatLoss grades how well the room keeps heat.
type HeatLoss string

const (
	HeatLossGood   HeatLoss = "good"
	HeatLossNormal HeatLoss = "normal"
	HeatLossHigh   HeatLoss = "high"
)

// BelowFloor describes what lies under the heated floor.
type BelowFloor string

const (
	BelowHeated   BelowFloor = "heated"
	BelowUnheated BelowFloor = "unheated"
	BelowGround   BelowFloor = "ground"
)

// HeatingMode is comfort (floor warming) or primary (the room's main heat source).
type HeatingMode string

const (
	ModeComfort HeatingMode = "comfort"
	ModePrimary HeatingMode = "primary"
)

// FloorPower is the recommended heating power per square meter of heated area.
type FloorPower struct {
	Comfort float64 `json:"comfort"`
	Primary float64 `json:"primary"`
}

// For returns the power for the given mode; unknown modes get comfort power.
func (p FloorPower) For(mode HeatingMode) float64 {
	if mode == ModePrimary {
		return p.Primary
	}
	return p.Comfort
}

// Tables holds the normative constants used by the calculators.
type Tables struct {
	// Paint
	CanSizes        []float64 `json:"can_sizes"` // liters, largest first
	MinCoverage     float64   `json:"min_coverage"`
	RoughWallFactor float64   `json:"rough_wall_factor"`
	PrimerFactor    float64   `json:"primer_factor"`

	// Tile
	LayoutWaste     map[LayoutMethod]float64 `json:"layout_waste"` // percent
	AdhesiveKgPerM2 float64                  `json:"adhesive_kg_per_m2"`

	// Wallpaper
	WallpaperSpareRolls int `json:"wallpaper_spare_rolls"`

	// Lighting
	LuxNorms map[RoomType]float64 `json:"lux_norms"`

	// Underfloor heating
	FloorPower         map[FloorCovering]FloorPower `json:"floor_power"` // W/m²
	HeatLossFactors    map[HeatLoss]float64         `json:"heat_loss_factors"`
	BelowFloorFactors  map[BelowFloor]float64       `json:"below_floor_factors"`
	MinCoveragePercent float64                      `json:"min_coverage_percent"`
	MaxCoveragePercent float64                      `json:"max_coverage_percent"`
}

// DefaultTables returns the reference values.
func DefaultTables() Tables {
	return Tables{
		CanSizes:        []float64{9, 2.7, 0.9},
		MinCoverage:     0.1,
		RoughWallFactor: 0.85,
		PrimerFactor:    1.1,

		LayoutWaste: map[LayoutMethod]float64{
			LayoutStraight:    10,
			LayoutDiagonal:    15,
			LayoutHerringbone: 20,
			LayoutBrick:       12,
		},
		AdhesiveKgPerM2: 4.5,

		WallpaperSpareRolls: 1,

		LuxNorms: map[RoomType]float64{
			RoomLiving:   150,
			RoomKitchen:  250,
			RoomBathroom: 200,
			RoomBedroom:  150,
			RoomOffice:   300,
			RoomHallway:  100,
			RoomKids:     200,
		},

		FloorPower: map[FloorCovering]FloorPower{
			CoveringTile:      {Comfort: 150, Primary: 180},
			CoveringPorcelain: {Comfort: 150, Primary: 180},
			CoveringLaminate:  {Comfort: 130, Primary: 160},
			CoveringLinoleum:  {Comfort: 120, Primary: 150},
			CoveringCarpet:    {Comfort: 110, Primary: 140},
			CoveringWood:      {Comfort: 100, Primary: 130},
		},
		HeatLossFactors: map[HeatLoss]float64{
			HeatLossGood:   0.9,
			HeatLossNormal: 1.0,
			HeatLossHigh:   1.15,
		},
		BelowFloorFactors: map[BelowFloor]float64{
			BelowHeated:   0.95,
			BelowUnheated: 1.1,
			BelowGround:   1.2,
		},
		MinCoveragePercent: 30,
		MaxCoveragePercent: 100,
	}
}

// Calculator runs the calculators against a fixed set of tables. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	tables Tables
	cans   CanStrategy
}

// New returns a Calculator using the greedy largest-first can strategy.
func New(tables Tables) *Calculator {
	return &Calculator{tables: tables, cans: GreedyLargestFirst{}}
}

// WithCanStrategy returns a copy of c that suggests cans with s.
func (c *Calculator) WithCanStrategy(s CanStrategy) *Calculator {
	cp := *c
	cp.cans = s
	return &cp
}

// Tables returns the constants the calculator was built with.
func (c *Calculator) Tables() Tables {
	return c.tables
}
