package models

// Category identifies one of the nine scored stat categories in a
// standard 9-cat fantasy basketball league.
type Category string

const (
	CategoryPoints    Category = "points"
	CategoryRebounds  Category = "rebounds"
	CategoryAssists   Category = "assists"
	CategorySteals    Category = "steals"
	CategoryBlocks    Category = "blocks"
	CategoryThreePM   Category = "three_pm"
	CategoryFGPct     Category = "fg_pct"
	CategoryFTPct     Category = "ft_pct"
	CategoryTurnovers Category = "turnovers"
)

// CategoryInfo describes display metadata and scoring polarity for a
// category. Polarity is +1 when higher raw values are better and -1 when
// lower raw values are better (turnovers).
type CategoryInfo struct {
	Name     string  `json:"name"`
	Short    string  `json:"short"`
	Polarity float64 `json:"polarity"`
}

// Categories is the fixed 9-cat catalog. It is shared read-only data and
// must never be mutated at runtime.
var Categories = map[Category]CategoryInfo{
	CategoryPoints:    {Name: "Points", Short: "PTS", Polarity: 1},
	CategoryRebounds:  {Name: "Rebounds", Short: "REB", Polarity: 1},
	CategoryAssists:   {Name: "Assists", Short: "AST", Polarity: 1},
	CategorySteals:    {Name: "Steals", Short: "STL", Polarity: 1},
	CategoryBlocks:    {Name: "Blocks", Short: "BLK", Polarity: 1},
	CategoryThreePM:   {Name: "3-Pointers Made", Short: "3PM", Polarity: 1},
	CategoryFGPct:     {Name: "Field Goal %", Short: "FG%", Polarity: 1},
	CategoryFTPct:     {Name: "Free Throw %", Short: "FT%", Polarity: 1},
	CategoryTurnovers: {Name: "Turnovers", Short: "TO", Polarity: -1},
}

// categoryOrder fixes the iteration order used everywhere a deterministic
// walk over the catalog is required.
var categoryOrder = []Category{
	CategoryPoints,
	CategoryRebounds,
	CategoryAssists,
	CategorySteals,
	CategoryBlocks,
	CategoryThreePM,
	CategoryFGPct,
	CategoryFTPct,
	CategoryTurnovers,
}

// AllCategories returns the scored categories in their fixed catalog order.
func AllCategories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Polarity returns +1 for higher-is-better categories and -1 for
// lower-is-better ones. Unknown categories default to +1.
func (c Category) Polarity() float64 {
	if info, ok := Categories[c]; ok {
		return info.Polarity
	}
	return 1
}

// Short returns the display abbreviation for the category.
func (c Category) Short() string {
	if info, ok := Categories[c]; ok {
		return info.Short
	}
	return string(c)
}

// IsValid reports whether the category is part of the scored catalog.
func (c Category) IsValid() bool {
	_, ok := Categories[c]
	return ok
}
