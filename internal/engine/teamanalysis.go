package engine

import (
	"sort"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/models"
)

// CategoryStatus grades a team's standing in one category relative to the
// rest of the league.
type CategoryStatus string

const (
	StatusStrong  CategoryStatus = "strong"
	StatusAverage CategoryStatus = "average"
	StatusWeak    CategoryStatus = "weak"
)

// CategoryOutlook summarizes one team's position in one category.
type CategoryOutlook struct {
	Total   float64        `json:"total"`
	Average float64        `json:"average"`
	Rank    int            `json:"rank"`
	Teams   int            `json:"teams"`
	Status  CategoryStatus `json:"status"`
}

// TeamOutlook is a per-category summary for one roster.
type TeamOutlook struct {
	Team       int                                 `json:"team"`
	Categories map[models.Category]CategoryOutlook `json:"categories"`
}

// TeamOutlooks ranks every roster against the others in each category by
// total z-score. Because z-scores are polarity-adjusted, higher is better
// in every category, turnovers included. Teams that have not drafted yet
// are excluded from rankings and graded average.
func TeamOutlooks(rosters []*draft.Roster, zscores map[string]ZScoreVector) []TeamOutlook {
	outlooks := make([]TeamOutlook, len(rosters))
	for i, roster := range rosters {
		outlooks[i] = TeamOutlook{
			Team:       roster.Team,
			Categories: make(map[models.Category]CategoryOutlook, len(models.Categories)),
		}
	}

	active := 0
	for _, roster := range rosters {
		if roster.Size() > 0 {
			active++
		}
	}

	for _, category := range models.AllCategories() {
		type teamTotal struct {
			index int
			total float64
		}
		totals := make([]teamTotal, 0, len(rosters))
		for i, roster := range rosters {
			if roster.Size() == 0 {
				continue
			}
			sum := 0.0
			for _, p := range roster.Players {
				sum += zscores[p.ID][category]
			}
			totals = append(totals, teamTotal{index: i, total: sum})
		}
		sort.SliceStable(totals, func(a, b int) bool {
			return totals[a].total > totals[b].total
		})

		ranked := make(map[int]int, len(totals))
		for rank, t := range totals {
			ranked[t.index] = rank + 1
		}

		for i, roster := range rosters {
			outlook := CategoryOutlook{Teams: active, Status: StatusAverage}
			if roster.Size() > 0 {
				sum := 0.0
				for _, p := range roster.Players {
					sum += zscores[p.ID][category]
				}
				outlook.Total = sum
				outlook.Average = sum / float64(roster.Size())
				outlook.Rank = ranked[i]
				outlook.Status = statusForRank(outlook.Rank, active)
			}
			outlooks[i].Categories[category] = outlook
		}
	}

	return outlooks
}

// WeakCategories returns the categories the outlook grades weak, in
// catalog order.
func (t TeamOutlook) WeakCategories() []models.Category {
	var weak []models.Category
	for _, category := range models.AllCategories() {
		if t.Categories[category].Status == StatusWeak {
			weak = append(weak, category)
		}
	}
	return weak
}

// statusForRank grades by normalized standing: best rank maps to 1,
// worst to 0, graded in thirds. A league of one team is always average.
func statusForRank(rank, teams int) CategoryStatus {
	if rank == 0 || teams <= 1 {
		return StatusAverage
	}
	standing := float64(teams-rank) / float64(teams-1)
	switch {
	case standing >= 0.67:
		return StatusStrong
	case standing >= 0.33:
		return StatusAverage
	default:
		return StatusWeak
	}
}
