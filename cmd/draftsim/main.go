package main

import (
	"github.com/sirupsen/logrus"

	"github.com/thelineup/draft-engine/internal/draft"
	"github.com/thelineup/draft-engine/internal/engine"
	"github.com/thelineup/draft-engine/internal/models"
	"github.com/thelineup/draft-engine/internal/providers"
	"github.com/thelineup/draft-engine/internal/services"
	"github.com/thelineup/draft-engine/pkg/config"
	"github.com/thelineup/draft-engine/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Setup logging
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())

	// Pick the pool source
	var provider providers.PoolProvider
	if cfg.PoolFile != "" {
		provider = providers.NewFixtureProvider(cfg.PoolFile)
	} else {
		provider = providers.NewSyntheticProvider(cfg.SyntheticPool, cfg.AISeed)
	}

	pool, err := provider.PlayerPool(cfg.Season)
	if err != nil {
		log.Fatalf("Failed to load player pool: %v", err)
	}
	adp, err := provider.ADP(cfg.Season)
	if err != nil {
		log.Fatalf("Failed to load ADP reference: %v", err)
	}

	// Standardize the pool once; every pick reuses the memoized table.
	zcache := services.NewZScoreCache()
	zscores := zcache.ComputeZScores(pool, cfg.Season)

	session, err := draft.NewDraft(draft.Config{
		TeamCount:       cfg.TeamCount,
		RosterSize:      cfg.RosterSize,
		Season:          cfg.Season,
		StrictPositions: cfg.StrictPositions,
	}, pool)
	if err != nil {
		log.Fatalf("Failed to initialize draft: %v", err)
	}

	suggestCfg := engine.SuggestConfig{
		RawValueWeight: cfg.RawValueWeight,
		ScarcityWeight: cfg.ScarcityWeight,
		NeedWeight:     cfg.NeedWeight,
		ADPWeight:      cfg.ADPWeight,
		PuntThreshold:  cfg.PuntThreshold,
		Punt:           engine.DefaultPuntConfig(),
		ADPClamp:       24,
		MaxSuggestions: cfg.MaxSuggestions,
	}
	if err := suggestCfg.Validate(); err != nil {
		log.Fatalf("Invalid suggestion config: %v", err)
	}

	// One jittered opponent per team; the user's slot gets the unjittered
	// weights so its picks match what the assistant would recommend.
	userTeam := cfg.DraftPosition - 1
	opponents := make([]*engine.Opponent, cfg.TeamCount)
	for team := 0; team < cfg.TeamCount; team++ {
		jitterFraction := cfg.AIJitter
		if team == userTeam {
			jitterFraction = 0
		}
		opponents[team] = engine.NewOpponent(suggestCfg, jitterFraction, cfg.AISeed+int64(team))
	}

	runDraft(session, opponents, zscores, adp, log)
	report(session, zscores, suggestCfg.Punt, log)
}

func runDraft(session *draft.Draft, opponents []*engine.Opponent, zscores map[string]engine.ZScoreVector, adp map[string]float64, log *logrus.Logger) {
	for !session.IsComplete() {
		team := session.CurrentTeam()
		remaining := session.RemainingPool()

		pick, err := opponents[team].Pick(remaining, session.Roster(team), zscores, adp, session.PickIndex()+1)
		if err != nil {
			log.Fatalf("Team %d could not pick: %v", team, err)
		}
		if err := session.ApplyPick(pick.ID); err != nil {
			log.Fatalf("Pick rejected for team %d: %v", team, err)
		}

		logger.WithTeamContext(session.ID, team).WithFields(logrus.Fields{
			"round":  session.Round() + 1,
			"pick":   session.PickIndex(),
			"player": pick.Name,
			"pos":    pick.Positions,
			"z":      zscores[pick.ID].Total(),
		}).Info("Pick made")
	}
}

func report(session *draft.Draft, zscores map[string]engine.ZScoreVector, puntCfg engine.PuntConfig, log *logrus.Logger) {
	outlooks := engine.TeamOutlooks(session.Rosters(), zscores)
	for _, outlook := range outlooks {
		roster := session.Roster(outlook.Team)

		weak := outlook.WeakCategories()
		strong := make([]models.Category, 0)
		for _, category := range models.AllCategories() {
			if outlook.Categories[category].Status == engine.StatusStrong {
				strong = append(strong, category)
			}
		}

		punts := engine.DetectPunts(roster, zscores, puntCfg)
		puntCats := make([]models.Category, 0, len(punts))
		for _, category := range models.AllCategories() {
			if _, ok := punts[category]; ok {
				puntCats = append(puntCats, category)
			}
		}

		logger.WithTeamContext(session.ID, outlook.Team).WithFields(logrus.Fields{
			"players": len(roster.Players),
			"strong":  strong,
			"weak":    weak,
			"punting": puntCats,
		}).Info("Final roster outlook")
	}
	log.Info("Draft simulation finished")
}
