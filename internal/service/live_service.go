package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"NHLSync/internal/adapter/nhlweb"
	"NHLSync/internal/config"
	"NHLSync/internal/interfaces"
	"NHLSync/internal/mapper"
	"NHLSync/internal/model"
	"NHLSync/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GameUpdateResult is the outcome of one per-game update within a cycle. The loop's
// continue-on-error behavior branches on Err instead of recovering mid-flight.
type GameUpdateResult struct {
	GameID       int64
	PlaysWritten int
	Err          error
}

// CycleSummary collects one poll cycle: the resolved live ids and each game's result.
type CycleSummary struct {
	Cycle       int
	LiveGameIDs []int64
	Results     []GameUpdateResult
}

// Watcher runs the live-game watch loop: resolve today's live games, update each one,
// sleep at an interval that adapts to whether anything is live, repeat until the
// context is cancelled. The upstream session is rebuilt every few cycles to bound
// connection staleness.
type Watcher struct {
	db     *gorm.DB
	logger *logrus.Logger

	source    interfaces.DataSource
	newSource func() interfaces.DataSource

	liveInterval time.Duration
	idleInterval time.Duration
	recycleEvery int
	loc          *time.Location

	cycle int
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// NewWatcher builds a Watcher from the application config. An unloadable timezone is
// a configuration error and fails here, before the loop starts.
func NewWatcher(db *gorm.DB, logger *logrus.Logger, cfg *config.Config) (*Watcher, error) {
	loc, err := time.LoadLocation(cfg.Poll.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load poll timezone %q: %w", cfg.Poll.Timezone, err)
	}
	sourceCfg := cfg.Source
	newSource := func() interfaces.DataSource {
		return nhlweb.NewClient(&sourceCfg, logger)
	}
	return &Watcher{
		db:           db,
		logger:       logger,
		source:       newSource(),
		newSource:    newSource,
		liveInterval: cfg.Poll.LiveInterval(),
		idleInterval: cfg.Poll.IdleInterval(),
		recycleEvery: cfg.Poll.SessionRecycleCycles,
		loc:          loc,
		now:          time.Now,
		sleep:        sleepWithContext,
	}, nil
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// Run executes the watch loop until ctx is cancelled. Cycle-level failures are logged
// and treated as an empty live set; the loop itself never terminates on an error.
func (w *Watcher) Run(ctx context.Context) {
	w.logger.WithFields(logrus.Fields{
		"live_interval": w.liveInterval,
		"idle_interval": w.idleInterval,
	}).Info("starting live watch loop")

	for {
		if ctx.Err() != nil {
			w.logger.Info("live watch loop stopped")
			return
		}

		if w.recycleEvery > 0 && w.cycle > 0 && w.cycle%w.recycleEvery == 0 {
			w.logger.WithField("cycle", w.cycle).Info("recycling upstream session")
			w.source = w.newSource()
		}

		summary := w.RunCycle(ctx)

		interval := w.idleInterval
		if len(summary.LiveGameIDs) > 0 {
			interval = w.liveInterval
		}
		w.sleep(ctx, interval)
		w.cycle++
	}
}

// RunCycle performs one poll cycle: resolve live ids, then update each game with
// per-game failure isolation.
func (w *Watcher) RunCycle(ctx context.Context) CycleSummary {
	summary := CycleSummary{Cycle: w.cycle}

	liveIDs, err := w.listLiveGamesToday(ctx)
	if err != nil {
		// Treated as an empty live set for this cycle; the next cycle is the retry.
		w.logger.WithError(err).WithField("cycle", w.cycle).Error("resolving live games failed")
		return summary
	}
	summary.LiveGameIDs = liveIDs

	if len(liveIDs) == 0 {
		w.logger.WithField("cycle", w.cycle).Debug("no live games")
		return summary
	}
	w.logger.WithFields(logrus.Fields{
		"cycle":      w.cycle,
		"live_games": len(liveIDs),
	}).Info("updating live games")

	for _, gameID := range liveIDs {
		res := w.updateLiveOnce(ctx, gameID)
		if res.Err != nil {
			// One game's failure never aborts the cycle or skips its siblings.
			w.logger.WithError(res.Err).WithField("game_id", gameID).Error("live update failed, continuing")
		} else {
			w.logger.WithFields(logrus.Fields{
				"game_id":       gameID,
				"plays_written": res.PlaysWritten,
			}).Info("live update done")
		}
		summary.Results = append(summary.Results, res)
	}
	return summary
}

// listLiveGamesToday fetches today's schedule in the configured timezone, upserts the
// minimal game rows so every live update has a target, and returns the ids whose
// state is live or critical. Entries with an unrecognized state are skipped.
func (w *Watcher) listLiveGamesToday(ctx context.Context) ([]int64, error) {
	date := w.now().In(w.loc).Format("2006-01-02")
	games, err := w.source.FetchScheduleForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule for %s: %w", date, err)
	}

	rows := mapper.ScheduleToGameRows(games)
	if err := repository.NewGameRepository(w.db).UpsertGames(ctx, rows); err != nil {
		return nil, err
	}

	var ids []int64
	for _, g := range games {
		if g.ID == 0 {
			continue
		}
		switch strings.ToUpper(g.GameState) {
		case model.GameStateLive, model.GameStateCritical:
			ids = append(ids, g.ID)
		}
	}
	return ids, nil
}

// updateLiveOnce fetches the three gamecenter documents for one game, derives the
// live field snapshot, and writes the game update plus the play upserts in one
// transaction so readers never observe the state torn between them.
func (w *Watcher) updateLiveOnce(ctx context.Context, gameID int64) GameUpdateResult {
	res := GameUpdateResult{GameID: gameID}

	landing, err := w.source.FetchGameLanding(ctx, gameID)
	if err != nil {
		res.Err = fmt.Errorf("fetch landing for game %d: %w", gameID, err)
		return res
	}
	box, err := w.source.FetchGameBoxscore(ctx, gameID)
	if err != nil {
		res.Err = fmt.Errorf("fetch boxscore for game %d: %w", gameID, err)
		return res
	}
	pbp, err := w.source.FetchGamePbp(ctx, gameID)
	if err != nil {
		res.Err = fmt.Errorf("fetch play-by-play for game %d: %w", gameID, err)
		return res
	}

	fields := mapper.DeriveGameFields(landing, box)
	plays := mapper.MapPlays(gameID, pbp)

	err = w.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewGameRepository(tx).UpdateGameLiveFields(ctx, gameID, fields); err != nil {
			return err
		}
		count, err := repository.NewPlayRepository(tx).UpsertPlays(ctx, plays)
		if err != nil {
			return err
		}
		res.PlaysWritten = count
		return nil
	})
	if err != nil {
		res.PlaysWritten = 0
		res.Err = fmt.Errorf("persist live update for game %d: %w", gameID, err)
	}
	return res
}
