package service

import (
	"context"
	"fmt"

	"NHLSync/internal/interfaces"
	"NHLSync/internal/mapper"
	"NHLSync/internal/model"
	"NHLSync/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RosterSyncService maintains the team and player reference tables. It runs at
// startup and on manual trigger, never inside the live poll loop.
type RosterSyncService struct {
	teamRepo   repository.TeamRepository
	playerRepo repository.PlayerRepository
	source     interfaces.DataSource
	logger     *logrus.Logger
}

// NewRosterSyncService creates the roster sync over db and source.
func NewRosterSyncService(db *gorm.DB, source interfaces.DataSource, logger *logrus.Logger) *RosterSyncService {
	return &RosterSyncService{
		teamRepo:   repository.NewTeamRepository(db),
		playerRepo: repository.NewPlayerRepository(db),
		source:     source,
		logger:     logger,
	}
}

// Run refreshes teams from the league index, then each team's current roster. A team
// whose roster fetch fails is skipped without blocking the rest; historical
// franchises without a current roster are expected to fail here.
func (s *RosterSyncService) Run(ctx context.Context) error {
	records, err := s.source.FetchTeams(ctx)
	if err != nil {
		return fmt.Errorf("fetch team index: %w", err)
	}
	teams := mapper.TeamRecordsToRows(records)
	if err := s.teamRepo.UpsertTeams(ctx, teams); err != nil {
		return err
	}
	s.logger.WithField("teams", len(teams)).Info("team index synced")

	var allPlayers []model.Player
	for _, team := range teams {
		roster, err := s.source.FetchTeamRoster(ctx, team.Abbrev)
		if err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"team_id": team.TeamID,
				"abbrev":  team.Abbrev,
			}).Warn("roster fetch failed, skipping team")
			continue
		}
		allPlayers = append(allPlayers, mapper.RosterToPlayerRows(team.TeamID, roster)...)
	}

	if err := s.playerRepo.UpsertPlayers(ctx, allPlayers); err != nil {
		return err
	}
	s.logger.WithField("players", len(allPlayers)).Info("rosters synced")
	return nil
}
