package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"NHLSync/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GameHandler serves the raw game/play/team rows to downstream readers.
type GameHandler struct {
	gameRepo        repository.GameRepository
	playRepo        repository.PlayRepository
	teamRepo        repository.TeamRepository
	playerRepo      repository.PlayerRepository
	defaultTimezone string
	logger          *logrus.Logger
}

// NewGameHandler creates a GameHandler. defaultTimezone is the poll loop's canonical
// zone; requests may override it per call with ?tz=.
func NewGameHandler(db *gorm.DB, defaultTimezone string, logger *logrus.Logger) *GameHandler {
	return &GameHandler{
		gameRepo:        repository.NewGameRepository(db),
		playRepo:        repository.NewPlayRepository(db),
		teamRepo:        repository.NewTeamRepository(db),
		playerRepo:      repository.NewPlayerRepository(db),
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// ListGames returns the games on one date.
// GET /api/games?date=2026-01-31&tz=America/New_York
func (h *GameHandler) ListGames(c *gin.Context) {
	timezone := c.DefaultQuery("tz", h.defaultTimezone)
	date := c.Query("date")
	if date == "" {
		loc, err := time.LoadLocation(timezone)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown timezone: " + timezone})
			return
		}
		date = time.Now().In(loc).Format("2006-01-02")
	}

	games, err := h.gameRepo.ListGamesByDate(c.Request.Context(), date, timezone)
	if err != nil {
		h.logger.WithError(err).Error("ListGames failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "timezone": timezone, "games": games})
}

// GetGame returns one game row.
// GET /api/games/:game_id
func (h *GameHandler) GetGame(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id must be an integer"})
		return
	}

	game, err := h.gameRepo.GetGameByID(c.Request.Context(), gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "game not found"})
			return
		}
		h.logger.WithError(err).WithField("game_id", gameID).Error("GetGame failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, game)
}

// ListGamePlays returns a game's play-by-play rows in upstream order.
// GET /api/games/:game_id/plays
func (h *GameHandler) ListGamePlays(c *gin.Context) {
	gameID, err := strconv.ParseInt(c.Param("game_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "game_id must be an integer"})
		return
	}

	plays, err := h.playRepo.ListPlaysByGame(c.Request.Context(), gameID)
	if err != nil {
		h.logger.WithError(err).WithField("game_id", gameID).Error("ListGamePlays failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game_id": gameID, "plays": plays})
}

// ListTeams returns all teams; ?active=true filters to active ones.
// GET /api/teams
func (h *GameHandler) ListTeams(c *gin.Context) {
	var (
		teams interface{}
		err   error
	)
	if c.Query("active") == "true" {
		teams, err = h.teamRepo.ListActiveTeams(c.Request.Context())
	} else {
		teams, err = h.teamRepo.ListTeams(c.Request.Context())
	}
	if err != nil {
		h.logger.WithError(err).Error("ListTeams failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"teams": teams})
}

// ListTeamPlayers returns one team's players.
// GET /api/teams/:team_id/players
func (h *GameHandler) ListTeamPlayers(c *gin.Context) {
	teamID, err := strconv.ParseInt(c.Param("team_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "team_id must be an integer"})
		return
	}

	players, err := h.playerRepo.ListPlayersByTeam(c.Request.Context(), teamID)
	if err != nil {
		h.logger.WithError(err).WithField("team_id", teamID).Error("ListTeamPlayers failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"team_id": teamID, "players": players})
}
