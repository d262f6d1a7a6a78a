package nhlweb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"NHLSync/internal/config"
	"NHLSync/internal/interfaces"
	"NHLSync/internal/model"
	"NHLSync/internal/utils/httpclient"

	"github.com/sirupsen/logrus"
)

// Client talks to the NHL web API (schedule, gamecenter, roster) and the NHL stats
// REST API (team index). All endpoints are GET, JSON, unauthenticated.
type Client struct {
	cfg        *config.SourceConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds a client with a fresh HTTP session. The watch loop calls this
// again on its recycle cadence to bound connection staleness.
func NewClient(cfg *config.SourceConfig, logger *logrus.Logger) interfaces.DataSource {
	return &Client{
		cfg:        cfg,
		httpClient: httpclient.New(cfg, logger),
		logger:     logger,
	}
}

// getJSON issues one GET and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", url, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", url, err)
	}
	return nil
}

// FetchScheduleForDate returns the games scheduled on date (YYYY-MM-DD). The upstream
// document covers a whole game week; only the requested day's games are returned.
func (c *Client) FetchScheduleForDate(ctx context.Context, date string) ([]model.ScheduleGame, error) {
	var schedule model.ScheduleResponse
	url := fmt.Sprintf("%s/schedule/%s", c.cfg.BaseURL, date)
	if err := c.getJSON(ctx, url, &schedule); err != nil {
		return nil, err
	}
	for _, day := range schedule.GameWeek {
		if day.Date == date {
			return day.Games, nil
		}
	}
	return nil, nil
}

// FetchGameLanding returns the gamecenter landing document for one game.
func (c *Client) FetchGameLanding(ctx context.Context, gameID int64) (*model.GameLanding, error) {
	var landing model.GameLanding
	url := fmt.Sprintf("%s/gamecenter/%d/landing", c.cfg.BaseURL, gameID)
	if err := c.getJSON(ctx, url, &landing); err != nil {
		return nil, err
	}
	return &landing, nil
}

// FetchGameBoxscore returns the gamecenter boxscore document for one game.
func (c *Client) FetchGameBoxscore(ctx context.Context, gameID int64) (*model.GameBoxscore, error) {
	var box model.GameBoxscore
	url := fmt.Sprintf("%s/gamecenter/%d/boxscore", c.cfg.BaseURL, gameID)
	if err := c.getJSON(ctx, url, &box); err != nil {
		return nil, err
	}
	return &box, nil
}

// FetchGamePbp returns the play-by-play document for one game.
func (c *Client) FetchGamePbp(ctx context.Context, gameID int64) (*model.GamePlayByPlay, error) {
	var pbp model.GamePlayByPlay
	url := fmt.Sprintf("%s/gamecenter/%d/play-by-play", c.cfg.BaseURL, gameID)
	if err := c.getJSON(ctx, url, &pbp); err != nil {
		return nil, err
	}
	return &pbp, nil
}

// FetchTeams returns the league team index from the stats REST API.
func (c *Client) FetchTeams(ctx context.Context) ([]model.TeamRecord, error) {
	var index model.TeamIndexResponse
	url := fmt.Sprintf("%s/en/team", c.cfg.StatsBaseURL)
	if err := c.getJSON(ctx, url, &index); err != nil {
		return nil, err
	}
	return index.Data, nil
}

// FetchTeamRoster returns the current roster for one team abbreviation.
func (c *Client) FetchTeamRoster(ctx context.Context, abbrev string) (*model.RosterResponse, error) {
	var roster model.RosterResponse
	url := fmt.Sprintf("%s/roster/%s/current", c.cfg.BaseURL, abbrev)
	if err := c.getJSON(ctx, url, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}
