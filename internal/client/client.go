// Package client is a thin typed wrapper over the REST API, used by the
// terminal client. Requests are single-attempt: any transport or server
// failure surfaces as an error and the caller falls back to a loading or
// empty state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lovedays/internal/db"
	"github.com/lovedays/internal/timeline"
)

// ErrNotConfigured is returned when the server has no couple record yet; the
// caller should run the setup flow instead of rendering derived stats.
var ErrNotConfigured = errors.New("couple not configured")

// Client talks to a lovedays server.
type Client struct {
	baseURL string
	http    *http.Client
}

// Stats is the derived-state payload of GET /api/stats.
type Stats struct {
	Couple     db.Couple                  `json:"couple"`
	Elapsed    timeline.Elapsed           `json:"elapsed"`
	Breakdown  timeline.Breakdown         `json:"breakdown"`
	Milestones timeline.MilestoneProgress `json:"milestones"`
	Quote      string                     `json:"quote"`
}

// MilestoneEntry is one annotated catalog row of GET /api/milestones.
type MilestoneEntry struct {
	Days          int    `json:"days"`
	Label         string `json:"label"`
	Description   string `json:"description"`
	Icon          string `json:"icon"`
	Reached       bool   `json:"reached"`
	IsToday       bool   `json:"isToday"`
	DaysRemaining int    `json:"daysRemaining"`
}

// MilestoneOverview is the payload of GET /api/milestones.
type MilestoneOverview struct {
	DaysElapsed     int              `json:"daysElapsed"`
	Milestones      []MilestoneEntry `json:"milestones"`
	ReachedCount    int              `json:"reachedCount"`
	TotalCount      int              `json:"totalCount"`
	ProgressPercent int              `json:"progressPercent"`
}

// Memory mirrors the API memory payload, including the rendered content.
type Memory struct {
	ID          string `json:"id"`
	CoupleID    string `json:"coupleId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml"`
	Date        string `json:"date"`
	Mood        string `json:"mood"`
	PhotoURI    string `json:"photoUri"`
}

// DateCountdown is one row of GET /api/important-dates/:coupleId/countdowns.
type DateCountdown struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	NextDate  string `json:"nextDate"`
	DaysUntil int    `json:"daysUntil"`
	Status    string `json:"status"`
}

// CoupleInput is the body of POST /api/couple and PUT /api/couple/:id.
type CoupleInput struct {
	Partner1Name string `json:"partner1Name"`
	Partner2Name string `json:"partner2Name"`
	StartDate    string `json:"startDate"`
}

// MemoryInput is the body of POST /api/memories.
type MemoryInput struct {
	CoupleID string `json:"coupleId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	PhotoURI string `json:"photoUri"`
}

// ImportantDateInput is the body of POST /api/important-dates.
type ImportantDateInput struct {
	CoupleID string `json:"coupleId"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Type     string `json:"type"`
}

// New constructs a client for the given base URL, e.g. http://localhost:8080.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if resp.StatusCode == http.StatusNotFound && apiErr.Message == "couple not configured" {
			return ErrNotConfigured
		}
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return fmt.Errorf("server: %s", apiErr.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Couple fetches the active couple; ErrNotConfigured when setup has not run.
func (c *Client) Couple(ctx context.Context) (*db.Couple, error) {
	var couple *db.Couple
	if err := c.do(ctx, http.MethodGet, "/api/couple", nil, &couple); err != nil {
		return nil, err
	}
	if couple == nil {
		return nil, ErrNotConfigured
	}
	return couple, nil
}

// CreateCouple runs the initial setup.
func (c *Client) CreateCouple(ctx context.Context, input CoupleInput) (*db.Couple, error) {
	var couple db.Couple
	if err := c.do(ctx, http.MethodPost, "/api/couple", input, &couple); err != nil {
		return nil, err
	}
	return &couple, nil
}

// UpdateCouple edits the couple record; empty fields keep their value.
func (c *Client) UpdateCouple(ctx context.Context, id string, input CoupleInput) (*db.Couple, error) {
	var couple db.Couple
	if err := c.do(ctx, http.MethodPut, "/api/couple/"+id, input, &couple); err != nil {
		return nil, err
	}
	return &couple, nil
}

// Stats fetches the full derived state for the home screen.
func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Milestones fetches the annotated milestone catalog.
func (c *Client) Milestones(ctx context.Context) (*MilestoneOverview, error) {
	var overview MilestoneOverview
	if err := c.do(ctx, http.MethodGet, "/api/milestones", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// Memories lists a couple's memories, newest date first.
func (c *Client) Memories(ctx context.Context, coupleID string) ([]Memory, error) {
	var memories []Memory
	if err := c.do(ctx, http.MethodGet, "/api/memories/"+coupleID, nil, &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

// CreateMemory saves a new memory.
func (c *Client) CreateMemory(ctx context.Context, input MemoryInput) (*Memory, error) {
	var memory Memory
	if err := c.do(ctx, http.MethodPost, "/api/memories", input, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

// DeleteMemory removes a memory.
func (c *Client) DeleteMemory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/memories/"+id, nil, nil)
}

// ImportantDates lists a couple's recurring dates.
func (c *Client) ImportantDates(ctx context.Context, coupleID string) ([]db.ImportantDate, error) {
	var dates []db.ImportantDate
	if err := c.do(ctx, http.MethodGet, "/api/important-dates/"+coupleID, nil, &dates); err != nil {
		return nil, err
	}
	return dates, nil
}

// Countdowns lists a couple's dates with days-until-next-occurrence.
func (c *Client) Countdowns(ctx context.Context, coupleID string) ([]DateCountdown, error) {
	var countdowns []DateCountdown
	if err := c.do(ctx, http.MethodGet, "/api/important-dates/"+coupleID+"/countdowns", nil, &countdowns); err != nil {
		return nil, err
	}
	return countdowns, nil
}

// CreateImportantDate saves a new recurring date.
func (c *Client) CreateImportantDate(ctx context.Context, input ImportantDateInput) (*db.ImportantDate, error) {
	var record db.ImportantDate
	if err := c.do(ctx, http.MethodPost, "/api/important-dates", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteImportantDate removes a recurring date.
func (c *Client) DeleteImportantDate(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/important-dates/"+id, nil, nil)
}

// Quote fetches the quote of the day.
func (c *Client) Quote(ctx context.Context) (string, error) {
	var payload struct {
		Quote string `json:"quote"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/quote", nil, &payload); err != nil {
		return "", err
	}
	return payload.Quote, nil
}
