package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// HTTPLeaderboard talks JSON to a remote leaderboard service.
type HTTPLeaderboard struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPLeaderboard(baseURL string) *HTTPLeaderboard {
	return &HTTPLeaderboard{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// SubmitSession POSTs the report to /scores.
func (h *HTTPLeaderboard) SubmitSession(ctx context.Context, r Report) (SubmitResult, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return SubmitResult{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+"/scores", bytes.NewReader(body))
	if err != nil {
		return SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return SubmitResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return SubmitResult{Success: false, Reason: resp.Status}, nil
	}
	var res SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return SubmitResult{}, fmt.Errorf("decode submit response: %w", err)
	}
	return res, nil
}

// FetchTop GETs the ranked top-n from /scores/top.
func (h *HTTPLeaderboard) FetchTop(ctx context.Context, n int) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.BaseURL+"/scores/top?n="+strconv.Itoa(n), nil)
	if err != nil {
		return nil, err
	}
	resp, err := h.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch top: %s", resp.Status)
	}
	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode top entries: %w", err)
	}
	return entries, nil
}

// HTTPPlayCounter fires a single POST per increment. Errors are logged
// and dropped; nothing reads the result.
type HTTPPlayCounter struct {
	URL    string
	Client *http.Client
	Log    *zap.SugaredLogger
}

func (p *HTTPPlayCounter) Increment() {
	client := p.Client
	if client == nil {
		client = &http.Client{Timeout: 3 * time.Second}
	}
	resp, err := client.Post(p.URL, "application/json", nil)
	if err != nil {
		if p.Log != nil {
			p.Log.Debugw("play counter increment failed", "err", err)
		}
		return
	}
	resp.Body.Close()
}
