// Package schedule provides manufacturer-style maintenance recommendations.
// Lookups against the external schedule service are best effort: any
// failure degrades to the static fallback schedule and is never surfaced
// to the caller as an error.
package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

// ServiceGroup is a set of maintenance items due every Interval miles.
type ServiceGroup struct {
	Interval int      `json:"interval"`
	Items    []string `json:"items"`
}

// Schedule holds the regular and severe-condition service groups for a
// make/model/year.
type Schedule struct {
	Regular []ServiceGroup `json:"regular"`
	Severe  []ServiceGroup `json:"severe"`
}

// Provider resolves a maintenance schedule for a vehicle. Implementations
// must always return a usable schedule.
type Provider interface {
	Schedule(ctx context.Context, make, model string, year int) Schedule
}

// HTTPProvider looks up schedules from an external HTTP service.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPProvider creates a provider using the SCHEDULE_API_URL environment
// variable, or the default service when unset.
func NewHTTPProvider() *HTTPProvider {
	base := os.Getenv("SCHEDULE_API_URL")
	if base == "" {
		base = "https://api.carapi.app"
	}
	return &HTTPProvider{
		BaseURL: base,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type scheduleResponse struct {
	Success  bool      `json:"success"`
	Schedule *Schedule `json:"schedule"`
}

// Schedule fetches the maintenance schedule for a vehicle, falling back to
// the static schedule on any failure or timeout.
func (p *HTTPProvider) Schedule(ctx context.Context, make, model string, year int) Schedule {
	lookupURL := fmt.Sprintf("%s/maintenance/%s/%s/%d",
		p.BaseURL, url.PathEscape(make), url.PathEscape(model), year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		log.WithError(err).Warn("Schedule lookup request failed, using fallback")
		return Fallback()
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		log.WithError(err).Warn("Schedule lookup failed, using fallback")
		return Fallback()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.WithField("status", resp.StatusCode).Warn("Schedule lookup returned non-OK status, using fallback")
		return Fallback()
	}

	var sr scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		log.WithError(err).Warn("Schedule lookup returned invalid JSON, using fallback")
		return Fallback()
	}
	if !sr.Success || sr.Schedule == nil || len(sr.Schedule.Regular) == 0 {
		return Fallback()
	}
	return *sr.Schedule
}

// Recommendation is a service group with the next mileage it comes due at
// for a specific vehicle.
type Recommendation struct {
	Interval   int      `json:"interval"`
	Items      []string `json:"items"`
	DueMileage int      `json:"dueMileage"`
}

// Recommended returns the upcoming regular service groups for a vehicle at
// the given mileage, ordered by the mileage they next come due at.
func Recommended(s Schedule, mileage int) []Recommendation {
	recs := []Recommendation{}
	for _, g := range s.Regular {
		if g.Interval <= 0 {
			continue
		}
		if g.Interval > mileage%g.Interval {
			recs = append(recs, Recommendation{
				Interval:   g.Interval,
				Items:      g.Items,
				DueMileage: (mileage/g.Interval)*g.Interval + g.Interval,
			})
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].DueMileage < recs[j].DueMileage })
	return recs
}
