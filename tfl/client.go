// Package tfl fetches the network snapshot from the TfL Unified API.
package tfl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"tidbyt.dev/tflgtfs/downloader"
	"tidbyt.dev/tflgtfs/model"
)

const DefaultBaseURL = "https://api.tfl.gov.uk"

const (
	defaultTimeout  = 60 * time.Second
	defaultCacheTTL = 24 * time.Hour
)

// Client talks to the Unified API. All requests go through the
// Downloader, so a caching Downloader makes reruns against unchanged
// data free.
type Client struct {
	BaseURL  string
	AppID    string
	AppKey   string
	Timeout  time.Duration
	CacheTTL time.Duration

	downloader downloader.Downloader
}

func NewClient(appID, appKey string, dl downloader.Downloader) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		AppID:      appID,
		AppKey:     appKey,
		Timeout:    defaultTimeout,
		CacheTTL:   defaultCacheTTL,
		downloader: dl,
	}
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s%s?app_id=%s&app_key=%s",
		c.BaseURL, endpoint, url.QueryEscape(c.AppID), url.QueryEscape(c.AppKey))

	body, err := c.downloader.Get(ctx, reqURL, map[string]string{
		"Accept": "application/json",
	}, downloader.GetOptions{
		Cache:    true,
		CacheTTL: c.CacheTTL,
		Timeout:  c.Timeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "getting %s", endpoint)
	}
	return body, nil
}

// Lines fetches every line with its route sections. Stops and
// timetables are not included; Fetch fills those in.
func (c *Client) Lines(ctx context.Context) ([]model.Line, error) {
	body, err := c.get(ctx, "/line/route")
	if err != nil {
		return nil, err
	}

	var lines []model.Line
	if err := json.Unmarshal(body, &lines); err != nil {
		return nil, errors.Wrap(err, "decoding lines")
	}
	return lines, nil
}

// Stops fetches the stop points served by a line, including one
// level of child stops.
func (c *Client) Stops(ctx context.Context, lineID string) ([]model.Stop, error) {
	body, err := c.get(ctx, fmt.Sprintf("/line/%s/stoppoints", lineID))
	if err != nil {
		return nil, err
	}

	var stops []model.Stop
	if err := json.Unmarshal(body, &stops); err != nil {
		return nil, errors.Wrapf(err, "decoding stops for line '%s'", lineID)
	}
	return stops, nil
}

// timetableResponse mirrors the nesting of the Unified API's
// timetable payload.
type timetableResponse struct {
	Timetable struct {
		Routes []model.TimeTable `json:"routes"`
	} `json:"timetable"`
}

// Timetable fetches the timetable for one route section. The API
// wraps it in a routes array; only the first entry is used.
func (c *Client) Timetable(ctx context.Context, lineID, from, to string) (*model.TimeTable, error) {
	body, err := c.get(ctx, fmt.Sprintf("/line/%s/timetable/%s/to/%s", lineID, from, to))
	if err != nil {
		return nil, err
	}

	var resp timetableResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrapf(err, "decoding timetable for line '%s'", lineID)
	}
	if len(resp.Timetable.Routes) == 0 {
		return nil, errors.Errorf("timetable for line '%s' has no routes", lineID)
	}
	return &resp.Timetable.Routes[0], nil
}
