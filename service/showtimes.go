package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cinema-booking-cli/model"
)

// GetShowtimes returns all showtimes.
func (c *Client) GetShowtimes(ctx context.Context) ([]model.Showtime, error) {
	var showtimes []model.Showtime
	if err := c.getJSON(ctx, c.endpoint("/showtimes"), &showtimes); err != nil {
		return nil, err
	}
	return showtimes, nil
}

// GetShowtimesByMovie returns the showtimes for a movie. The query-param
// listing is tried first; some backend versions only expose the
// path-style endpoint, so that is used as a fallback. Either way the
// result is filtered client-side because older servers ignore the param.
func (c *Client) GetShowtimesByMovie(ctx context.Context, movieID string) ([]model.Showtime, error) {
	if strings.TrimSpace(movieID) == "" {
		return nil, errors.New("movie id is required")
	}

	var showtimes []model.Showtime
	err := c.getJSON(ctx, c.endpoint("/showtimes?movieId=%s", url.QueryEscape(movieID)), &showtimes)
	if err != nil {
		showtimes = nil
		if fallbackErr := c.getJSON(ctx, c.endpoint("/showtimes/movie/%s", escape(movieID)), &showtimes); fallbackErr != nil {
			return nil, err
		}
	}

	filtered := make([]model.Showtime, 0, len(showtimes))
	for _, showtime := range showtimes {
		if showtime.MovieId == movieID {
			filtered = append(filtered, showtime)
		}
	}
	return filtered, nil
}

// GetShowtime fetches a single showtime by id.
func (c *Client) GetShowtime(ctx context.Context, id string) (model.Showtime, error) {
	if strings.TrimSpace(id) == "" {
		return model.Showtime{}, errors.New("showtime id is required")
	}
	var showtime model.Showtime
	if err := c.getJSON(ctx, c.endpoint("/showtimes/%s", escape(id)), &showtime); err != nil {
		return model.Showtime{}, err
	}
	return showtime, nil
}

// CreateShowtime creates a showtime.
func (c *Client) CreateShowtime(ctx context.Context, showtime model.Showtime) (model.Showtime, error) {
	var created model.Showtime
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("/showtimes"), showtime, &created); err != nil {
		return model.Showtime{}, err
	}
	return created, nil
}

// UpdateShowtime replaces a showtime.
func (c *Client) UpdateShowtime(ctx context.Context, id string, showtime model.Showtime) (model.Showtime, error) {
	if strings.TrimSpace(id) == "" {
		return model.Showtime{}, errors.New("showtime id is required")
	}
	var updated model.Showtime
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("/showtimes/%s", escape(id)), showtime, &updated); err != nil {
		return model.Showtime{}, err
	}
	return updated, nil
}

// DeleteShowtime removes a showtime.
func (c *Client) DeleteShowtime(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("showtime id is required")
	}
	return c.sendJSON(ctx, http.MethodDelete, c.endpoint("/showtimes/%s", escape(id)), nil, nil)
}
