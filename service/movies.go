package service

import (
	"context"
	"errors"
	"strings"

	"cinema-booking-cli/model"
)

// GetMovies returns the movie catalog.
func (c *Client) GetMovies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.getJSON(ctx, c.endpoint("/movies"), &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// GetMovie fetches a single movie by id.
func (c *Client) GetMovie(ctx context.Context, id string) (model.Movie, error) {
	if strings.TrimSpace(id) == "" {
		return model.Movie{}, errors.New("movie id is required")
	}
	var movie model.Movie
	if err := c.getJSON(ctx, c.endpoint("/movies/%s", escape(id)), &movie); err != nil {
		return model.Movie{}, err
	}
	return movie, nil
}
