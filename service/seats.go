package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"cinema-booking-cli/model"
)

// GetSeatsByShowtime returns the seat map for a showtime. The flat
// /seats listing ignores the query param on some backend versions and
// returns every seat in the system, so the path-style endpoint is the
// fallback and the result is always filtered client-side; a seat booked
// in another showtime must not render as booked in this one.
func (c *Client) GetSeatsByShowtime(ctx context.Context, showtimeID string) ([]model.Seat, error) {
	if strings.TrimSpace(showtimeID) == "" {
		return nil, errors.New("showtime id is required")
	}

	var seats []model.Seat
	err := c.getJSON(ctx, c.endpoint("/seats?showtimeId=%s", url.QueryEscape(showtimeID)), &seats)
	if err != nil {
		seats = nil
		if fallbackErr := c.getJSON(ctx, c.endpoint("/seats/showtime/%s", escape(showtimeID)), &seats); fallbackErr != nil {
			return nil, err
		}
	}

	filtered := make([]model.Seat, 0, len(seats))
	for _, seat := range seats {
		if seat.ShowtimeId == showtimeID {
			filtered = append(filtered, seat)
		}
	}
	return filtered, nil
}

// BookSeat reserves one seat for a user. A conflict error means the seat
// was taken between fetch and reservation.
func (c *Client) BookSeat(ctx context.Context, seatID string, userID string) error {
	if strings.TrimSpace(seatID) == "" || strings.TrimSpace(userID) == "" {
		return errors.New("seat id and user id are required")
	}
	body := map[string]string{"userId": userID}
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/seats/%s/book", escape(seatID)), body, nil)
}

// UnbookSeat releases a previously reserved seat. Used to compensate a
// partially failed multi-seat reservation.
func (c *Client) UnbookSeat(ctx context.Context, seatID string) error {
	if strings.TrimSpace(seatID) == "" {
		return errors.New("seat id is required")
	}
	return c.sendJSON(ctx, http.MethodPost, c.endpoint("/seats/%s/unbook", escape(seatID)), nil, nil)
}
