package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"cinema-booking-cli/model"
)

// BookTicket submits a booking and returns the stored ticket.
func (c *Client) BookTicket(ctx context.Context, request model.TicketRequest) (model.Ticket, error) {
	var ticket model.Ticket
	if err := c.sendJSON(ctx, http.MethodPost, c.endpoint("/tickets"), request, &ticket); err != nil {
		return model.Ticket{}, err
	}
	return ticket, nil
}

// GetTicketsByUser returns every ticket booked by a user.
func (c *Client) GetTicketsByUser(ctx context.Context, userID string) ([]model.Ticket, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, errors.New("user id is required")
	}
	var tickets []model.Ticket
	if err := c.getJSON(ctx, c.endpoint("/tickets/user/%s", escape(userID)), &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// CancelTicket cancels a booked ticket.
func (c *Client) CancelTicket(ctx context.Context, ticketID string) (model.Ticket, error) {
	if strings.TrimSpace(ticketID) == "" {
		return model.Ticket{}, errors.New("ticket id is required")
	}
	var ticket model.Ticket
	if err := c.sendJSON(ctx, http.MethodPut, c.endpoint("/tickets/%s/cancel", escape(ticketID)), nil, &ticket); err != nil {
		return model.Ticket{}, err
	}
	return ticket, nil
}
