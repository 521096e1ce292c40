package booking

import (
	"context"
	"fmt"

	"cinema-booking-cli/model"
	"cinema-booking-cli/service"
)

// Booker is the slice of the API client the submission flow needs.
type Booker interface {
	BookSeat(ctx context.Context, seatID string, userID string) error
	UnbookSeat(ctx context.Context, seatID string) error
	BookTicket(ctx context.Context, request model.TicketRequest) (model.Ticket, error)
}

// ConflictError reports a seat that was taken between fetch and
// reservation. The message names the seat so the user can pick another.
type ConflictError struct {
	SeatNumber string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Ghế %s đã được đặt bởi người khác. Vui lòng chọn ghế khác.", e.SeatNumber)
}

// Reserve books every selected seat one at a time, in selection order,
// each call awaited before the next is issued. On the first failure the
// remaining seats are never attempted and the seats already booked are
// released again, so no reservation is left behind for a booking that
// will not happen. A 409 is reported as a seat conflict; any other
// failure keeps its cause.
func (s *Session) Reserve(ctx context.Context, booker Booker) error {
	booked := make([]model.Seat, 0, len(s.seats))
	for _, seat := range s.seats {
		if err := booker.BookSeat(ctx, seat.Id, s.UserID); err != nil {
			s.release(ctx, booker, booked)
			if service.IsConflict(err) {
				return &ConflictError{SeatNumber: seat.SeatNumber}
			}
			return fmt.Errorf("Không thể giữ ghế %s: %w", seat.SeatNumber, err)
		}
		booked = append(booked, seat)
	}
	return nil
}

// release issues the compensating unbook calls. A failed release is
// ignored: the seat stays reserved server-side, which is the pre-existing
// backend behavior this saga narrows but cannot fully remove.
func (s *Session) release(ctx context.Context, booker Booker, booked []model.Seat) {
	for _, seat := range booked {
		_ = booker.UnbookSeat(ctx, seat.Id)
	}
}

// Submit validates the session, reserves the seats and books the ticket.
// On any failure the session state and selections are left untouched so
// the user can retry without re-selecting; on success the session is
// terminal.
func (s *Session) Submit(ctx context.Context, booker Booker) (model.Ticket, error) {
	if err := s.Validate(); err != nil {
		return model.Ticket{}, err
	}
	if err := s.Reserve(ctx, booker); err != nil {
		return model.Ticket{}, err
	}

	ticket, err := booker.BookTicket(ctx, s.BuildTicket())
	if err != nil {
		s.release(ctx, booker, s.seats)
		return model.Ticket{}, fmt.Errorf("Đặt vé thất bại, vui lòng thử lại: %w", err)
	}

	s.state = StateConfirmed
	return ticket, nil
}
