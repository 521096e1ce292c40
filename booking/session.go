// Package booking holds the client-side state of one in-progress booking:
// the seat selection, the combo quantities, the order total and the step
// transitions up to a confirmed ticket.
package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"cinema-booking-cli/model"
)

// State is the position of a session in the booking flow.
type State int

const (
	StateBrowsing State = iota
	StateSeatsSelected
	StatePaymentChosen
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateBrowsing:
		return "browsing"
	case StateSeatsSelected:
		return "seats-selected"
	case StatePaymentChosen:
		return "payment-method-chosen"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ValidationError names the missing required field; the message is shown
// to the user as-is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Session owns the booking state for one showtime. It is discarded on
// cancel, completion or navigation away; nothing in it outlives the run.
type Session struct {
	UserID   string
	Movie    model.Movie
	Showtime model.Showtime

	state      State
	seats      []model.Seat
	quantities map[string]int
	combos     []model.Combo
	payment    string
}

// NewSession starts a booking for one user and showtime. The combo list
// is the active price list used for quantity changes and totals.
func NewSession(userID string, movie model.Movie, showtime model.Showtime, combos []model.Combo) *Session {
	return &Session{
		UserID:     userID,
		Movie:      movie,
		Showtime:   showtime,
		state:      StateBrowsing,
		quantities: make(map[string]int),
		combos:     combos,
	}
}

func (s *Session) State() State { return s.state }

// SetCombos replaces the combo price list, e.g. once the checkout fetch
// completes. Quantities for combos no longer offered are dropped.
func (s *Session) SetCombos(combos []model.Combo) {
	s.combos = combos
	known := make(map[string]bool, len(combos))
	for _, combo := range combos {
		known[combo.Id] = true
	}
	for id := range s.quantities {
		if !known[id] {
			delete(s.quantities, id)
		}
	}
}

func (s *Session) Combos() []model.Combo { return s.combos }

// ToggleSeat adds an available seat to the selection or removes it if
// already selected. Booked seats are inert. Returns whether the
// selection changed.
func (s *Session) ToggleSeat(seat model.Seat) bool {
	if seat.Booked || s.state == StateConfirmed {
		return false
	}
	for i, selected := range s.seats {
		if selected.Id == seat.Id {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			return true
		}
	}
	s.seats = append(s.seats, seat)
	return true
}

// SeatSelected reports whether a seat is part of the current selection.
func (s *Session) SeatSelected(seatID string) bool {
	for _, seat := range s.seats {
		if seat.Id == seatID {
			return true
		}
	}
	return false
}

// SelectedSeats returns the selection in the order seats were chosen.
func (s *Session) SelectedSeats() []model.Seat {
	return append([]model.Seat{}, s.seats...)
}

func (s *Session) SeatCount() int { return len(s.seats) }

// SeatNumbers joins the selected seat labels in selection order.
func (s *Session) SeatNumbers() string {
	labels := make([]string, 0, len(s.seats))
	for _, seat := range s.seats {
		labels = append(labels, seat.SeatNumber)
	}
	return strings.Join(labels, ", ")
}

// ChangeQuantity applies a signed delta to a combo quantity. The result
// is clamped at zero and zero entries are removed, never stored.
func (s *Session) ChangeQuantity(comboID string, delta int) {
	next := s.quantities[comboID] + delta
	if next <= 0 {
		delete(s.quantities, comboID)
		return
	}
	s.quantities[comboID] = next
}

func (s *Session) Quantity(comboID string) int {
	return s.quantities[comboID]
}

// Quantities returns a copy of the combo quantity map.
func (s *Session) Quantities() map[string]int {
	out := make(map[string]int, len(s.quantities))
	for id, qty := range s.quantities {
		out[id] = qty
	}
	return out
}

// TicketTotal is the seat part of the order total.
func (s *Session) TicketTotal() float64 {
	return float64(len(s.seats)) * s.Showtime.TicketPrice()
}

// ComboTotal is the concession part of the order total.
func (s *Session) ComboTotal() float64 {
	return ComboTotal(s.quantities, s.combos)
}

// Total is the full order total.
func (s *Session) Total() float64 {
	return s.TicketTotal() + s.ComboTotal()
}

// ComboTotal computes Σ(quantity × price) over the quantity map. Pure:
// deterministic in its inputs, no session state involved.
func ComboTotal(quantities map[string]int, combos []model.Combo) float64 {
	total := 0.0
	for _, combo := range combos {
		if qty := quantities[combo.Id]; qty > 0 {
			total += combo.Price * float64(qty)
		}
	}
	return total
}

// OrderTotal computes the full order total from its parts. Pure.
func OrderTotal(seatCount int, pricePerSeat float64, quantities map[string]int, combos []model.Combo) float64 {
	return float64(seatCount)*pricePerSeat + ComboTotal(quantities, combos)
}

// ConfirmSeats advances past seat selection. Requires a non-empty
// selection.
func (s *Session) ConfirmSeats() error {
	if len(s.seats) == 0 {
		return &ValidationError{Field: "seats", Message: "Vui lòng chọn ít nhất một ghế"}
	}
	if s.state == StateBrowsing {
		s.state = StateSeatsSelected
	}
	return nil
}

// ChoosePayment records the payment method and advances the flow.
func (s *Session) ChoosePayment(method string) error {
	switch method {
	case model.PaymentCash, model.PaymentVietQR, model.PaymentMomo, model.PaymentZaloPay:
	default:
		return &ValidationError{Field: "paymentMethod", Message: "Vui lòng chọn phương thức thanh toán"}
	}
	if err := s.ConfirmSeats(); err != nil {
		return err
	}
	s.payment = method
	s.state = StatePaymentChosen
	return nil
}

func (s *Session) PaymentMethod() string { return s.payment }

// Cancel discards the selection and returns to browsing.
func (s *Session) Cancel() {
	s.state = StateBrowsing
	s.seats = nil
	s.quantities = make(map[string]int)
	s.payment = ""
}

// Validate checks every required field before submission, reporting the
// first missing one. No network call may be issued while this fails.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.UserID) == "" {
		return &ValidationError{Field: "userId", Message: "Vui lòng đăng nhập để đặt vé"}
	}
	if strings.TrimSpace(s.Showtime.Id) == "" {
		return &ValidationError{Field: "showtimeId", Message: "Thông tin suất chiếu không hợp lệ"}
	}
	if strings.TrimSpace(s.Movie.Id) == "" {
		return &ValidationError{Field: "movieId", Message: "Thông tin phim không hợp lệ"}
	}
	if len(s.seats) == 0 {
		return &ValidationError{Field: "seats", Message: "Vui lòng chọn ít nhất một ghế"}
	}
	if s.payment == "" {
		return &ValidationError{Field: "paymentMethod", Message: "Vui lòng chọn phương thức thanh toán"}
	}
	return nil
}

// BuildTicket assembles the immutable booking payload: identifiers, a
// display snapshot of the movie and showtime, the computed total and a
// human-readable combo note.
func (s *Session) BuildTicket() model.TicketRequest {
	seatIDs := make([]string, 0, len(s.seats))
	for _, seat := range s.seats {
		seatIDs = append(seatIDs, seat.Id)
	}

	paymentStatus := "paid"
	if s.payment == model.PaymentCash {
		paymentStatus = "pending"
	}

	var showDate, showTime string
	if !s.Showtime.StartTime.IsZero() {
		showDate = s.Showtime.StartTime.Format(time.DateOnly)
		showTime = s.Showtime.StartTime.Format(time.RFC3339)
	}

	cinemaName := s.Showtime.CinemaName
	if cinemaName == "" {
		cinemaName = "Rạp chiếu phim"
	}

	return model.TicketRequest{
		Reference:     uuid.NewString(),
		UserId:        s.UserID,
		ShowtimeId:    s.Showtime.Id,
		SeatId:        strings.Join(seatIDs, ", "),
		SeatNumber:    s.SeatNumbers(),
		MovieId:       s.Movie.Id,
		MovieTitle:    s.Movie.DisplayTitle(),
		MoviePoster:   s.Movie.Poster(),
		CinemaName:    cinemaName,
		CinemaAddress: s.Showtime.CinemaAddress,
		ShowDate:      showDate,
		ShowTime:      showTime,
		Price:         s.Total(),
		Status:        "pending",
		PaymentMethod: s.payment,
		PaymentStatus: paymentStatus,
		IsRefundable:  true,
		Notes:         s.comboNotes(),
	}
}

func (s *Session) comboNotes() string {
	if len(s.quantities) == 0 {
		return "Không có combo"
	}
	parts := make([]string, 0, len(s.quantities))
	for _, combo := range s.combos {
		if qty := s.quantities[combo.Id]; qty > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", combo.Name, qty))
		}
	}
	return "Combo: " + strings.Join(parts, ", ")
}
