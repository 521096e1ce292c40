package model

// TicketRequest is the booking payload sent once at submission time.
// Seat ids and numbers are comma-joined in selection order, matching the
// backend's single-document ticket shape.
type TicketRequest struct {
	Reference     string  `json:"reference"`
	UserId        string  `json:"userId"`
	ShowtimeId    string  `json:"showtimeId"`
	SeatId        string  `json:"seatId"`
	SeatNumber    string  `json:"seatNumber"`
	MovieId       string  `json:"movieId"`
	MovieTitle    string  `json:"movieTitle"`
	MoviePoster   string  `json:"moviePoster"`
	CinemaName    string  `json:"cinemaName"`
	CinemaAddress string  `json:"cinemaAddress"`
	ShowDate      string  `json:"showDate"`
	ShowTime      string  `json:"showTime"`
	Price         float64 `json:"price"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	IsRefundable  bool    `json:"isRefundable"`
	Notes         string  `json:"notes,omitempty"`
}

type Ticket struct {
	Id            string    `json:"id"`
	UserId        string    `json:"userId"`
	ShowtimeId    string    `json:"showtimeId"`
	SeatNumber    string    `json:"seatNumber"`
	MovieTitle    string    `json:"movieTitle"`
	CinemaName    string    `json:"cinemaName"`
	ShowDate      string    `json:"showDate"`
	ShowTime      string    `json:"showTime"`
	Price         float64   `json:"price"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	BookingTime   Timestamp `json:"bookingTime,omitempty"`
}

// Payment methods accepted at checkout.
const (
	PaymentCash    = "cash"
	PaymentVietQR  = "vietqr"
	PaymentMomo    = "momo"
	PaymentZaloPay = "zalopay"
)
