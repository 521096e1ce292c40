package model

type Showtime struct {
	Id            string    `json:"id"`
	MovieId       string    `json:"movieId"`
	StartTime     Timestamp `json:"startTime"`
	Room          string    `json:"room"`
	CinemaName    string    `json:"cinemaName"`
	CinemaAddress string    `json:"cinemaAddress"`
	Price         float64   `json:"price"`
}

// TicketPrice is the per-seat price, falling back to the standard fare
// when the showtime record carries none.
func (s Showtime) TicketPrice() float64 {
	if s.Price > 0 {
		return s.Price
	}
	return DefaultSeatPrice
}

// DefaultSeatPrice is the standard VND fare used when a showtime has no
// price of its own.
const DefaultSeatPrice = 100000
