package model

type Seat struct {
	Id         string    `json:"id"`
	ShowtimeId string    `json:"showtimeId"`
	SeatNumber string    `json:"seatNumber"`
	Row        string    `json:"row"`
	Column     int       `json:"column"`
	Booked     bool      `json:"booked"`
	BookedBy   string    `json:"bookedBy,omitempty"`
	BookedAt   Timestamp `json:"bookedAt,omitempty"`
}
