package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema-booking-cli/model"
)

func testShowtime() model.Showtime {
	start, _ := time.Parse(time.RFC3339, "2026-09-05T19:30:00+07:00")
	return model.Showtime{
		Id:         "st-1",
		MovieId:    "mv-1",
		StartTime:  model.Timestamp{Time: start},
		Room:       "P3",
		CinemaName: "CGV Landmark",
		Price:      100000,
	}
}

func testCombos() []model.Combo {
	return []model.Combo{
		{Id: "cb-1", Name: "Combo Bắp Nước", Price: 45000, IsActive: true},
		{Id: "cb-2", Name: "Combo Gia Đình", Price: 120000, IsActive: true},
	}
}

func testSession() *Session {
	movie := model.Movie{Id: "mv-1", Title: "Mắt Biếc"}
	return NewSession("user-1", movie, testShowtime(), testCombos())
}

func TestToggleSeat_AddAndRemove(t *testing.T) {
	s := testSession()
	seat := model.Seat{Id: "seat-1", SeatNumber: "A1"}

	require.True(t, s.ToggleSeat(seat))
	assert.True(t, s.SeatSelected("seat-1"))
	assert.Equal(t, 1, s.SeatCount())

	require.True(t, s.ToggleSeat(seat))
	assert.False(t, s.SeatSelected("seat-1"))
	assert.Equal(t, 0, s.SeatCount())
}

func TestToggleSeat_BookedSeatIsInert(t *testing.T) {
	s := testSession()
	booked := model.Seat{Id: "seat-1", SeatNumber: "A1", Booked: true}
	free := model.Seat{Id: "seat-2", SeatNumber: "A2"}

	assert.False(t, s.ToggleSeat(booked))
	assert.Equal(t, 0, s.SeatCount())

	require.True(t, s.ToggleSeat(free))
	assert.Equal(t, "A2", s.SeatNumbers())
}

func TestSeatNumbers_SelectionOrder(t *testing.T) {
	s := testSession()
	s.ToggleSeat(model.Seat{Id: "seat-5", SeatNumber: "B5"})
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})

	assert.Equal(t, "B5, A1", s.SeatNumbers())
}

func TestChangeQuantity_ClampsAtZero(t *testing.T) {
	s := testSession()

	s.ChangeQuantity("cb-1", -1)
	assert.Equal(t, 0, s.Quantity("cb-1"))
	assert.Empty(t, s.Quantities())

	s.ChangeQuantity("cb-1", 2)
	s.ChangeQuantity("cb-1", -5)
	assert.Equal(t, 0, s.Quantity("cb-1"))
	assert.Empty(t, s.Quantities(), "zero quantities must not be stored")
}

func TestSetCombos_DropsUnknownQuantities(t *testing.T) {
	s := testSession()
	s.ChangeQuantity("cb-1", 1)
	s.ChangeQuantity("cb-2", 2)

	s.SetCombos([]model.Combo{{Id: "cb-2", Name: "Combo Gia Đình", Price: 120000}})

	assert.Equal(t, 0, s.Quantity("cb-1"))
	assert.Equal(t, 2, s.Quantity("cb-2"))
}

func TestTotal_SeatsAndCombos(t *testing.T) {
	s := testSession()
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	s.ToggleSeat(model.Seat{Id: "seat-2", SeatNumber: "A2"})
	s.ChangeQuantity("cb-1", 2)

	assert.InDelta(t, 200000, s.TicketTotal(), 0.001)
	assert.InDelta(t, 90000, s.ComboTotal(), 0.001)
	assert.InDelta(t, 290000, s.Total(), 0.001)
}

func TestComboTotal_IgnoresUnknownIDs(t *testing.T) {
	total := ComboTotal(map[string]int{"cb-1": 1, "ghost": 9}, testCombos())
	assert.InDelta(t, 45000, total, 0.001)
}

func TestOrderTotal_Pure(t *testing.T) {
	total := OrderTotal(2, 100000, map[string]int{"cb-1": 2}, testCombos())
	assert.InDelta(t, 290000, total, 0.001)
}

func TestConfirmSeats_RequiresSelection(t *testing.T) {
	s := testSession()

	err := s.ConfirmSeats()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "seats", verr.Field)
	assert.Equal(t, "Vui lòng chọn ít nhất một ghế", verr.Message)
	assert.Equal(t, StateBrowsing, s.State())

	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	require.NoError(t, s.ConfirmSeats())
	assert.Equal(t, StateSeatsSelected, s.State())
}

func TestChoosePayment_ValidatesMethod(t *testing.T) {
	s := testSession()
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})

	err := s.ChoosePayment("bitcoin")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "paymentMethod", verr.Field)

	require.NoError(t, s.ChoosePayment(model.PaymentMomo))
	assert.Equal(t, StatePaymentChosen, s.State())
	assert.Equal(t, model.PaymentMomo, s.PaymentMethod())
}

func TestCancel_ResetsSelections(t *testing.T) {
	s := testSession()
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	s.ChangeQuantity("cb-1", 2)
	require.NoError(t, s.ChoosePayment(model.PaymentCash))

	s.Cancel()

	assert.Equal(t, StateBrowsing, s.State())
	assert.Equal(t, 0, s.SeatCount())
	assert.Empty(t, s.Quantities())
	assert.Empty(t, s.PaymentMethod())
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	s := NewSession("", model.Movie{}, model.Showtime{}, nil)

	cases := []struct {
		name    string
		prepare func()
		field   string
		message string
	}{
		{
			name:    "missing user",
			prepare: func() {},
			field:   "userId",
			message: "Vui lòng đăng nhập để đặt vé",
		},
		{
			name:    "missing showtime",
			prepare: func() { s.UserID = "user-1" },
			field:   "showtimeId",
			message: "Thông tin suất chiếu không hợp lệ",
		},
		{
			name:    "missing movie",
			prepare: func() { s.Showtime = testShowtime() },
			field:   "movieId",
			message: "Thông tin phim không hợp lệ",
		},
		{
			name:    "missing seats",
			prepare: func() { s.Movie = model.Movie{Id: "mv-1"} },
			field:   "seats",
			message: "Vui lòng chọn ít nhất một ghế",
		},
		{
			name:    "missing payment",
			prepare: func() { s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"}) },
			field:   "paymentMethod",
			message: "Vui lòng chọn phương thức thanh toán",
		},
	}

	for _, tc := range cases {
		tc.prepare()
		err := s.Validate()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, tc.name)
		assert.Equal(t, tc.field, verr.Field, tc.name)
		assert.Equal(t, tc.message, verr.Message, tc.name)
	}

	require.NoError(t, s.ChoosePayment(model.PaymentCash))
	assert.NoError(t, s.Validate())
}

func TestBuildTicket_SnapshotAndPaymentStatus(t *testing.T) {
	s := testSession()
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	s.ToggleSeat(model.Seat{Id: "seat-2", SeatNumber: "A2"})
	s.ChangeQuantity("cb-1", 2)
	require.NoError(t, s.ChoosePayment(model.PaymentCash))

	ticket := s.BuildTicket()

	assert.NotEmpty(t, ticket.Reference)
	assert.Equal(t, "user-1", ticket.UserId)
	assert.Equal(t, "st-1", ticket.ShowtimeId)
	assert.Equal(t, "seat-1, seat-2", ticket.SeatId)
	assert.Equal(t, "A1, A2", ticket.SeatNumber)
	assert.Equal(t, "Mắt Biếc", ticket.MovieTitle)
	assert.Equal(t, "CGV Landmark", ticket.CinemaName)
	assert.Equal(t, "2026-09-05", ticket.ShowDate)
	assert.InDelta(t, 290000, ticket.Price, 0.001)
	assert.Equal(t, "pending", ticket.Status)
	assert.Equal(t, model.PaymentCash, ticket.PaymentMethod)
	assert.Equal(t, "pending", ticket.PaymentStatus, "cash is paid at the counter")
	assert.True(t, ticket.IsRefundable)
	assert.Equal(t, "Combo: Combo Bắp Nước x2", ticket.Notes)

	another := testSession()
	another.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	require.NoError(t, another.ChoosePayment(model.PaymentMomo))
	paid := another.BuildTicket()
	assert.Equal(t, "paid", paid.PaymentStatus)
	assert.Equal(t, "Không có combo", paid.Notes)
	assert.NotEqual(t, ticket.Reference, paid.Reference)
}

func TestBuildTicket_CinemaNameFallback(t *testing.T) {
	showtime := testShowtime()
	showtime.CinemaName = ""
	s := NewSession("user-1", model.Movie{Id: "mv-1", Title: "Mắt Biếc"}, showtime, nil)
	s.ToggleSeat(model.Seat{Id: "seat-1", SeatNumber: "A1"})
	require.NoError(t, s.ChoosePayment(model.PaymentCash))

	assert.Equal(t, "Rạp chiếu phim", s.BuildTicket().CinemaName)
}
