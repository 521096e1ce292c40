package tui

import (
	"testing"

	"cinema-booking-cli/model"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "0đ"},
		{45000, "45.000đ"},
		{100000, "100.000đ"},
		{290000, "290.000đ"},
		{1250000, "1.250.000đ"},
		{-5000, "-5.000đ"},
	}
	for _, tc := range cases {
		if got := formatVND(tc.amount); got != tc.want {
			t.Fatalf("formatVND(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestSeatRowOf(t *testing.T) {
	cases := []struct {
		seat model.Seat
		want string
	}{
		{model.Seat{Row: "A"}, "A"},
		{model.Seat{SeatNumber: "B12"}, "B"},
		{model.Seat{SeatNumber: "AB3"}, "AB"},
		{model.Seat{SeatNumber: "12"}, "?"},
	}
	for _, tc := range cases {
		if got := seatRowOf(tc.seat); got != tc.want {
			t.Fatalf("seatRowOf(%+v) = %q, want %q", tc.seat, got, tc.want)
		}
	}
}

func TestBuildSeatGrid(t *testing.T) {
	seats := []model.Seat{
		{Id: "s1", SeatNumber: "A1", Row: "A", Column: 1},
		{Id: "s2", SeatNumber: "A3", Row: "A", Column: 3},
		{Id: "s3", SeatNumber: "B2", Row: "B", Column: 2, Booked: true},
	}
	grid := buildSeatGrid(seats)

	if len(grid.rowLabels) != 2 || grid.rowLabels[0] != "A" || grid.rowLabels[1] != "B" {
		t.Fatalf("unexpected row labels: %+v", grid.rowLabels)
	}
	if grid.cols != 3 {
		t.Fatalf("expected 3 columns, got %d", grid.cols)
	}

	seat, ok := grid.seatAt(0, 0)
	if !ok || seat.Id != "s1" {
		t.Fatalf("expected s1 at (0,0), got %+v ok=%v", seat, ok)
	}
	if _, ok := grid.seatAt(0, 1); ok {
		t.Fatal("expected gap at (0,1)")
	}
	seat, ok = grid.seatAt(1, 1)
	if !ok || !seat.Booked {
		t.Fatalf("expected booked seat at (1,1), got %+v ok=%v", seat, ok)
	}
}

func TestSeatGrid_NearestSeatSkipsGaps(t *testing.T) {
	seats := []model.Seat{
		{Id: "s1", SeatNumber: "A1", Row: "A", Column: 1},
		{Id: "s2", SeatNumber: "A4", Row: "A", Column: 4},
	}
	grid := buildSeatGrid(seats)

	r, c, ok := grid.nearestSeat(0, 1, "right")
	if !ok || r != 0 || c != 3 {
		t.Fatalf("expected cursor to land on (0,3), got (%d,%d) ok=%v", r, c, ok)
	}

	if _, _, ok := grid.nearestSeat(0, 4, "right"); ok {
		t.Fatal("expected no seat past the last column")
	}
}

func TestBuildComboInput_Validation(t *testing.T) {
	cases := []struct {
		name                              string
		inName, desc, price, image, items string
		wantErr                           string
	}{
		{"missing name", "", "Mô tả", "45000", "http://img", "Bắp", "Tên combo là bắt buộc"},
		{"missing description", "Combo", "", "45000", "http://img", "Bắp", "Mô tả combo là bắt buộc"},
		{"bad price", "Combo", "Mô tả", "abc", "http://img", "Bắp", "Giá combo phải là số dương"},
		{"zero price", "Combo", "Mô tả", "0", "http://img", "Bắp", "Giá combo phải là số dương"},
		{"missing image", "Combo", "Mô tả", "45000", "", "Bắp", "URL hình ảnh là bắt buộc"},
		{"missing items", "Combo", "Mô tả", "45000", "http://img", " , ", "Phải có ít nhất một món trong combo"},
	}
	for _, tc := range cases {
		_, err := buildComboInput(tc.inName, tc.desc, tc.price, tc.image, tc.items, true)
		if err == nil || err.Error() != tc.wantErr {
			t.Fatalf("%s: expected %q, got %v", tc.name, tc.wantErr, err)
		}
	}

	input, err := buildComboInput(" Combo Bắp Nước ", "Bắp rang bơ", "45000", "http://img", "Bắp lớn, Nước ngọt", true)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if input.Name != "Combo Bắp Nước" || input.Price != 45000 {
		t.Fatalf("unexpected input: %+v", input)
	}
	if len(input.Items) != 2 || input.Items[0] != "Bắp lớn" || input.Items[1] != "Nước ngọt" {
		t.Fatalf("unexpected items: %+v", input.Items)
	}
	if !input.IsActive {
		t.Fatal("expected active combo")
	}
}
