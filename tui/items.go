package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/model"
	"cinema-booking-cli/search"
	"cinema-booking-cli/store"
)

func foldedFilter(term string, targets []string) []list.Rank {
	folded := make([]string, len(targets))
	for i, t := range targets {
		folded[i] = search.Fold(t)
	}
	return list.DefaultFilter(search.Fold(term), folded)
}

type movieItem struct {
	movie  model.Movie
	recent bool
}

func (m movieItem) Title() string {
	return m.movie.DisplayTitle()
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.recent {
		parts = append(parts, "Xem gần đây")
	}
	if m.movie.Genre != "" {
		parts = append(parts, m.movie.Genre)
	}
	if m.movie.Duration > 0 {
		parts = append(parts, fmt.Sprintf("%d phút", m.movie.Duration))
	}
	if m.movie.AgeRating != "" {
		parts = append(parts, m.movie.AgeRating)
	}
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return search.Fold(strings.Join([]string{m.movie.DisplayTitle(), m.movie.Genre, m.movie.Description}, " "))
}

func buildMovieItems(movies []model.Movie) []list.Item {
	recents, _ := store.LoadRecentMovies()
	byID := map[string]model.Movie{}
	byTitle := map[string]model.Movie{}
	for _, movie := range movies {
		byID[movie.Id] = movie
		byTitle[strings.ToLower(movie.DisplayTitle())] = movie
	}

	var items []list.Item
	used := map[string]bool{}
	for _, recent := range recents {
		if recent.ID != "" {
			if movie, ok := byID[recent.ID]; ok {
				items = append(items, movieItem{movie: movie, recent: true})
				used[movie.Id] = true
				continue
			}
		}
		if recent.Title != "" {
			if movie, ok := byTitle[strings.ToLower(recent.Title)]; ok && !used[movie.Id] {
				items = append(items, movieItem{movie: movie, recent: true})
				used[movie.Id] = true
			}
		}
	}

	remaining := make([]model.Movie, 0, len(movies))
	for _, movie := range movies {
		if !used[movie.Id] {
			remaining = append(remaining, movie)
		}
	}
	sort.Slice(remaining, func(i, j int) bool {
		return search.Fold(remaining[i].DisplayTitle()) < search.Fold(remaining[j].DisplayTitle())
	})
	for _, movie := range remaining {
		items = append(items, movieItem{movie: movie})
	}
	return items
}

type showtimeItem struct {
	showtime model.Showtime
}

func (s showtimeItem) Title() string {
	return showtimeLabel(s.showtime)
}

func (s showtimeItem) Description() string {
	parts := []string{}
	if s.showtime.CinemaName != "" {
		parts = append(parts, s.showtime.CinemaName)
	}
	parts = append(parts, fmt.Sprintf("%s/vé", formatVND(s.showtime.TicketPrice())))
	return strings.Join(parts, " • ")
}

func (s showtimeItem) FilterValue() string {
	return search.Fold(strings.Join([]string{s.showtime.Room, s.showtime.CinemaName}, " "))
}

func showtimeLabel(showtime model.Showtime) string {
	timeLabel := "??:??"
	if !showtime.StartTime.IsZero() {
		timeLabel = showtime.StartTime.Format("02/01 15:04")
	}
	room := strings.TrimSpace(showtime.Room)
	if room == "" {
		return timeLabel
	}
	return fmt.Sprintf("%s • %s", timeLabel, room)
}

func buildShowtimeItems(showtimes []model.Showtime) []list.Item {
	sorted := append([]model.Showtime{}, showtimes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime.Time)
	})
	items := make([]list.Item, 0, len(sorted))
	for _, showtime := range sorted {
		items = append(items, showtimeItem{showtime: showtime})
	}
	return items
}

type comboItem struct {
	combo    model.Combo
	quantity int
}

func (c comboItem) Title() string {
	if c.quantity > 0 {
		return fmt.Sprintf("%s ×%d", c.combo.Name, c.quantity)
	}
	return c.combo.Name
}

func (c comboItem) Description() string {
	parts := []string{formatVND(c.combo.Price)}
	if len(c.combo.Items) > 0 {
		parts = append(parts, strings.Join(c.combo.Items, ", "))
	} else if c.combo.Description != "" {
		parts = append(parts, c.combo.Description)
	}
	return strings.Join(parts, " • ")
}

func (c comboItem) FilterValue() string {
	return search.Fold(c.combo.Name + " " + c.combo.Description)
}

func buildComboItems(combos []model.Combo, quantities map[string]int) []list.Item {
	items := make([]list.Item, 0, len(combos))
	for _, combo := range combos {
		items = append(items, comboItem{combo: combo, quantity: quantities[combo.Id]})
	}
	return items
}

type paymentItem struct {
	method string
	label  string
	detail string
}

func (p paymentItem) Title() string       { return p.label }
func (p paymentItem) Description() string { return p.detail }
func (p paymentItem) FilterValue() string { return search.Fold(p.label) }

func buildPaymentItems() []list.Item {
	return []list.Item{
		paymentItem{method: model.PaymentCash, label: "Tiền mặt", detail: "Thanh toán tại quầy khi nhận vé"},
		paymentItem{method: model.PaymentVietQR, label: "VietQR", detail: "Quét mã QR qua ứng dụng ngân hàng"},
		paymentItem{method: model.PaymentMomo, label: "Ví MoMo", detail: "Thanh toán qua ví điện tử MoMo"},
		paymentItem{method: model.PaymentZaloPay, label: "Ví ZaloPay", detail: "Thanh toán qua ví điện tử ZaloPay"},
	}
}

type ticketItem struct {
	ticket model.Ticket
}

func (t ticketItem) Title() string {
	if t.ticket.SeatNumber != "" {
		return fmt.Sprintf("%s • Ghế %s", t.ticket.MovieTitle, t.ticket.SeatNumber)
	}
	return t.ticket.MovieTitle
}

func (t ticketItem) Description() string {
	parts := []string{}
	if t.ticket.ShowDate != "" {
		parts = append(parts, t.ticket.ShowDate)
	}
	parts = append(parts, statusLabel(t.ticket.Status))
	if t.ticket.Price > 0 {
		parts = append(parts, formatVND(t.ticket.Price))
	}
	return strings.Join(parts, " • ")
}

func (t ticketItem) FilterValue() string {
	return search.Fold(strings.Join([]string{t.ticket.MovieTitle, t.ticket.CinemaName, t.ticket.Status}, " "))
}

func buildTicketItems(tickets []model.Ticket) []list.Item {
	items := make([]list.Item, 0, len(tickets))
	for _, ticket := range tickets {
		items = append(items, ticketItem{ticket: ticket})
	}
	return items
}

func statusLabel(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pending":
		return "Chờ xác nhận"
	case "confirmed":
		return "Đã xác nhận"
	case "cancelled", "canceled":
		return "Đã hủy"
	case "used":
		return "Đã sử dụng"
	default:
		return status
	}
}

func paymentLabel(method string) string {
	switch method {
	case model.PaymentCash:
		return "Tiền mặt"
	case model.PaymentVietQR:
		return "VietQR"
	case model.PaymentMomo:
		return "Ví MoMo"
	case model.PaymentZaloPay:
		return "Ví ZaloPay"
	default:
		return method
	}
}

// formatVND renders an amount the Vietnamese way: dots for thousands and
// a trailing đ, e.g. 290000 -> "290.000đ".
func formatVND(amount float64) string {
	value := int64(math.Round(amount))
	negative := value < 0
	if negative {
		value = -value
	}
	digits := fmt.Sprintf("%d", value)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if negative {
		return "-" + b.String() + "đ"
	}
	return b.String() + "đ"
}

type seatGrid struct {
	rowLabels []string
	cells     [][]*model.Seat
	cols      int
}

func buildSeatGrid(seats []model.Seat) seatGrid {
	labels := []string{}
	seen := map[string]bool{}
	cols := 0
	for _, seat := range seats {
		row := seatRowOf(seat)
		if !seen[row] {
			seen[row] = true
			labels = append(labels, row)
		}
		if seat.Column > cols {
			cols = seat.Column
		}
	}
	sort.Strings(labels)

	rowIndex := map[string]int{}
	for i, label := range labels {
		rowIndex[label] = i
	}

	cells := make([][]*model.Seat, len(labels))
	for i := range cells {
		cells[i] = make([]*model.Seat, cols)
	}
	for i := range seats {
		seat := seats[i]
		r := rowIndex[seatRowOf(seat)]
		c := seat.Column - 1
		if c < 0 || c >= cols {
			continue
		}
		cells[r][c] = &seats[i]
	}
	return seatGrid{rowLabels: labels, cells: cells, cols: cols}
}

// seatRowOf resolves the row label, deriving it from the seat number
// ("A12" -> "A") when the row field is empty.
func seatRowOf(seat model.Seat) string {
	if row := strings.TrimSpace(seat.Row); row != "" {
		return row
	}
	number := strings.TrimSpace(seat.SeatNumber)
	for i, r := range number {
		if r >= '0' && r <= '9' {
			if i > 0 {
				return number[:i]
			}
			break
		}
	}
	return "?"
}

func (g seatGrid) seatAt(row int, col int) (model.Seat, bool) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.cols {
		return model.Seat{}, false
	}
	if g.cells[row][col] == nil {
		return model.Seat{}, false
	}
	return *g.cells[row][col], true
}

func (g seatGrid) firstSelectable() (int, int) {
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != nil {
				return r, c
			}
		}
	}
	return 0, 0
}

// nearestSeat finds the next occupied cell from (row, col) continuing in
// the movement direction, so the cursor skips gaps in the floor plan.
func (g seatGrid) nearestSeat(row int, col int, direction string) (int, int, bool) {
	for row >= 0 && row < len(g.cells) && col >= 0 && col < g.cols {
		if g.cells[row][col] != nil {
			return row, col, true
		}
		switch direction {
		case "up":
			row--
		case "down":
			row++
		case "left":
			col--
		case "right":
			col++
		default:
			return 0, 0, false
		}
	}
	return 0, 0, false
}

func (m appModel) renderSeatGrid() string {
	if len(m.grid.rowLabels) == 0 || m.grid.cols == 0 {
		return "Không có dữ liệu ghế."
	}

	styleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleCursor := lipgloss.NewStyle().Reverse(true)

	rowWidth := 2
	for _, label := range m.grid.rowLabels {
		if len(label) > rowWidth {
			rowWidth = len(label)
		}
	}
	cellWidth := 2

	gridWidth := m.grid.cols*(cellWidth+1) - 1
	screenBar := screenBarBlock(gridWidth, "MÀN HÌNH")
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	for r, label := range m.grid.rowLabels {
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for c := 0; c < m.grid.cols; c++ {
			seat := m.grid.cells[r][c]
			text := strings.Repeat(" ", cellWidth)
			if seat != nil {
				switch {
				case seat.Booked:
					text = styleBooked.Render("XX")
				case m.order != nil && m.order.SeatSelected(seat.Id):
					text = styleSelected.Render("()")
				default:
					text = styleAvailable.Render("[]")
				}
			}
			if r == m.cursorRow && c == m.cursorCol {
				plain := "  "
				if seat != nil {
					switch {
					case seat.Booked:
						plain = "XX"
					case m.order != nil && m.order.SeatSelected(seat.Id):
						plain = "()"
					default:
						plain = "[]"
					}
				}
				text = styleCursor.Render(plain)
			}
			b.WriteString(text)
			if c < m.grid.cols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}

	legend := "Chú thích: [] trống • () đang chọn • XX đã đặt"
	counts := ""
	if m.order != nil {
		counts = fmt.Sprintf("Ghế đã chọn: %d • Tiền vé: %s", m.order.SeatCount(), formatVND(m.order.TicketTotal()))
	}
	return b.String() + "\n" + hint(legend) + "\n" + hint(counts)
}

func (m appModel) totalsLine() string {
	if m.order == nil {
		return ""
	}
	return hint(fmt.Sprintf(
		"Tiền vé: %s • Combo: %s • Tổng cộng: %s",
		formatVND(m.order.TicketTotal()),
		formatVND(m.order.ComboTotal()),
		formatVND(m.order.Total()),
	))
}

func (m appModel) orderSummaryView() string {
	if m.order == nil {
		return ""
	}
	label := lipgloss.NewStyle().Faint(true)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render("Xác nhận đặt vé"),
		"",
		label.Render("Phim: ") + m.movie.DisplayTitle(),
		label.Render("Suất chiếu: ") + showtimeLabel(m.showtime),
	}
	if m.showtime.CinemaName != "" {
		lines = append(lines, label.Render("Rạp: ")+m.showtime.CinemaName)
	}
	lines = append(lines, label.Render("Ghế: ")+m.order.SeatNumbers())
	for _, combo := range m.order.Combos() {
		if qty := m.order.Quantity(combo.Id); qty > 0 {
			lines = append(lines, label.Render("Combo: ")+fmt.Sprintf("%s ×%d (%s)", combo.Name, qty, formatVND(combo.Price*float64(qty))))
		}
	}
	lines = append(lines,
		label.Render("Thanh toán: ")+paymentLabel(m.order.PaymentMethod()),
		"",
		fmt.Sprintf("Tiền vé: %s", formatVND(m.order.TicketTotal())),
		fmt.Sprintf("Tiền combo: %s", formatVND(m.order.ComboTotal())),
		lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Tổng cộng: %s", formatVND(m.order.Total()))),
		"",
		hint("Nhấn ENTER để xác nhận, ESC để quay lại."),
	)

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63"))
	return panel.Render(strings.Join(lines, "\n"))
}

func (m appModel) confirmedView() string {
	label := lipgloss.NewStyle().Faint(true)
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("2")).
		Padding(0, 2).
		Render("Đặt vé thành công!")

	lines := []string{title, ""}
	if m.ticket.Id != "" {
		lines = append(lines, label.Render("Mã vé: ")+m.ticket.Id)
	}
	lines = append(lines,
		label.Render("Phim: ")+m.movie.DisplayTitle(),
		label.Render("Suất chiếu: ")+showtimeLabel(m.showtime),
	)
	if m.order != nil {
		lines = append(lines,
			label.Render("Ghế: ")+m.order.SeatNumbers(),
			label.Render("Thanh toán: ")+paymentLabel(m.order.PaymentMethod()),
			lipgloss.NewStyle().Bold(true).Render("Tổng cộng: "+formatVND(m.order.Total())),
		)
	}
	lines = append(lines, "", hint("Nhấn ENTER để đặt vé mới, CTRL+T để xem vé của bạn."))

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("2"))
	return panel.Render(strings.Join(lines, "\n"))
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	labelWidth := len([]rune(label))
	if width < labelWidth+4 {
		width = labelWidth + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - (labelWidth + 2) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
