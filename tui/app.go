package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/booking"
	"cinema-booking-cli/model"
	"cinema-booking-cli/service"
	"cinema-booking-cli/session"
	"cinema-booking-cli/store"
)

type appState int

const (
	stateEnterUser appState = iota
	stateLoadingMovies
	stateSelectMovie
	stateLoadingShowtimes
	stateSelectShowtime
	stateLoadingSeats
	stateSelectSeats
	stateSelectCombos
	stateSelectPayment
	stateConfirmOrder
	stateSubmitting
	stateConfirmed
	stateLoadingTickets
	stateShowTickets
	stateError
)

type appModel struct {
	client *service.Client
	sess   *session.Context

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movies      []model.Movie
	showtimes   []model.Showtime
	seats       []model.Seat
	combos      []model.Combo
	comboNotice string

	movie    model.Movie
	showtime model.Showtime
	order    *booking.Session
	ticket   model.Ticket

	movieList    list.Model
	showtimeList list.Model
	comboList    list.Model
	paymentList  list.Model
	ticketList   list.Model

	grid      seatGrid
	cursorRow int
	cursorCol int

	userInput textinput.Model

	spinner spinner.Model

	errorReloadSeats bool
}

type errMsg struct {
	err            error
	returnState    appState
	returnStateSet bool
	reloadSeats    bool
}

type moviesMsg struct {
	movies []model.Movie
	err    error
}

type showtimesMsg struct {
	showtimes []model.Showtime
	err       error
}

type seatsMsg struct {
	seats []model.Seat
	err   error
}

type combosMsg struct {
	combos []model.Combo
	err    error
}

type bookedMsg struct {
	ticket model.Ticket
	err    error
}

type ticketsMsg struct {
	tickets []model.Ticket
	err     error
}

type canceledMsg struct {
	err error
}

func New(client *service.Client, sess *session.Context) tea.Model {
	m := appModel{
		client: client,
		sess:   sess,
		state:  stateLoadingMovies,
	}

	m.movieList = newList("Chọn phim")
	m.showtimeList = newList("Chọn suất chiếu")
	m.comboList = newList("Chọn combo")
	m.comboList.SetFilteringEnabled(false)
	m.paymentList = newList("Phương thức thanh toán")
	m.paymentList.SetFilteringEnabled(false)
	m.ticketList = newList("Vé của tôi")

	input := textinput.New()
	input.Placeholder = "Mã người dùng"
	input.CharLimit = 64
	input.Focus()
	m.userInput = input

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	if !sess.LoggedIn() {
		m.state = stateEnterUser
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.state == stateEnterUser {
		return textinput.Blink
	}
	return tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.state == stateEnterUser {
			return m.handleUserInput(msg)
		}
		if m.handleFilterInput(msg) {
			return m, nil
		}
		var handled bool
		m, cmd, handled := m.handleKey(msg)
		if handled {
			return m, cmd
		}
		// fallthrough to component update
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case errMsg:
		m.err = msg.err
		if msg.returnStateSet {
			m.lastState = msg.returnState
		} else {
			m.lastState = recoverStateFrom(m.state)
		}
		m.errorReloadSeats = msg.reloadSeats
		m.state = stateError
		return m, nil

	case moviesMsg:
		if msg.err != nil {
			return m, errCmd(msg.err)
		}
		if len(msg.movies) == 0 {
			return m, errCmd(errors.New("Hiện chưa có phim nào đang chiếu"))
		}
		m.movies = msg.movies
		m.movieList.SetItems(buildMovieItems(msg.movies))
		m.state = stateSelectMovie
		return m, nil

	case showtimesMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie, false)
		}
		if len(msg.showtimes) == 0 {
			return m, errWithOptionsCmd(
				fmt.Errorf("Phim %s chưa có suất chiếu nào", m.movie.DisplayTitle()),
				stateSelectMovie,
				false,
			)
		}
		m.showtimes = msg.showtimes
		m.showtimeList.Title = fmt.Sprintf("Suất chiếu • %s", m.movie.DisplayTitle())
		m.showtimeList.SetItems(buildShowtimeItems(msg.showtimes))
		m.state = stateSelectShowtime
		return m, nil

	case seatsMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectShowtime, false)
		}
		if len(msg.seats) == 0 {
			return m, errWithOptionsCmd(errors.New("Suất chiếu này chưa mở bán ghế"), stateSelectShowtime, false)
		}
		m.seats = msg.seats
		m.grid = buildSeatGrid(msg.seats)
		m.cursorRow, m.cursorCol = m.grid.firstSelectable()
		if m.state == stateLoadingSeats {
			m.state = stateSelectSeats
		}
		return m, nil

	case combosMsg:
		if msg.err != nil {
			// combos are optional at checkout; booking proceeds without them
			m.combos = nil
			m.comboNotice = "Không thể tải danh sách combo. Vui lòng thử lại."
			if m.order != nil {
				m.order.SetCombos(nil)
			}
			m.refreshComboList()
			return m, nil
		}
		m.combos = msg.combos
		m.comboNotice = ""
		if m.order != nil {
			m.order.SetCombos(msg.combos)
		}
		m.refreshComboList()
		return m, nil

	case bookedMsg:
		if msg.err != nil {
			var conflict *booking.ConflictError
			if errors.As(msg.err, &conflict) {
				return m, errWithOptionsCmd(msg.err, stateLoadingSeats, true)
			}
			return m, errWithOptionsCmd(msg.err, stateConfirmOrder, false)
		}
		m.ticket = msg.ticket
		m.state = stateConfirmed
		return m, nil

	case ticketsMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateSelectMovie, false)
		}
		m.ticketList.SetItems(buildTicketItems(msg.tickets))
		m.state = stateShowTickets
		return m, nil

	case canceledMsg:
		if msg.err != nil {
			return m, errWithOptionsCmd(msg.err, stateShowTickets, false)
		}
		m.state = stateLoadingTickets
		return m, tea.Batch(m.fetchTicketsCmd(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	case stateSelectCombos:
		m.comboList, cmd = m.comboList.Update(msg)
	case stateSelectPayment:
		m.paymentList, cmd = m.paymentList.Update(msg)
	case stateShowTickets:
		m.ticketList, cmd = m.ticketList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateEnterUser:
		return header + "\n\n" + m.userView()
	case stateLoadingMovies, stateLoadingShowtimes, stateLoadingSeats, stateSubmitting, stateLoadingTickets:
		return header + "\n\n" + m.loadingView()
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeList.View()
	case stateSelectSeats:
		return header + "\n\n" + m.renderSeatGrid()
	case stateSelectCombos:
		view := header + "\n\n" + m.comboList.View() + "\n" + m.totalsLine()
		if m.comboNotice != "" {
			view += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.comboNotice)
		}
		return view
	case stateSelectPayment:
		return header + "\n\n" + m.paymentList.View() + "\n" + m.totalsLine()
	case stateConfirmOrder:
		return header + "\n\n" + m.orderSummaryView()
	case stateConfirmed:
		return header + "\n\n" + m.confirmedView()
	case stateShowTickets:
		return header + "\n\n" + m.ticketList.View()
	case stateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Nhấn esc để quay lại hoặc ctrl+c để thoát.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Đặt Vé Xem Phim")
	sub := []string{}
	if m.sess.LoggedIn() {
		sub = append(sub, fmt.Sprintf("Người dùng: %s", m.sess.UserID()))
	}
	if m.movie.Id != "" && m.state != stateSelectMovie {
		sub = append(sub, fmt.Sprintf("Phim: %s", m.movie.DisplayTitle()))
	}
	if m.showtime.Id != "" && m.state != stateSelectMovie && m.state != stateSelectShowtime {
		sub = append(sub, fmt.Sprintf("Suất: %s", showtimeLabel(m.showtime)))
	}
	if m.order != nil && m.order.SeatCount() > 0 && m.state != stateConfirmed {
		sub = append(sub, fmt.Sprintf("Ghế: %s", m.order.SeatNumbers()))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}
	hints := "ctrl+c thoát • esc quay lại • gõ để lọc • ctrl+t vé của tôi"
	switch m.state {
	case stateEnterUser:
		hints = "ctrl+c thoát • enter xác nhận"
	case stateSelectSeats:
		hints = "ctrl+c thoát • esc quay lại • mũi tên di chuyển • space chọn ghế • enter tiếp tục"
	case stateSelectCombos:
		hints = "ctrl+c thoát • esc quay lại • +/- số lượng • enter tiếp tục"
	case stateSelectPayment:
		hints = "ctrl+c thoát • esc quay lại • enter chọn"
	case stateConfirmOrder:
		hints = "ctrl+c thoát • esc quay lại • enter xác nhận đặt vé"
	case stateConfirmed:
		hints = "ctrl+c thoát • enter đặt vé mới"
	case stateShowTickets:
		hints = "ctrl+c thoát • esc quay lại • gõ để lọc • x hủy vé"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Lọc: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) userView() string {
	prompt := "Nhập mã người dùng để đặt vé:"
	return prompt + "\n\n" + m.userInput.View() + "\n\n" + hint("Mã này gắn với vé đã đặt và được lưu cho lần sau.")
}

func (m appModel) handleUserInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		value := strings.TrimSpace(m.userInput.Value())
		if value == "" {
			return m, nil
		}
		if err := m.sess.SetUser(value); err != nil {
			return m, errCmd(err)
		}
		m.state = stateLoadingMovies
		return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.userInput, cmd = m.userInput.Update(msg)
	return m, cmd
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		if listPtr := m.activeList(); listPtr != nil {
			if listPtr.SettingFilter() || listPtr.IsFiltered() {
				listPtr.ResetFilter()
				return m, nil, true
			}
		}
		model, cmd := m.goBack()
		return model, cmd, true
	case "ctrl+t":
		if m.state == stateSelectMovie || m.state == stateSelectShowtime || m.state == stateConfirmed {
			m.state = stateLoadingTickets
			return m, tea.Batch(m.fetchTicketsCmd(), m.spinner.Tick), true
		}
	case "x":
		if m.state == stateShowTickets {
			return m.cancelSelectedTicket()
		}
	case "up", "down", "left", "right":
		if m.state == stateSelectSeats {
			m.moveCursor(msg.String())
			return m, nil, true
		}
	case " ":
		if m.state == stateSelectSeats {
			m.toggleSeatUnderCursor()
			return m, nil, true
		}
	case "+", "=", "-", "_":
		if m.state == stateSelectCombos {
			return m.adjustComboQuantity(msg.String())
		}
	}

	if msg.Type == tea.KeyEnter {
		switch m.state {
		case stateSelectMovie:
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.movie = item.movie
			_ = store.RememberMovie(m.movie)
			m.state = stateLoadingShowtimes
			return m, tea.Batch(m.fetchShowtimesCmd(m.movie.Id), m.spinner.Tick), true
		case stateSelectShowtime:
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			m.showtime = item.showtime
			m.order = booking.NewSession(m.sess.UserID(), m.movie, m.showtime, m.combos)
			m.state = stateLoadingSeats
			return m, tea.Batch(m.fetchSeatsCmd(m.showtime.Id), m.fetchCombosCmd(), m.spinner.Tick), true
		case stateSelectSeats:
			if err := m.order.ConfirmSeats(); err != nil {
				return m, errWithOptionsCmd(err, stateSelectSeats, false), true
			}
			m.refreshComboList()
			m.state = stateSelectCombos
			return m, nil, true
		case stateSelectCombos:
			m.state = stateSelectPayment
			return m, nil, true
		case stateSelectPayment:
			item, ok := m.paymentList.SelectedItem().(paymentItem)
			if !ok {
				return m, nil, true
			}
			if err := m.order.ChoosePayment(item.method); err != nil {
				return m, errWithOptionsCmd(err, stateSelectPayment, false), true
			}
			m.state = stateConfirmOrder
			return m, nil, true
		case stateConfirmOrder:
			m.state = stateSubmitting
			return m, tea.Batch(m.submitCmd(), m.spinner.Tick), true
		case stateConfirmed:
			return m.resetForNewOrder()
		case stateError:
			model, cmd := m.goBack()
			return model, cmd, true
		}
	}
	return m, nil, false
}

func (m appModel) goBack() (tea.Model, tea.Cmd) {
	switch m.state {
	case stateSelectShowtime:
		m.state = stateSelectMovie
	case stateSelectSeats:
		m.order = nil
		m.state = stateSelectShowtime
	case stateSelectCombos:
		m.state = stateSelectSeats
	case stateSelectPayment:
		m.state = stateSelectCombos
	case stateConfirmOrder:
		m.state = stateSelectPayment
	case stateShowTickets:
		if m.movie.Id != "" && len(m.showtimeList.Items()) > 0 {
			m.state = stateSelectShowtime
		} else {
			m.state = stateSelectMovie
		}
	case stateConfirmed:
		return m.goBackFromConfirmed()
	case stateError:
		if m.errorReloadSeats {
			m.errorReloadSeats = false
			m.state = stateLoadingSeats
			return m, tea.Batch(m.fetchSeatsCmd(m.showtime.Id), m.spinner.Tick)
		}
		m.state = m.lastState
		if m.state == stateLoadingSeats {
			return m, tea.Batch(m.fetchSeatsCmd(m.showtime.Id), m.spinner.Tick)
		}
	default:
		return m, nil
	}
	return m, nil
}

func (m appModel) goBackFromConfirmed() (tea.Model, tea.Cmd) {
	model, cmd, _ := m.resetForNewOrder()
	return model, cmd
}

func (m appModel) resetForNewOrder() (tea.Model, tea.Cmd, bool) {
	m.order = nil
	m.movie = model.Movie{}
	m.showtime = model.Showtime{}
	m.seats = nil
	m.grid = seatGrid{}
	m.ticket = model.Ticket{}
	if len(m.movieList.Items()) > 0 {
		m.state = stateSelectMovie
		return m, nil, true
	}
	m.state = stateLoadingMovies
	return m, tea.Batch(m.fetchMoviesCmd(), m.spinner.Tick), true
}

func (m appModel) cancelSelectedTicket() (tea.Model, tea.Cmd, bool) {
	item, ok := m.ticketList.SelectedItem().(ticketItem)
	if !ok {
		return m, nil, true
	}
	if strings.EqualFold(item.ticket.Status, "cancelled") {
		return m, nil, true
	}
	ticketID := item.ticket.Id
	client := m.client
	return m, func() tea.Msg {
		_, err := client.CancelTicket(context.Background(), ticketID)
		return canceledMsg{err: err}
	}, true
}

func (m *appModel) moveCursor(key string) {
	row, col := m.cursorRow, m.cursorCol
	switch key {
	case "up":
		row--
	case "down":
		row++
	case "left":
		col--
	case "right":
		col++
	}
	if r, c, ok := m.grid.nearestSeat(row, col, key); ok {
		m.cursorRow, m.cursorCol = r, c
	}
}

func (m *appModel) toggleSeatUnderCursor() {
	seat, ok := m.grid.seatAt(m.cursorRow, m.cursorCol)
	if !ok || m.order == nil {
		return
	}
	m.order.ToggleSeat(seat)
}

func (m appModel) adjustComboQuantity(key string) (tea.Model, tea.Cmd, bool) {
	item, ok := m.comboList.SelectedItem().(comboItem)
	if !ok || m.order == nil {
		return m, nil, true
	}
	delta := 1
	if key == "-" || key == "_" {
		delta = -1
	}
	m.order.ChangeQuantity(item.combo.Id, delta)
	index := m.comboList.Index()
	m.refreshComboList()
	if count := len(m.comboList.Items()); count > 0 {
		if index >= count {
			index = count - 1
		}
		m.comboList.Select(index)
	}
	return m, nil, true
}

func (m *appModel) refreshComboList() {
	quantities := map[string]int{}
	if m.order != nil {
		quantities = m.order.Quantities()
	}
	m.comboList.SetItems(buildComboItems(m.combos, quantities))
	if len(m.paymentList.Items()) == 0 {
		m.paymentList.SetItems(buildPaymentItems())
	}
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectShowtime:
		return &m.showtimeList
	case stateSelectCombos:
		return &m.comboList
	case stateSelectPayment:
		return &m.paymentList
	case stateShowTickets:
		return &m.ticketList
	default:
		return nil
	}
}

func (m appModel) isLoadingState() bool {
	return m.state == stateLoadingMovies ||
		m.state == stateLoadingShowtimes ||
		m.state == stateLoadingSeats ||
		m.state == stateSubmitting ||
		m.state == stateLoadingTickets
}

func (m appModel) loadingView() string {
	title := "Đang tải"
	switch m.state {
	case stateLoadingMovies:
		title = "Đang tải danh sách phim"
	case stateLoadingShowtimes:
		title = "Đang tải suất chiếu"
	case stateLoadingSeats:
		title = "Đang tải sơ đồ ghế"
	case stateSubmitting:
		title = "Đang đặt vé"
	case stateLoadingTickets:
		title = "Đang tải vé của bạn"
	}

	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Vui lòng chờ..."))
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 6
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
	m.comboList.SetSize(m.width, h)
	m.paymentList.SetSize(m.width, h)
	m.ticketList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = foldedFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return errMsg{
			err:            err,
			returnState:    0,
			returnStateSet: false,
			reloadSeats:    false,
		}
	}
}

func errWithOptionsCmd(err error, returnState appState, reloadSeats bool) tea.Cmd {
	return func() tea.Msg {
		return errMsg{
			err:            err,
			returnState:    returnState,
			returnStateSet: true,
			reloadSeats:    reloadSeats,
		}
	}
}

func recoverStateFrom(state appState) appState {
	switch state {
	case stateLoadingMovies:
		return stateSelectMovie
	case stateLoadingShowtimes:
		return stateSelectMovie
	case stateLoadingSeats:
		return stateSelectShowtime
	case stateSubmitting:
		return stateConfirmOrder
	case stateLoadingTickets:
		return stateSelectMovie
	default:
		return state
	}
}

func (m appModel) fetchMoviesCmd() tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadMovieCache(); err == nil && fresh && len(cached) > 0 {
			return moviesMsg{movies: cached}
		}
		ctx := context.Background()
		movies, err := m.client.GetMovies(ctx)
		if err == nil && len(movies) > 0 {
			_ = store.SaveMovieCache(movies)
		}
		return moviesMsg{movies: movies, err: err}
	}
}

func (m appModel) fetchShowtimesCmd(movieID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		showtimes, err := m.client.GetShowtimesByMovie(ctx, movieID)
		if err != nil {
			if service.IsNotFound(err) {
				return showtimesMsg{showtimes: nil, err: nil}
			}
			return showtimesMsg{err: err}
		}
		return showtimesMsg{showtimes: showtimes}
	}
}

func (m appModel) fetchSeatsCmd(showtimeID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		seats, err := m.client.GetSeatsByShowtime(ctx, showtimeID)
		return seatsMsg{seats: seats, err: err}
	}
}

func (m appModel) fetchCombosCmd() tea.Cmd {
	return func() tea.Msg {
		if cached, fresh, err := store.LoadComboCache(); err == nil && fresh && len(cached) > 0 {
			return combosMsg{combos: cached}
		}
		ctx := context.Background()
		combos, err := m.client.GetActiveCombos(ctx)
		if err == nil && len(combos) > 0 {
			_ = store.SaveComboCache(combos)
		}
		return combosMsg{combos: combos, err: err}
	}
}

func (m appModel) fetchTicketsCmd() tea.Cmd {
	userID := m.sess.UserID()
	return func() tea.Msg {
		ctx := context.Background()
		tickets, err := m.client.GetTicketsByUser(ctx, userID)
		if err != nil {
			if service.IsNotFound(err) {
				return ticketsMsg{tickets: nil, err: nil}
			}
			return ticketsMsg{err: err}
		}
		return ticketsMsg{tickets: tickets}
	}
}

func (m appModel) submitCmd() tea.Cmd {
	order := m.order
	client := m.client
	return func() tea.Msg {
		ticket, err := order.Submit(context.Background(), client)
		return bookedMsg{ticket: ticket, err: err}
	}
}
