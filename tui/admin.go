package tui

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"cinema-booking-cli/model"
	"cinema-booking-cli/search"
	"cinema-booking-cli/service"
	"cinema-booking-cli/session"
)

type adminState int

const (
	adminStateLogin adminState = iota
	adminStateLoggingIn
	adminStateLoadingCombos
	adminStateList
	adminStateDetails
	adminStateForm
	adminStateConfirmDelete
	adminStateSaving
	adminStateError
)

const (
	fieldName = iota
	fieldDescription
	fieldPrice
	fieldImageUrl
	fieldItems
	fieldCount
)

type adminModel struct {
	client *service.Client
	sess   *session.Context

	state     adminState
	lastState adminState
	err       error

	width  int
	height int

	combos []model.Combo
	combo  model.Combo

	filterTerm   string
	activeFilter search.ActiveFilter

	comboList list.Model

	username textinput.Model
	password textinput.Model
	loginRow int

	fields     [fieldCount]textinput.Model
	fieldFocus int
	formActive bool
	editing    bool
	formErr    error

	spinner spinner.Model
}

type adminLoginMsg struct {
	err error
}

type adminCombosMsg struct {
	combos []model.Combo
	err    error
}

type comboSavedMsg struct {
	err error
}

type comboDeletedMsg struct {
	err error
}

func NewAdmin(client *service.Client, sess *session.Context) tea.Model {
	m := adminModel{
		client: client,
		sess:   sess,
		state:  adminStateLogin,
	}

	m.comboList = newList("Quản lý combo")
	m.comboList.SetFilteringEnabled(false)

	username := textinput.New()
	username.Placeholder = "Tên đăng nhập"
	username.CharLimit = 64
	username.Focus()
	m.username = username

	password := textinput.New()
	password.Placeholder = "Mật khẩu"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	m.password = password

	labels := [fieldCount]string{"Tên combo", "Mô tả", "Giá (VND)", "URL hình ảnh", "Các món (phân cách bằng dấu phẩy)"}
	for i := range m.fields {
		field := textinput.New()
		field.Placeholder = labels[i]
		field.CharLimit = 256
		m.fields[i] = field
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	if _, ok := sess.Admin(); ok {
		sess.Attach(client)
		m.state = adminStateLoadingCombos
	}
	return m
}

func (m adminModel) Init() tea.Cmd {
	if m.state == adminStateLoadingCombos {
		return tea.Batch(m.fetchCombosCmd(), m.spinner.Tick)
	}
	return textinput.Blink
}

func (m adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.width > 0 && m.height > 0 {
			h := m.height - 6
			if h < 6 {
				h = 6
			}
			m.comboList.SetSize(m.width, h)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case adminStateLogin:
			return m.handleLoginKey(msg)
		case adminStateForm:
			return m.handleFormKey(msg)
		case adminStateConfirmDelete:
			return m.handleDeleteKey(msg)
		default:
			next, cmd, handled := m.handleKey(msg)
			if handled {
				return next, cmd
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.isLoadingState() {
			return m, cmd
		}
		return m, nil

	case adminLoginMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastState = adminStateLogin
			m.state = adminStateError
			return m, nil
		}
		m.state = adminStateLoadingCombos
		return m, tea.Batch(m.fetchCombosCmd(), m.spinner.Tick)

	case adminCombosMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastState = adminStateList
			m.state = adminStateError
			return m, nil
		}
		m.combos = msg.combos
		m.refreshComboItems()
		m.state = adminStateList
		return m, nil

	case comboSavedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastState = adminStateForm
			m.state = adminStateError
			return m, nil
		}
		m.state = adminStateLoadingCombos
		return m, tea.Batch(m.fetchCombosCmd(), m.spinner.Tick)

	case comboDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.lastState = adminStateList
			m.state = adminStateError
			return m, nil
		}
		m.state = adminStateLoadingCombos
		return m, tea.Batch(m.fetchCombosCmd(), m.spinner.Tick)
	}

	if m.state == adminStateList {
		var cmd tea.Cmd
		m.comboList, cmd = m.comboList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m adminModel) View() string {
	header := m.adminHeaderView()
	switch m.state {
	case adminStateLogin:
		return header + "\n\n" + m.loginView()
	case adminStateLoggingIn, adminStateLoadingCombos, adminStateSaving:
		return header + "\n\n" + m.adminLoadingView()
	case adminStateList:
		return header + "\n\n" + m.comboList.View()
	case adminStateDetails:
		return header + "\n\n" + m.detailsView()
	case adminStateForm:
		return header + "\n\n" + m.formView()
	case adminStateConfirmDelete:
		return header + "\n\n" + m.confirmDeleteView()
	case adminStateError:
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error()) + "\n\n" + hint("Nhấn esc để quay lại hoặc ctrl+c để thoát.")
	default:
		return header
	}
}

func (m adminModel) adminHeaderView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Quản Trị Rạp Phim")
	sub := []string{}
	if admin, ok := m.sess.Admin(); ok {
		name := admin.FullName
		if name == "" {
			name = admin.Username
		}
		sub = append(sub, fmt.Sprintf("Quản trị viên: %s", name))
	}
	if m.state == adminStateList {
		sub = append(sub, fmt.Sprintf("Bộ lọc: %s", activeFilterLabel(m.activeFilter)))
		if m.filterTerm != "" {
			sub = append(sub, fmt.Sprintf("Tìm: %s", m.filterTerm))
		}
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}
	hints := "ctrl+c thoát"
	switch m.state {
	case adminStateLogin:
		hints = "ctrl+c thoát • tab chuyển ô • enter đăng nhập"
	case adminStateList:
		hints = "ctrl+c thoát • gõ để tìm • ctrl+f lọc trạng thái • enter chi tiết • ctrl+n tạo mới • ctrl+e sửa • ctrl+x xóa • ctrl+o đăng xuất"
	case adminStateDetails:
		hints = "ctrl+c thoát • esc quay lại • e sửa • d xóa"
	case adminStateForm:
		hints = "ctrl+c thoát • esc hủy • tab chuyển ô • ctrl+a bật/tắt kinh doanh • enter lưu"
	case adminStateConfirmDelete:
		hints = "y xác nhận xóa • n/esc hủy"
	}
	return title + meta + "\n" + hint(hints)
}

func (m adminModel) loginView() string {
	return "Đăng nhập quản trị:\n\n" +
		m.username.View() + "\n" +
		m.password.View() + "\n\n" +
		hint("Phiên đăng nhập được lưu cho lần sau.")
}

func (m adminModel) adminLoadingView() string {
	title := "Đang tải"
	switch m.state {
	case adminStateLoggingIn:
		title = "Đang đăng nhập"
	case adminStateLoadingCombos:
		title = "Đang tải danh sách combo"
	case adminStateSaving:
		title = "Đang lưu"
	}
	return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), title, hint("Vui lòng chờ..."))
}

func (m adminModel) detailsView() string {
	label := lipgloss.NewStyle().Faint(true)
	state := "Ngừng kinh doanh"
	if m.combo.IsActive {
		state = "Đang kinh doanh"
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(m.combo.Name),
		"",
		label.Render("Giá: ") + formatVND(m.combo.Price),
		label.Render("Trạng thái: ") + state,
		label.Render("Mô tả: ") + m.combo.Description,
	}
	if len(m.combo.Items) > 0 {
		lines = append(lines, label.Render("Các món: ")+strings.Join(m.combo.Items, ", "))
	}
	if m.combo.ImageUrl != "" {
		lines = append(lines, label.Render("Hình ảnh: ")+m.combo.ImageUrl)
	}
	if !m.combo.UpdatedAt.IsZero() {
		lines = append(lines, label.Render("Cập nhật: ")+m.combo.UpdatedAt.Format("02/01/2006 15:04"))
	}

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("63"))
	return panel.Render(strings.Join(lines, "\n"))
}

func (m adminModel) formView() string {
	title := "Tạo combo mới"
	if m.editing {
		title = fmt.Sprintf("Sửa combo • %s", m.combo.Name)
	}
	lines := []string{lipgloss.NewStyle().Bold(true).Render(title), ""}
	for i := range m.fields {
		lines = append(lines, m.fields[i].View())
	}
	state := "Ngừng kinh doanh"
	if m.formActive {
		state = "Đang kinh doanh"
	}
	lines = append(lines, "", hint("Trạng thái: ")+state)
	if m.formErr != nil {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.formErr.Error()))
	}
	return strings.Join(lines, "\n")
}

func (m adminModel) confirmDeleteView() string {
	message := lipgloss.NewStyle().
		Foreground(lipgloss.Color("203")).
		Bold(true).
		Render(fmt.Sprintf("Bạn có chắc chắn muốn xóa combo \"%s\"?", m.combo.Name))
	return message + "\n\n" + hint("Nhấn y để xóa, n để hủy. Thao tác này không thể hoàn tác.")
}

func (m adminModel) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		m.loginRow = 1 - m.loginRow
		if m.loginRow == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.password.Focus()
			m.username.Blur()
		}
		return m, textinput.Blink
	case tea.KeyEnter:
		username := strings.TrimSpace(m.username.Value())
		password := m.password.Value()
		if username == "" || password == "" {
			m.err = errors.New("Vui lòng nhập tên đăng nhập và mật khẩu")
			m.lastState = adminStateLogin
			m.state = adminStateError
			return m, nil
		}
		m.state = adminStateLoggingIn
		return m, tea.Batch(m.loginCmd(username, password), m.spinner.Tick)
	}

	var cmd tea.Cmd
	if m.loginRow == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m adminModel) handleKey(msg tea.KeyMsg) (adminModel, tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true
	case "esc":
		switch m.state {
		case adminStateList:
			if m.filterTerm != "" {
				m.filterTerm = ""
				m.refreshComboItems()
				return m, nil, true
			}
			return m, tea.Quit, true
		case adminStateDetails:
			m.state = adminStateList
			return m, nil, true
		case adminStateError:
			m.state = m.lastState
			if m.state == adminStateLogin {
				return m, textinput.Blink, true
			}
			return m, nil, true
		}
	case "ctrl+f":
		if m.state == adminStateList {
			m.activeFilter = m.activeFilter.Next()
			m.refreshComboItems()
			return m, nil, true
		}
	case "ctrl+o":
		if m.state == adminStateList {
			_ = m.sess.LogoutAdmin(context.Background(), m.client)
			m.state = adminStateLogin
			m.username.Focus()
			m.password.SetValue("")
			m.loginRow = 0
			return m, textinput.Blink, true
		}
	case "ctrl+n":
		if m.state == adminStateList {
			return m.openForm(model.Combo{}, false), textinput.Blink, true
		}
	case "ctrl+e":
		if m.state == adminStateList {
			item, ok := m.comboList.SelectedItem().(adminComboItem)
			if !ok {
				return m, nil, true
			}
			return m.openForm(item.combo, true), textinput.Blink, true
		}
	case "ctrl+x":
		if m.state == adminStateList {
			item, ok := m.comboList.SelectedItem().(adminComboItem)
			if !ok {
				return m, nil, true
			}
			m.combo = item.combo
			m.state = adminStateConfirmDelete
			return m, nil, true
		}
	case "e":
		if m.state == adminStateDetails {
			return m.openForm(m.combo, true), textinput.Blink, true
		}
	case "d":
		if m.state == adminStateDetails {
			m.state = adminStateConfirmDelete
			return m, nil, true
		}
	}

	if m.state != adminStateList {
		return m, nil, false
	}

	switch msg.Type {
	case tea.KeyEnter:
		item, ok := m.comboList.SelectedItem().(adminComboItem)
		if !ok {
			return m, nil, true
		}
		m.combo = item.combo
		m.state = adminStateDetails
		return m, nil, true
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return m, nil, false
		}
		m.filterTerm += string(msg.Runes)
		m.refreshComboItems()
		return m, nil, true
	case tea.KeySpace:
		m.filterTerm += " "
		m.refreshComboItems()
		return m, nil, true
	case tea.KeyBackspace, tea.KeyDelete:
		if m.filterTerm == "" {
			return m, nil, false
		}
		m.filterTerm = trimLastRune(m.filterTerm)
		m.refreshComboItems()
		return m, nil, true
	}
	return m, nil, false
}

func (m adminModel) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.formErr = nil
		m.state = adminStateList
		return m, nil
	case "ctrl+a":
		m.formActive = !m.formActive
		return m, nil
	case "tab", "down":
		return m.focusField(m.fieldFocus + 1)
	case "shift+tab", "up":
		return m.focusField(m.fieldFocus - 1)
	case "enter":
		if m.fieldFocus < fieldCount-1 {
			return m.focusField(m.fieldFocus + 1)
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.fields[m.fieldFocus], cmd = m.fields[m.fieldFocus].Update(msg)
	return m, cmd
}

func (m adminModel) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "y":
		comboID := m.combo.Id
		client := m.client
		m.state = adminStateSaving
		return m, tea.Batch(func() tea.Msg {
			err := client.DeleteCombo(context.Background(), comboID)
			return comboDeletedMsg{err: err}
		}, m.spinner.Tick)
	case "n", "esc":
		m.state = adminStateList
		return m, nil
	}
	return m, nil
}

func (m adminModel) focusField(index int) (tea.Model, tea.Cmd) {
	if index < 0 {
		index = fieldCount - 1
	}
	if index >= fieldCount {
		index = 0
	}
	m.fields[m.fieldFocus].Blur()
	m.fieldFocus = index
	m.fields[m.fieldFocus].Focus()
	return m, textinput.Blink
}

func (m adminModel) openForm(combo model.Combo, editing bool) adminModel {
	m.combo = combo
	m.editing = editing
	m.formErr = nil
	m.formActive = combo.IsActive
	if !editing {
		m.formActive = true
	}

	m.fields[fieldName].SetValue(combo.Name)
	m.fields[fieldDescription].SetValue(combo.Description)
	if combo.Price > 0 {
		m.fields[fieldPrice].SetValue(strconv.FormatFloat(combo.Price, 'f', -1, 64))
	} else {
		m.fields[fieldPrice].SetValue("")
	}
	m.fields[fieldImageUrl].SetValue(combo.ImageUrl)
	m.fields[fieldItems].SetValue(strings.Join(combo.Items, ", "))

	for i := range m.fields {
		m.fields[i].Blur()
	}
	m.fieldFocus = fieldName
	m.fields[fieldName].Focus()
	m.state = adminStateForm
	return m
}

func (m adminModel) submitForm() (tea.Model, tea.Cmd) {
	input, err := buildComboInput(
		m.fields[fieldName].Value(),
		m.fields[fieldDescription].Value(),
		m.fields[fieldPrice].Value(),
		m.fields[fieldImageUrl].Value(),
		m.fields[fieldItems].Value(),
		m.formActive,
	)
	if err != nil {
		m.formErr = err
		return m, nil
	}

	client := m.client
	comboID := m.combo.Id
	editing := m.editing
	m.state = adminStateSaving
	return m, tea.Batch(func() tea.Msg {
		ctx := context.Background()
		if editing {
			_, err := client.UpdateCombo(ctx, comboID, input)
			return comboSavedMsg{err: err}
		}
		_, err := client.CreateCombo(ctx, input)
		return comboSavedMsg{err: err}
	}, m.spinner.Tick)
}

// buildComboInput validates the raw form values field by field and
// assembles the API payload. The first invalid field wins.
func buildComboInput(name, description, price, imageUrl, items string, isActive bool) (model.ComboInput, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ComboInput{}, errors.New("Tên combo là bắt buộc")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return model.ComboInput{}, errors.New("Mô tả combo là bắt buộc")
	}
	parsedPrice, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || parsedPrice <= 0 {
		return model.ComboInput{}, errors.New("Giá combo phải là số dương")
	}
	imageUrl = strings.TrimSpace(imageUrl)
	if imageUrl == "" {
		return model.ComboInput{}, errors.New("URL hình ảnh là bắt buộc")
	}
	parsedItems := splitItems(items)
	if len(parsedItems) == 0 {
		return model.ComboInput{}, errors.New("Phải có ít nhất một món trong combo")
	}
	return model.ComboInput{
		Name:        name,
		Description: description,
		Price:       parsedPrice,
		ImageUrl:    imageUrl,
		Items:       parsedItems,
		IsActive:    isActive,
	}, nil
}

func splitItems(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func (m *adminModel) refreshComboItems() {
	filtered := search.FilterCombos(m.combos, m.filterTerm, m.activeFilter)
	sort.Slice(filtered, func(i, j int) bool {
		return search.Fold(filtered[i].Name) < search.Fold(filtered[j].Name)
	})
	items := make([]list.Item, 0, len(filtered))
	for _, combo := range filtered {
		items = append(items, adminComboItem{combo: combo})
	}
	m.comboList.SetItems(items)
	m.comboList.Title = fmt.Sprintf("Quản lý combo (%d)", len(filtered))
}

func (m adminModel) isLoadingState() bool {
	return m.state == adminStateLoggingIn ||
		m.state == adminStateLoadingCombos ||
		m.state == adminStateSaving
}

func (m adminModel) loginCmd(username string, password string) tea.Cmd {
	sess := m.sess
	client := m.client
	return func() tea.Msg {
		err := sess.LoginAdmin(context.Background(), client, username, password)
		return adminLoginMsg{err: err}
	}
}

func (m adminModel) fetchCombosCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		combos, err := client.GetCombos(context.Background())
		return adminCombosMsg{combos: combos, err: err}
	}
}

func activeFilterLabel(filter search.ActiveFilter) string {
	switch filter {
	case search.FilterActive:
		return "đang kinh doanh"
	case search.FilterInactive:
		return "ngừng kinh doanh"
	default:
		return "tất cả"
	}
}

type adminComboItem struct {
	combo model.Combo
}

func (c adminComboItem) Title() string {
	if c.combo.IsActive {
		return c.combo.Name
	}
	return fmt.Sprintf("%s (ngừng kinh doanh)", c.combo.Name)
}

func (c adminComboItem) Description() string {
	parts := []string{formatVND(c.combo.Price)}
	if c.combo.Description != "" {
		parts = append(parts, c.combo.Description)
	}
	return strings.Join(parts, " • ")
}

func (c adminComboItem) FilterValue() string {
	return search.Fold(c.combo.Name + " " + c.combo.Description)
}
