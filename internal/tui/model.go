// Package tui implements the interactive admin console.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/admin"
	"github.com/colonyops/hrms/internal/core/hrms"
	"github.com/colonyops/hrms/internal/core/styles"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
)

type page int

const (
	pageDashboard page = iota
	pageEmployees
	pageAttendance
)

var pageNames = [...]string{"Dashboard", "Employees", "Attendance"}

// Opts configures the console.
type Opts struct {
	// SkipWelcome opens the dashboard directly.
	SkipWelcome bool
	// MaxToasts limits how many toasts are drawn at once. Zero draws all.
	MaxToasts int
}

// Model is the root bubbletea model.
type Model struct {
	ctx context.Context
	app *admin.App

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	signal  *QueueSignal
	toasts  ToastView

	width   int
	height  int
	welcome string

	showWelcome bool
	page        page

	dashboard  dashboardView
	employees  employeesView
	attendance attendanceView

	form     *huh.Form
	formKind formKind
	empInput *hrms.EmployeeCreate
	attInput *attendanceInput

	confirm *confirmDelete
	history *historyModal
}

// New creates the console model. Call Close once the program exits.
func New(ctx context.Context, app *admin.App, opts Opts) Model {
	m := Model{
		ctx:  ctx,
		app:  app,
		keys: defaultKeyMap(),
		help: help.New(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(styles.ColorPrimary)),
		),
		signal:      WatchQueue(app.Queue()),
		toasts:      NewToastView(app.Queue(), opts.MaxToasts),
		showWelcome: !opts.SkipWelcome,
		employees:   newEmployeesView(),
		attendance:  newAttendanceView(),
	}
	m.setSize(defaultWidth, defaultHeight)

	if opts.SkipWelcome {
		m.dashboard.loading = true
		m.employees.loading = true
	}
	return m
}

// Close stops listening for notifications.
func (m Model) Close() {
	m.signal.Close()
}

func (m Model) Init() tea.Cmd {
	if m.showWelcome {
		return m.signal.WaitForSignal()
	}
	return tea.Batch(
		m.signal.WaitForSignal(),
		m.fetchDashboard(),
		m.fetchEmployees(),
		m.spinner.Tick,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
		return m, nil

	case toastsChangedMsg:
		return m, m.signal.WaitForSignal()

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case dashboardLoadedMsg:
		m.dashboard.loading = false
		m.dashboard.err = msg.err
		if msg.err == nil {
			m.dashboard.stats = msg.stats
			m.dashboard.loaded = true
		}
		return m, nil

	case employeesLoadedMsg:
		m.employees.loading = false
		m.employees.err = msg.err
		if msg.err == nil {
			m.employees.SetEmployees(msg.employees)
			m.employees.loaded = true
		}
		return m, nil

	case attendanceLoadedMsg:
		if msg.employeeID != m.attendance.employee.EmployeeID {
			return m, nil
		}
		m.attendance.loading = false
		m.attendance.err = msg.err
		if msg.err == nil {
			m.attendance.SetRecords(msg.records)
			m.attendance.loaded = true
		}
		return m, nil

	case employeeCreatedMsg:
		if msg.err != nil {
			return m, nil
		}
		cmd := m.reload(m.fetchEmployees(), m.fetchDashboard())
		return m, cmd

	case employeeDeletedMsg:
		if msg.err != nil {
			return m, nil
		}
		if m.attendance.employee.EmployeeID == msg.employeeID {
			m.attendance.Clear()
		}
		cmd := m.reload(m.fetchEmployees(), m.fetchDashboard())
		return m, cmd

	case attendanceMarkedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.attendance.SetEmployee(m.findEmployee(msg.attendance.EmployeeID))
		m.page = pageAttendance
		cmd := m.reload(m.fetchAttendance(), m.fetchDashboard(), m.fetchEmployees())
		return m, cmd

	case historyLoadedMsg:
		if m.history != nil {
			m.history.SetItems(msg.items)
		}
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showWelcome:
		return m.updateWelcome(keyMsg)
	case m.confirm != nil:
		return m.updateConfirm(keyMsg)
	case m.history != nil:
		return m.updateHistory(keyMsg)
	default:
		return m.updateMain(keyMsg)
	}
}

func (m Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		m.showWelcome = false
		cmd := m.reload(m.fetchDashboard(), m.fetchEmployees())
		return m, cmd
	}
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirm.employee.EmployeeID
		m.confirm = nil
		return m, m.deleteEmployee(id)
	case key.Matches(msg, m.keys.Cancel):
		m.confirm = nil
	}
	return m, nil
}

func (m Model) updateHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.History) {
		m.history = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.history.viewport, cmd = m.history.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Back) {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		submit := m.submitForm()
		m.closeForm()
		return m, tea.Batch(cmd, submit)
	case huh.StateAborted:
		m.closeForm()
	}
	return m, cmd
}

func (m Model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		cmd := m.setPage((m.page + 1) % page(len(pageNames)))
		return m, cmd
	case key.Matches(msg, m.keys.PrevPage):
		cmd := m.setPage((m.page + page(len(pageNames)) - 1) % page(len(pageNames)))
		return m, cmd
	case key.Matches(msg, m.keys.Page1):
		cmd := m.setPage(pageDashboard)
		return m, cmd
	case key.Matches(msg, m.keys.Page2):
		cmd := m.setPage(pageEmployees)
		return m, cmd
	case key.Matches(msg, m.keys.Page3):
		cmd := m.setPage(pageAttendance)
		return m, cmd
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.reload(m.fetchDashboard(), m.fetchEmployees(), m.fetchAttendance())
		return m, cmd
	case key.Matches(msg, m.keys.Dismiss):
		m.app.Queue().DismissNewest()
		return m, nil
	case key.Matches(msg, m.keys.ClearAll):
		m.app.Queue().DismissAll()
		return m, nil
	case key.Matches(msg, m.keys.History):
		cmd := m.openHistory()
		return m, cmd
	case key.Matches(msg, m.keys.Add):
		if m.page == pageAttendance {
			cmd := m.openForm(formMarkAttendance)
			return m, cmd
		}
		cmd := m.openForm(formAddEmployee)
		return m, cmd
	case key.Matches(msg, m.keys.Mark):
		cmd := m.openForm(formMarkAttendance)
		return m, cmd
	}

	switch m.page {
	case pageEmployees:
		switch {
		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.employees.Selected(); ok {
				m.confirm = &confirmDelete{employee: e}
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			e, ok := m.employees.Selected()
			if !ok {
				return m, nil
			}
			m.attendance.SetEmployee(e)
			m.page = pageAttendance
			cmd := m.reload(m.fetchAttendance())
			return m, cmd
		}
		var cmd tea.Cmd
		m.employees, cmd = m.employees.Update(msg)
		return m, cmd

	case pageAttendance:
		var cmd tea.Cmd
		m.attendance, cmd = m.attendance.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) setSize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width
	m.welcome = renderWelcome(width)

	body := m.bodyHeight()
	m.employees.SetSize(width-2, body)
	m.attendance.SetSize(width-2, body)
}

// bodyHeight is the space between the tab bar and the help line.
func (m Model) bodyHeight() int {
	return max(m.height-3, 1)
}

func (m *Model) setPage(p page) tea.Cmd {
	m.page = p
	if p == pageAttendance && m.attendance.HasEmployee() && !m.attendance.loaded && !m.attendance.loading {
		return m.reload(m.fetchAttendance())
	}
	return nil
}

func (m Model) loading() bool {
	return m.dashboard.loading || m.employees.loading || m.attendance.loading
}

// reload batches fetches with a spinner tick so loading states animate.
func (m *Model) reload(cmds ...tea.Cmd) tea.Cmd {
	return tea.Batch(append(cmds, m.spinner.Tick)...)
}

func (m *Model) fetchDashboard() tea.Cmd {
	m.dashboard.loading = true
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		stats, err := app.Dashboard.Stats(ctx)
		return dashboardLoadedMsg{stats: stats, err: err}
	}
}

func (m *Model) fetchEmployees() tea.Cmd {
	m.employees.loading = true
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		employees, err := app.Employees.List(ctx, admin.EmployeeFilter{})
		return employeesLoadedMsg{employees: employees, err: err}
	}
}

func (m *Model) fetchAttendance() tea.Cmd {
	if !m.attendance.HasEmployee() {
		return nil
	}
	m.attendance.loading = true
	app, ctx, id := m.app, m.ctx, m.attendance.employee.EmployeeID
	return func() tea.Msg {
		records, err := app.Attendance.List(ctx, id)
		return attendanceLoadedMsg{employeeID: id, records: records, err: err}
	}
}

func (m Model) deleteEmployee(id string) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		err := app.Employees.Delete(ctx, id)
		return employeeDeletedMsg{employeeID: id, err: err}
	}
}

func (m *Model) openHistory() tea.Cmd {
	enabled := m.app.Config == nil || m.app.Config.Notifications.HistoryEnabled()
	h := newHistoryModal(m.height, !enabled)
	m.history = &h
	if !enabled {
		return nil
	}

	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		items, err := app.Notifications.History(ctx)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m *Model) openForm(kind formKind) tea.Cmd {
	switch kind {
	case formAddEmployee:
		m.empInput = &hrms.EmployeeCreate{}
		m.form = newEmployeeForm(m.empInput, m.app.Departments())
	case formMarkAttendance:
		id := m.attendance.employee.EmployeeID
		if m.page == pageEmployees {
			if e, ok := m.employees.Selected(); ok {
				id = e.EmployeeID
			}
		}
		m.attInput = &attendanceInput{EmployeeID: id}
		m.form = newAttendanceForm(m.attInput, m.employees.employees)
	default:
		return nil
	}
	m.formKind = kind
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
}

func (m Model) submitForm() tea.Cmd {
	app, ctx := m.app, m.ctx

	switch m.formKind {
	case formAddEmployee:
		in := *m.empInput
		return func() tea.Msg {
			e, err := app.Employees.Create(ctx, in)
			return employeeCreatedMsg{employee: e, err: err}
		}
	case formMarkAttendance:
		in := m.attInput.payload()
		return func() tea.Msg {
			a, err := app.Attendance.Mark(ctx, in)
			return attendanceMarkedMsg{attendance: a, err: err}
		}
	}
	return nil
}

func (m Model) findEmployee(id string) hrms.Employee {
	for _, e := range m.employees.employees {
		if e.EmployeeID == id {
			return e
		}
	}
	return hrms.Employee{EmployeeID: id}
}

func (m Model) View() string {
	if m.showWelcome {
		return m.toasts.Overlay(m.welcomeView(), m.width, m.height, 0)
	}

	header := m.headerView()
	footer := styles.StatusBarStyle.Render(m.help.View(m.keys))
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 1)

	body := lipgloss.NewStyle().
		PaddingLeft(1).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.pageView())

	screen := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	switch {
	case m.form != nil:
		modal := styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			styles.ModalTitleStyle.Render(m.formKind.title()),
			"",
			m.form.View(),
			styles.ModalHelpStyle.Render("esc cancel"),
		))
		screen = m.centerOverlay(screen, modal)
	case m.confirm != nil:
		screen = m.centerOverlay(screen, m.confirm.View())
	case m.history != nil:
		screen = m.centerOverlay(screen, m.history.View())
	}

	return m.toasts.Overlay(screen, m.width, m.height, lipgloss.Height(footer))
}

func (m Model) headerView() string {
	tabs := make([]string, 0, len(pageNames))
	for i, name := range pageNames {
		label := name
		if page(i) == m.page {
			tabs = append(tabs, styles.TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, styles.TabStyle.Render(label))
		}
	}

	title := styles.CommandHeaderStyle.Render("HRMS Lite") + "  " + strings.Join(tabs, "")
	divider := styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, title, divider)
}

func (m Model) pageView() string {
	spin := m.spinner.View()
	switch m.page {
	case pageEmployees:
		return m.employees.View(spin)
	case pageAttendance:
		return m.attendance.View(spin)
	default:
		return m.dashboard.View(spin)
	}
}

func (m Model) centerOverlay(bg, fg string) string {
	x := (m.width - lipgloss.Width(fg)) / 2
	y := (m.height - lipgloss.Height(fg)) / 2
	return overlay(bg, fg, x, y)
}
