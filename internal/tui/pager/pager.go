// Package pager provides an interactive Bubble Tea widget that pages
// through a row set, rendering the current page as a table plus a
// page-selector bar of numbers and ellipses.
package pager

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pagekit/internal/datasource"
	"pagekit/internal/pagination"
)

// Key bindings.
const (
	keyQuit  = "q"
	keyCtrlC = "ctrl+c"
	keyEsc   = "esc"
	keyFirst = "g"
	keyLast  = "G"
)

// Default dimensions before the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// chromeHeight is the number of non-table lines in the view: title, marker
// bar, status line, and help line.
const chromeHeight = 6

// Model is the Bubble Tea model for the pager.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	title string
	rows  []datasource.Row
	ctrl  *pagination.Controller

	table   table.Model
	printer *message.Printer

	width    int
	height   int
	quitting bool
}

// New creates a pager over rows. cfg's TotalItems is derived from rows and
// may be left zero.
func New(title string, rows []datasource.Row, cfg pagination.Config) (Model, error) {
	cfg.TotalItems = len(rows)
	ctrl, err := pagination.NewController(cfg)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		title:   title,
		rows:    rows,
		ctrl:    ctrl,
		printer: message.NewPrinter(language.English),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.table = m.buildTable()
	return m, nil
}

// Controller exposes the pagination controller, mainly for tests and for
// hosts that want to observe page changes.
func (m Model) Controller() *pagination.Controller {
	return m.ctrl
}

// WithPage returns the model positioned on the given page. Out-of-range
// pages clamp like any other navigation.
func (m Model) WithPage(page int) Model {
	if m.ctrl.GoTo(page).Changed {
		m.table = m.buildTable()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.buildTable()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC, keyEsc:
		m.quitting = true
		return m, tea.Quit
	case "left", "h", "pgup":
		m.navigate(m.ctrl.Previous())
		return m, nil
	case "right", "l", "pgdown":
		m.navigate(m.ctrl.Next())
		return m, nil
	case keyFirst, "home":
		m.navigate(m.ctrl.GoTo(1))
		return m, nil
	case keyLast, "end":
		m.navigate(m.ctrl.GoTo(m.ctrl.TotalPages()))
		return m, nil
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
}

// navigate rebuilds the table after a page change. No-op results leave the
// table alone so the cursor position survives redundant keypresses.
func (m *Model) navigate(res pagination.NavResult) {
	if !res.Changed {
		return
	}
	m.table = m.buildTable()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.markerBar())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("←/→ page · g/G first/last · q quit"))
	b.WriteString("\n")
	return b.String()
}

// markerBar renders the page-selector: numbers plus dimmed, non-navigable
// ellipses, with the current page highlighted.
func (m Model) markerBar() string {
	current := m.ctrl.CurrentPage()
	parts := make([]string, 0, 8)
	for _, marker := range m.ctrl.Markers() {
		switch {
		case marker.IsEllipsis():
			parts = append(parts, ellipsisStyle.Render(marker.String()))
		case marker.Page == current:
			parts = append(parts, currentPageStyle.Render(marker.String()))
		default:
			parts = append(parts, pageStyle.Render(marker.String()))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) statusLine() string {
	meta := m.ctrl.Meta()
	return statusStyle.Render(m.printer.Sprintf(
		"page %d of %d · %d items", meta.CurrentPage, meta.TotalPages, meta.TotalItems))
}

// buildTable creates a table model holding the current page of rows.
func (m Model) buildTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 26},       //nolint:mnd // Column width.
		{Title: "Name", Width: 16},     //nolint:mnd // Column width.
		{Title: "Category", Width: 12}, //nolint:mnd // Column width.
		{Title: "Amount", Width: 10},   //nolint:mnd // Column width.
	}

	from, to := m.ctrl.PageBounds()
	tableRows := make([]table.Row, 0, to-from)
	for _, r := range m.rows[from:to] {
		tableRows = append(tableRows, table.Row{
			r.ID,
			r.Name,
			r.Category,
			fmt.Sprintf("%.2f", r.Amount),
		})
	}

	height := max(m.height-chromeHeight, 3)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(tableStyles())
	return t
}
