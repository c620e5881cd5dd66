// Package tui provides the interactive Bubble Tea dashboard for spendwise.
package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/theirongolddev/spendwise/internal/cli"
	"github.com/theirongolddev/spendwise/internal/ledger"
	"github.com/theirongolddev/spendwise/internal/model"
	"github.com/theirongolddev/spendwise/internal/tui/components"
	"github.com/theirongolddev/spendwise/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabDashboard = iota
	tabExpenses
	tabBudget
	tabGoals
	tabInsights
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5

	recentLimit = 10
)

// Options configures the dashboard.
type Options struct {
	Journaling bool // expenses are persisted to the journal
	Logger     *slog.Logger
}

// expensesState holds the expenses tab state.
type expensesState struct {
	searching   bool
	searchInput textinput.Model
	searchQuery string
}

// addValues receives the add-expense form fields. The form writes through
// a pointer, so it lives outside the App value.
type addValues struct {
	amount      string
	description string
}

// App is the root Bubble Tea model.
type App struct {
	state *ledger.State
	snap  ledger.Snapshot
	opts  Options

	width     int
	height    int
	activeTab int
	showHelp  bool
	flash     string

	exp expensesState

	addForm *huh.Form
	addVals *addValues
}

// NewApp creates a dashboard over state.
func NewApp(state *ledger.State, opts Options) App {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return App{
		state: state,
		snap:  state.Snapshot(),
		opts:  opts,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.addForm != nil {
			a.addForm = a.addForm.WithWidth(min(msg.Width, 60))
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.addForm != nil {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// The add form and search input own the keyboard while open.
		if a.addForm != nil {
			return a.updateAddForm(msg)
		}
		if a.exp.searching {
			return a.updateSearch(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		a.flash = ""

		switch key {
		case "q":
			return a, tea.Quit
		case "a":
			return a.openAddForm()
		case "/":
			a.activeTab = tabExpenses
			a.exp.searching = true
			a.exp.searchInput = newSearchInput()
			a.exp.searchInput.Focus()
			return a, textinput.Blink
		case "esc":
			a.exp.searchQuery = ""
			return a, nil
		case "left":
			a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
			return a, nil
		case "right", "tab":
			a.activeTab = (a.activeTab + 1) % len(components.Tabs)
			return a, nil
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.activeTab = idx
			}
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, etc.) to the open form.
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}
	if a.exp.searching {
		var cmd tea.Cmd
		a.exp.searchInput, cmd = a.exp.searchInput.Update(msg)
		return a, cmd
	}

	return a, nil
}

// ─── Add Expense ────────────────────────────────────────────────

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func newAddForm(vals *addValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.99").
				Value(&vals.amount).
				Validate(requireText("amount")),
			huh.NewInput().
				Title("Description").
				Placeholder("Coffee at campus cafe").
				Description("Category is picked from keywords in the description.").
				Value(&vals.description).
				Validate(requireText("description")),
		),
	).WithShowHelp(true)
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.addVals = &addValues{}
	a.addForm = newAddForm(a.addVals)
	if a.width > 0 {
		a.addForm = a.addForm.WithWidth(min(a.width, 60))
	}
	return a, a.addForm.Init()
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && km.String() == "esc" {
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		vals := *a.addVals
		a.addForm = nil
		a.addVals = nil
		a.submitExpense(vals.amount, vals.description)
		return a, nil
	case huh.StateAborted:
		a.addForm = nil
		a.addVals = nil
		return a, nil
	}

	return a, cmd
}

// submitExpense records an expense and refreshes the derived view.
func (a *App) submitExpense(amount, description string) {
	e, err := a.state.AddExpense(amount, description)
	if err != nil {
		a.flash = "Not added: " + err.Error()
		if !errors.Is(err, ledger.ErrEmptyAmount) && !errors.Is(err, ledger.ErrEmptyDescription) {
			a.opts.Logger.Error("add expense", "error", err)
		}
		return
	}
	a.snap = a.state.Snapshot()
	a.activeTab = tabExpenses
	a.flash = fmt.Sprintf("Added %s %s to %s", cli.FormatMoney(e.Amount), e.Description, e.Category)
}

// ─── Search ─────────────────────────────────────────────────────

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "search descriptions"
	ti.Prompt = "/ "
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

// updateSearch handles key events while the search input is open.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.exp.searchQuery = strings.TrimSpace(a.exp.searchInput.Value())
		a.exp.searching = false
		return a, nil
	case "esc":
		a.exp.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.exp.searchInput, cmd = a.exp.searchInput.Update(msg)
	return a, cmd
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.addForm != nil {
		return a.viewAddForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  spendwise needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewAddForm() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	hintStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	body := titleStyle.Render("◈ Add Expense") + "\n\n" +
		a.addForm.View() + "\n" +
		hintStyle.Render("esc to cancel")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d e b g i", "Jump to tab"},
			{"← →", "Previous / Next tab"},
		}},
		{"Actions", []struct{ key, desc string }{
			{"a", "Add expense"},
			{"/", "Search expenses"},
			{"Esc", "Clear search / Cancel"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + period line
	pillStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	pillAccent := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	proj := a.snap.Projection
	period := pillStyle.Render(" ") +
		pillAccent.Render(cli.FormatMonth(a.snap.Summary.Month)) +
		pillStyle.Render(fmt.Sprintf(" │ day %d of %d", proj.ElapsedDays, proj.PeriodDays))
	if a.exp.searchQuery != "" {
		period += pillStyle.Render(" │ search: ") + pillAccent.Render(a.exp.searchQuery)
	}
	periodRow := lipgloss.NewStyle().Background(t.Surface).Width(w).Render(period)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + periodRow

	// 2. Status bar
	info := fmt.Sprintf("%d expenses", len(a.state.Expenses()))
	if a.opts.Journaling {
		info += " · journal"
	}
	if !a.isCompactLayout() {
		spentPct := a.snap.Summary.Total / a.snap.Budget.Monthly * 100
		info = components.CompactBudgetBar("spent", spentPct, 24) + pillStyle.Render("  ") + info
	}
	hints := "[a]dd  [/]search  [?]help  [q]uit"
	if a.exp.searching {
		hints = a.exp.searchInput.View()
	}
	statusBar := components.RenderStatusBar(w, hints, a.flash, info)

	// 3. Content zone
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabGoals:
		content = a.renderGoalsTab(cw)
	case tabInsights:
		content = a.renderInsightsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func severityStyle(s model.Severity) lipgloss.Style {
	t := theme.Active
	if s == model.SeverityHigh {
		return lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
