package tui

import (
	"context"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/components/auth"
	"github.com/garrettladley/swimlight/internal/tui/components/footer"
	"github.com/garrettladley/swimlight/internal/tui/nav"
	"github.com/garrettladley/swimlight/internal/tui/page/calendar"
	"github.com/garrettladley/swimlight/internal/tui/page/detail"
	"github.com/garrettladley/swimlight/internal/tui/page/onboarding"
	"github.com/garrettladley/swimlight/internal/tui/page/splash"
	"github.com/garrettladley/swimlight/internal/tui/theme"
	"github.com/garrettladley/swimlight/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type state struct {
	auth       auth.Indicator
	onboarding onboarding.State
	calendar   calendar.State
	detail     detail.State
}

type Model struct {
	ready          bool
	splashDone     bool
	page           nav.Screen
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps

	// cancel stops the fetches of the screen being left.
	cancel context.CancelFunc
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	deps.Ctx = xslog.WithLogger(deps.Ctx, deps.Logger)
	return Model{
		page:  nav.Splash,
		theme: theme.New(),
		deps:  deps,
		state: state{
			calendar: calendar.New(deps.Service.Bucketer(), deps.now()),
		},
		cancel: func() {},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		splashTickCmd(),
		checkAuthCmd(m.deps.Ctx, m.deps.Service),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case splash.TickMsg:
		m.splashDone = true
		return m, m.leaveSplash()

	case AuthStatusMsg:
		m.state.auth.Checked = true
		m.state.auth.Status = msg.Status
		if msg.Err != nil {
			m.deps.Logger.WarnContext(m.deps.Ctx, "failed to read authorization", xslog.Error(msg.Err))
		}
		m.state.onboarding.Status = msg.Status
		return m, m.leaveSplash()

	case AuthorizeResultMsg:
		if msg.Err != nil {
			m.state.onboarding.Phase = onboarding.PhaseError
			m.state.onboarding.ErrorMsg = msg.Err.Error()
			return m, nil
		}
		m.state.auth.Status = swim.AuthorizationAuthorized
		m.state.onboarding.Status = swim.AuthorizationAuthorized
		return m, nav.Navigate(nav.Calendar, m.deps.now())

	case nav.NavigateMsg:
		return m, m.navigate(msg)

	case WorkoutDatesMsg:
		if msg.Err != nil {
			m.state.calendar.Err = msg.Err
			m.state.calendar.Loaded = true
			return m, nil
		}
		m.state.calendar = m.state.calendar.SetWorkoutDates(msg.Dates, msg.Streak)

	case DayReportMsg:
		if !msg.Date.Equal(m.state.detail.Date) {
			return m, nil
		}
		if msg.Err != nil && msg.Day == nil {
			m.state.detail = m.state.detail.SetError(msg.Err)
			return m, nil
		}
		m.state.detail = m.state.detail.SetReports(msg.Day, msg.Month)
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch key {
	case "ctrl+c", "q":
		m.cancel()
		return tea.Quit
	}

	var cmd tea.Cmd
	switch m.page {
	case nav.Onboarding:
		if key == "enter" && m.state.onboarding.Phase != onboarding.PhaseAuthorizing {
			m.state.onboarding.Phase = onboarding.PhaseAuthorizing
			cmd = authorizeCmd(m.deps.Ctx, m.deps.Authorizer)
		}
	case nav.Calendar:
		if key == "r" {
			m.state.calendar.Loaded = false
			return m.screenFetch(nav.Calendar, func(ctx context.Context) tea.Cmd {
				return workoutDatesCmd(ctx, m.deps, true)
			})
		}
		m.state.calendar, cmd = m.state.calendar.HandleKey(key)
	case nav.Detail:
		m.state.detail, cmd = m.state.detail.HandleKey(key)
	}
	return cmd
}

// leaveSplash waits for both the splash timer and the authorization check.
func (m *Model) leaveSplash() tea.Cmd {
	if m.page != nav.Splash || !m.splashDone || !m.state.auth.Checked {
		return nil
	}
	if m.state.auth.Status.IsAuthorized() {
		return nav.Navigate(nav.Calendar, m.deps.now())
	}
	return nav.Navigate(nav.Onboarding, m.deps.now())
}

func (m *Model) navigate(msg nav.NavigateMsg) tea.Cmd {
	m.deps.Logger.DebugContext(m.deps.Ctx, "navigate", xslog.Screen(msg.Screen.String()), xslog.Date(msg.Date))
	m.page = msg.Screen
	b := m.deps.Service.Bucketer()
	today := daterange.StartOfDay(m.deps.now().In(b.Location()))
	date := today
	if !msg.Date.IsZero() {
		date = daterange.StartOfDay(msg.Date.In(b.Location()))
	}

	switch msg.Screen {
	case nav.Onboarding:
		m.cancel()
		m.state.onboarding.Phase = onboarding.PhaseWelcome
		return nil
	case nav.Calendar:
		m.state.calendar.Today = today
		m.state.calendar.Selected = date
		return m.screenFetch(nav.Calendar, func(ctx context.Context) tea.Cmd {
			return workoutDatesCmd(ctx, m.deps, false)
		})
	case nav.Detail:
		m.state.detail = detail.New(date, today, m.deps.Service.ZoneTable())
		return m.screenFetch(nav.Detail, func(ctx context.Context) tea.Cmd {
			return dayReportCmd(ctx, m.deps, date)
		})
	}
	return nil
}

// screenFetch cancels whatever the previous screen still has in flight.
func (m *Model) screenFetch(screen nav.Screen, cmd func(context.Context) tea.Cmd) tea.Cmd {
	m.cancel()
	ctx, cancel := context.WithCancel(xslog.WithAttrs(m.deps.Ctx, xslog.Screen(screen.String())))
	m.cancel = cancel
	return cmd(ctx)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == nav.Splash {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case nav.Splash:
		content = splash.View(m.theme, m.viewportWidth, m.viewportHeight)
	case nav.Onboarding:
		content = onboarding.View(m.theme, m.state.onboarding, m.viewportWidth, m.viewportHeight)
	case nav.Calendar:
		content = m.withChrome(
			calendar.View(m.theme, m.state.calendar, m.viewportWidth, m.bodyHeight()),
			footer.Hint{Key: "←→↑↓", Desc: "move"},
			footer.Hint{Key: "[ ]", Desc: "month"},
			footer.Hint{Key: "enter", Desc: "details"},
			footer.Hint{Key: "r", Desc: "refresh"},
			footer.Hint{Key: "q", Desc: "quit"},
		)
	case nav.Detail:
		content = m.withChrome(
			detail.View(m.theme, m.state.detail, m.viewportWidth, m.bodyHeight()),
			footer.Hint{Key: "←→", Desc: "day"},
			footer.Hint{Key: "esc", Desc: "calendar"},
			footer.Hint{Key: "q", Desc: "quit"},
		)
	}

	view.SetContent(content)
	return view
}

const footerHeight = 2

func (m *Model) bodyHeight() int {
	return max(m.viewportHeight-footerHeight, 0)
}

// withChrome places the auth indicator top right over body and the key hints
// below it.
func (m *Model) withChrome(body string, hints ...footer.Hint) string {
	indicator := lipgloss.NewStyle().
		PaddingRight(2).
		PaddingTop(1).
		Render(m.state.auth.Render())

	overlay := lipgloss.Place(
		m.viewportWidth,
		m.bodyHeight(),
		lipgloss.Right,
		lipgloss.Top,
		indicator,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		overlayStrings(body, overlay),
		footer.New(m.viewportWidth, hints...).Render(),
	)
}

// overlayStrings draws every non-blank rune of overlay on top of base.
func overlayStrings(base, overlay string) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	result := make([]string, max(len(baseLines), len(overlayLines)))
	for i := range result {
		var baseRunes, overlayRunes []rune
		if i < len(baseLines) {
			baseRunes = []rune(baseLines[i])
		}
		if i < len(overlayLines) {
			overlayRunes = []rune(overlayLines[i])
		}
		if strings.TrimSpace(string(overlayRunes)) == "" {
			result[i] = string(baseRunes)
			continue
		}

		merged := make([]rune, max(len(baseRunes), len(overlayRunes)))
		for j := range merged {
			merged[j] = ' '
			if j < len(baseRunes) {
				merged[j] = baseRunes[j]
			}
			if j < len(overlayRunes) && overlayRunes[j] != ' ' {
				merged[j] = overlayRunes[j]
			}
		}
		result[i] = string(merged)
	}
	return strings.Join(result, "\n")
}
