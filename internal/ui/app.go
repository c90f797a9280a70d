package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	humanize "github.com/dustin/go-humanize"

	"github.com/ramanasai/chime/internal/alarm"
	"github.com/ramanasai/chime/internal/clock"
	"github.com/ramanasai/chime/internal/config"
	"github.com/ramanasai/chime/internal/logging"
)

const faceRadius = 8

// Sound is the runtime sound switch, usually a *notify.Notifier.
type Sound interface {
	SetSound(on bool)
	SoundEnabled() bool
}

type mode int

const (
	modeNormal mode = iota
	modeAdd
	modeHelp
)

type tickMsg struct{ now time.Time }

// changedMsg arrives when the alarm state committed a mutation.
type changedMsg struct{}

type addForm struct {
	time    textinput.Model
	label   textinput.Model
	enabled bool
	focus   int // 0 time, 1 label
	err     string
}

func newAddForm() addForm {
	ti := textinput.New()
	ti.Placeholder = "07:30, 6:45 pm, in 20m"
	ti.CharLimit = 32
	ti.Prompt = "Time:  "
	ti.Focus()

	li := textinput.New()
	li.Placeholder = alarm.DefaultLabel
	li.CharLimit = 64
	li.Prompt = "Label: "

	return addForm{time: ti, label: li, enabled: true}
}

// Model is the Bubble Tea model for the clock screen.
type Model struct {
	sched  *alarm.Scheduler
	sound  Sound
	logger *log.Logger
	tick   time.Duration
	clock  func() time.Time

	now  time.Time
	view alarm.View

	cursor int
	mode   mode
	form   addForm
	status string

	width, height int

	themeName string
	accent    int
	theme     Theme
	keys   keyMap
	help   help.Model
}

// New builds the model. sound may be nil when no audio sink is wired.
func New(sched *alarm.Scheduler, sound Sound, cfg config.Config, logger *log.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}
	tick := cfg.Tick
	if tick <= 0 {
		tick = config.Default().Tick
	}
	accent := 0
	for i, a := range Accents {
		if strings.EqualFold(a, cfg.Accent) {
			accent = i
		}
	}
	m := Model{
		sched:  sched,
		sound:  sound,
		logger: logger,
		tick:   tick,
		clock:  time.Now,
		accent: accent,
		keys:   defaultKeys(),
		help:   help.New(),

		themeName: cfg.Theme,
	}
	// a custom accent outside the palette is used until the first cycle
	if cfg.Accent != "" && !strings.EqualFold(cfg.Accent, Accents[accent]) {
		m.theme = ThemeFor(cfg.Theme, cfg.Accent)
	} else {
		m.theme = ThemeFor(cfg.Theme, Accents[accent])
	}
	m.refresh(m.clock())
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tickCmd(), waitForChange(m.sched.State().Changes()))
}

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return changedMsg{}
	}
}

func (m *Model) refresh(now time.Time) {
	m.now = now
	m.view = m.sched.Project(now)
	if n := len(m.view.Alarms); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		if a, ok := m.sched.Tick(msg.now); ok {
			m.logger.Info("alarm ringing", "id", a.ID, "time", a.Time, "label", a.Title())
		}
		m.refresh(msg.now)
		return m, m.tickCmd()

	case changedMsg:
		m.refresh(m.now)
		return m, waitForChange(m.sched.State().Changes())

	case tea.KeyMsg:
		if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
			return m, tea.Quit
		}
		if m.view.Ringing != nil {
			return m.updateRinging(msg)
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeHelp:
			m.mode = modeNormal
			return m, nil
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateRinging(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Snooze):
		if a, ok := m.sched.Snooze(m.now); ok {
			m.status = fmt.Sprintf("Snoozed until %s", clock.FormatAlarmDisplay(a.Time, m.view.Use24h))
		}
	case key.Matches(msg, m.keys.Stop):
		m.sched.Stop()
		m.status = "Alarm stopped"
	case key.Matches(msg, m.keys.Quit):
		m.sched.Stop()
		return m, tea.Quit
	default:
		return m, nil
	}
	m.refresh(m.now)
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	st := m.sched.State()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.view.Alarms)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.form = newAddForm()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Toggle):
		if a, ok := m.selected(); ok {
			st.Toggle(a.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if a, ok := m.selected(); ok {
			st.Delete(a.ID)
			m.status = fmt.Sprintf("Deleted %s", a.Title)
		}
	case key.Matches(msg, m.keys.Format):
		st.SetUse24h(!st.Use24h())
	case key.Matches(msg, m.keys.Sound):
		if m.sound != nil {
			m.sound.SetSound(!m.sound.SoundEnabled())
			m.status = "Sound " + onOff(m.sound.SoundEnabled())
		}
	case key.Matches(msg, m.keys.Accent):
		m.accent = (m.accent + 1) % len(Accents)
		m.theme = ThemeFor(m.themeName, Accents[m.accent])
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
	default:
		return m, nil
	}
	m.refresh(m.now)
	return m, nil
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		return m, nil
	case "tab", "shift+tab":
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.label.Blur()
			f.time.Focus()
		} else {
			f.time.Blur()
			f.label.Focus()
		}
		return m, nil
	case "ctrl+e":
		f.enabled = !f.enabled
		return m, nil
	case "enter":
		raw := strings.TrimSpace(f.time.Value())
		if raw == "" {
			return m, nil
		}
		t24, err := clock.ParseAlarmTime(raw, m.now)
		if err != nil {
			f.err = err.Error()
			return m, nil
		}
		a, ok := m.sched.State().Add(t24, f.label.Value(), f.enabled)
		if !ok {
			f.err = "invalid time"
			return m, nil
		}
		m.mode = modeNormal
		m.status = fmt.Sprintf("Added %s at %s", a.Title(), clock.FormatAlarmDisplay(a.Time, m.view.Use24h))
		m.refresh(m.now)
		m.cursor = len(m.view.Alarms) - 1
		return m, nil
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.time, cmd = f.time.Update(msg)
	} else {
		f.label, cmd = f.label.Update(msg)
	}
	f.err = ""
	return m, cmd
}

func (m Model) selected() (alarm.AlarmView, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Alarms) {
		return alarm.AlarmView{}, false
	}
	return m.view.Alarms[m.cursor], true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m Model) View() string {
	th := m.theme

	left := lipgloss.JoinVertical(lipgloss.Center,
		th.Face.Render(renderFace(m.view.Hands, faceRadius)),
		"",
		th.Digital.Render(m.view.Digital),
		th.Label.Render(m.view.Date),
	)
	right := m.alarmsPanel()
	body := lipgloss.JoinHorizontal(lipgloss.Top, th.Panel.Render(left), "  ", th.Panel.Render(right))

	var footer string
	switch m.mode {
	case modeHelp:
		footer = m.help.FullHelpView(m.keys.FullHelp())
	default:
		footer = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	screen := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("chime"),
		body,
		m.statusBar(),
		footer,
	)

	if m.view.Ringing != nil {
		return overlayCenter(screen, m.ringingModal())
	}
	if m.mode == modeAdd {
		return overlayCenter(screen, m.addModal())
	}
	return screen
}

func (m Model) alarmsPanel() string {
	th := m.theme
	var b strings.Builder
	b.WriteString(th.Title.Render("Alarms"))
	b.WriteString("\n\n")
	if len(m.view.Alarms) == 0 {
		b.WriteString(th.Hint.Render("No alarms yet. Press a to add one."))
		return b.String()
	}
	for i, a := range m.view.Alarms {
		cursor := "  "
		if i == m.cursor {
			cursor = th.Cursor.Render("› ")
		}
		state := th.Off.Render("OFF")
		if a.Enabled {
			state = th.On.Render("ON ")
		}
		line := fmt.Sprintf("%s%-9s %s  %s", cursor, a.Display, state, th.Value.Render(a.Title))
		if a.Enabled && !a.Next.IsZero() {
			line += "  " + th.Hint.Render(humanize.RelTime(a.Next, m.now, "ago", "from now"))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) statusBar() string {
	parts := []string{}
	if m.view.Use24h {
		parts = append(parts, "24h")
	} else {
		parts = append(parts, "12h")
	}
	if m.sound != nil {
		parts = append(parts, "sound "+onOff(m.sound.SoundEnabled()))
	}
	parts = append(parts, fmt.Sprintf("snooze %s", m.sched.SnoozeLength()))
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return m.theme.StatusBar.Render(strings.Join(parts, " · "))
}

func (m Model) ringingModal() string {
	th := m.theme
	r := m.view.Ringing
	body := lipgloss.JoinVertical(lipgloss.Center,
		th.ModalTitle.Render("⏰ "+r.Title+" — "+r.Display),
		"",
		th.Hint.Render("s stop · z snooze "+m.sched.SnoozeLength().String()),
	)
	return th.ModalBox.Render(body)
}

func (m Model) addModal() string {
	th := m.theme
	f := m.form
	enabled := "[x] enabled"
	if !f.enabled {
		enabled = "[ ] enabled"
	}
	lines := []string{
		th.Title.Render("New alarm"),
		"",
		f.time.View(),
		f.label.View(),
		th.Label.Render(enabled),
	}
	if f.err != "" {
		lines = append(lines, "", th.Error.Render(f.err))
	}
	lines = append(lines, "", th.Hint.Render("enter save · tab switch · ctrl+e enabled · esc cancel"))
	return th.ModalBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func overlayCenter(base, modal string) string {
	baseH := lipgloss.Height(base)
	mh := lipgloss.Height(modal)
	topPad := max(0, (baseH-mh)/3)
	return lipgloss.JoinVertical(lipgloss.Left, strings.Repeat("\n", topPad), lipgloss.PlaceHorizontal(lipgloss.Width(base), lipgloss.Center, modal), "")
}

// Run starts the full-screen program and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
