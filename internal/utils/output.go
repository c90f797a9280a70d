package utils

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/ramanasai/chime/internal/alarm"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatCSV     OutputFormat = "csv"
	FormatCompact OutputFormat = "compact"
	FormatQuiet   OutputFormat = "quiet"
)

// ShortIDLen is how many id characters the listings show.
const ShortIDLen = 8

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format OutputFormat
	Width  int
	Color  bool
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	width := 100
	if colEnv := os.Getenv("COLUMNS"); colEnv != "" {
		if v, err := strconv.Atoi(colEnv); err == nil && v > 40 {
			width = v
		}
	}
	return &RenderConfig{
		Format: FormatDefault,
		Width:  width,
		Color:  true,
	}
}

// AlarmRow is one alarm as the CLI prints it.
type AlarmRow struct {
	ID         string     `json:"id"`
	Time       string     `json:"time"`
	Display    string     `json:"display"`
	Label      string     `json:"label"`
	Enabled    bool       `json:"enabled"`
	FiredToday bool       `json:"fired_today"`
	Next       *time.Time `json:"next,omitempty"`
}

// AlarmList is the CLI listing payload.
type AlarmList struct {
	Now    time.Time  `json:"now"`
	Use24h bool       `json:"use24h"`
	Alarms []AlarmRow `json:"alarms"`
}

// NewAlarmList converts a scheduler projection.
func NewAlarmList(v alarm.View) *AlarmList {
	list := &AlarmList{Now: v.Now, Use24h: v.Use24h, Alarms: make([]AlarmRow, 0, len(v.Alarms))}
	for _, a := range v.Alarms {
		row := AlarmRow{
			ID:         a.ID,
			Time:       a.Time,
			Display:    a.Display,
			Label:      a.Title,
			Enabled:    a.Enabled,
			FiredToday: a.FiredToday,
		}
		if !a.Next.IsZero() {
			next := a.Next
			row.Next = &next
		}
		list.Alarms = append(list.Alarms, row)
	}
	return list
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	ID        lipgloss.Style
	Time      lipgloss.Style
	Label     lipgloss.Style
	On        lipgloss.Style
	Off       lipgloss.Style
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{
		config: config,
		styles: initStyles(config.Color),
	}
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.ID = lipgloss.NewStyle().Faint(true)
		styles.Time = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F9E2AF"))
		styles.Label = lipgloss.NewStyle()
		styles.On = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Off = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#F38BA8"))
	} else {
		// Monochrome styles
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.ID = lipgloss.NewStyle()
		styles.Time = lipgloss.NewStyle()
		styles.Label = lipgloss.NewStyle()
		styles.On = lipgloss.NewStyle()
		styles.Off = lipgloss.NewStyle()
	}

	return styles
}

// RenderAlarmList renders alarms according to the configured format
func (r *Renderer) RenderAlarmList(list *AlarmList) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		return r.renderJSON(list)
	case FormatCSV:
		return r.renderCSV(list)
	case FormatTable:
		return r.renderTable(list)
	case FormatCompact:
		return r.renderCompact(list)
	case FormatQuiet:
		return r.renderQuiet(list)
	case FormatDefault, "":
		return r.renderDefault(list)
	default:
		return "", fmt.Errorf("unknown format %q", r.config.Format)
	}
}

func (r *Renderer) renderDefault(list *AlarmList) (string, error) {
	var b strings.Builder
	sep := r.styles.Separator.Render(strings.Repeat("─", min(r.config.Width, 120)))

	b.WriteString(r.styles.Title.Render("Alarms"))
	b.WriteString("  ")
	b.WriteString(r.styles.Meta.Render(fmt.Sprintf("%d total", len(list.Alarms))))
	b.WriteString("\n")
	b.WriteString(sep)
	b.WriteString("\n")

	if len(list.Alarms) == 0 {
		b.WriteString(r.styles.Meta.Render("No alarms yet. Add one with: chime add 07:00 wake up"))
		b.WriteString("\n")
		return b.String(), nil
	}

	for _, a := range list.Alarms {
		badge := r.styles.Off.Render("OFF")
		if a.Enabled {
			badge = r.styles.On.Render("ON ")
		}
		line := strings.Join([]string{
			r.styles.ID.Render("[" + ShortID(a.ID) + "]"),
			r.styles.Time.Render(fmt.Sprintf("%-8s", a.Display)),
			badge,
			r.styles.Label.Render(a.Label),
		}, "  ")
		b.WriteString(line)
		b.WriteString("\n")

		if a.Next != nil {
			hint := "rings " + humanize.RelTime(*a.Next, list.Now, "ago", "from now")
			if a.FiredToday {
				hint += " (already rang today)"
			}
			b.WriteString(r.styles.Meta.Render("  " + hint))
			b.WriteString("\n")
		}
	}
	b.WriteString(sep)
	b.WriteString("\n")
	return b.String(), nil
}

func (r *Renderer) renderJSON(list *AlarmList) (string, error) {
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func (r *Renderer) renderCSV(list *AlarmList) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"id", "time", "label", "enabled", "fired_today", "next"})
	for _, a := range list.Alarms {
		next := ""
		if a.Next != nil {
			next = a.Next.Format(time.RFC3339)
		}
		_ = w.Write([]string{
			a.ID,
			a.Time,
			a.Label,
			strconv.FormatBool(a.Enabled),
			strconv.FormatBool(a.FiredToday),
			next,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return b.String(), nil
}

func (r *Renderer) renderTable(list *AlarmList) (string, error) {
	var b strings.Builder

	b.WriteString("ID\tTime\tState\tLabel\n")
	b.WriteString(strings.Repeat("-", min(r.config.Width, 60)))
	b.WriteString("\n")

	for _, a := range list.Alarms {
		state := "off"
		if a.Enabled {
			state = "on"
		}
		label := strings.ReplaceAll(a.Label, "\n", " ")
		if len(label) > 50 {
			label = label[:47] + "..."
		}
		b.WriteString(strings.Join([]string{ShortID(a.ID), a.Display, state, label}, "\t"))
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (r *Renderer) renderCompact(list *AlarmList) (string, error) {
	var b strings.Builder
	for _, a := range list.Alarms {
		mark := "-"
		if a.Enabled {
			mark = "+"
		}
		fmt.Fprintf(&b, "%s %s %s\n", mark, r.styles.Time.Render(a.Display), a.Label)
	}
	return b.String(), nil
}

// renderQuiet prints only ids, for scripting
func (r *Renderer) renderQuiet(list *AlarmList) (string, error) {
	var b strings.Builder
	for _, a := range list.Alarms {
		b.WriteString(a.ID)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// ShortID trims a uuid for display.
func ShortID(id string) string {
	if len(id) <= ShortIDLen {
		return id
	}
	return id[:ShortIDLen]
}
