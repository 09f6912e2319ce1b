// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"strconv"

	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/hrms/internal/core/notify"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorBackground lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorInfo       lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style
	LabelStyle         lipgloss.Style
	ValueStyle         lipgloss.Style

	// TUI shared styles.
	TitleStyle      lipgloss.Style
	SubtitleStyle   lipgloss.Style
	TabActiveStyle  lipgloss.Style
	TabStyle        lipgloss.Style
	StatusBarStyle  lipgloss.Style
	HelpStyle       lipgloss.Style
	StatCardStyle   lipgloss.Style
	StatValueStyle  lipgloss.Style
	StatLabelStyle  lipgloss.Style
	PresentStyle    lipgloss.Style
	AbsentStyle     lipgloss.Style
	EmptyStateStyle lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	// Toast styles: a bordered box per level.
	ToastStyle        lipgloss.Style
	ToastSuccessStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorInfo = p.Info
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	LabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Width(14)
	ValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	StatusBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 2).
		Width(20)
	StatValueStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	PresentStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
	AbsentStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(42)
	ToastSuccessStyle = ToastStyle.BorderForeground(ColorSuccess)
	ToastInfoStyle = ToastStyle.BorderForeground(ColorInfo)
	ToastWarningStyle = ToastStyle.BorderForeground(ColorWarning)
	ToastErrorStyle = ToastStyle.BorderForeground(ColorError)
}

// LevelColor returns the accent color for a notification level.
func LevelColor(l notify.Level) lipgloss.Color {
	switch l {
	case notify.LevelSuccess:
		return ColorSuccess
	case notify.LevelWarning:
		return ColorWarning
	case notify.LevelError:
		return ColorError
	default:
		return ColorInfo
	}
}

// LevelIcon returns the glyph shown beside a notification.
func LevelIcon(l notify.Level) string {
	switch l {
	case notify.LevelSuccess:
		return IconSuccess
	case notify.LevelWarning:
		return IconWarning
	case notify.LevelError:
		return IconError
	default:
		return IconInfo
	}
}

// ToastStyleFor returns the box style for a notification level.
func ToastStyleFor(l notify.Level) lipgloss.Style {
	switch l {
	case notify.LevelSuccess:
		return ToastSuccessStyle
	case notify.LevelWarning:
		return ToastWarningStyle
	case notify.LevelError:
		return ToastErrorStyle
	default:
		return ToastInfoStyle
	}
}

// FormTheme returns a huh theme that follows the active palette.
func FormTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorSecondary)
	t.Focused.Option = t.Focused.Option.Foreground(ColorForeground)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorSuccess)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(ColorBackground).Background(ColorPrimary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(ColorMuted).Background(ColorSurface)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorSecondary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(ColorMuted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(ColorSecondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted).Bold(false)

	return t
}

func colorPtr(c lipgloss.Color) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorPtr(ColorForeground)
	primary := colorPtr(ColorPrimary)
	secondary := colorPtr(ColorSecondary)
	muted := colorPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = colorPtr(ColorBackground)
	cfg.H1.BackgroundColor = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

// StatCard renders a boxed counter with a caption below it.
func StatCard(label string, value int) string {
	return StatCardStyle.Render(
		StatValueStyle.Render(strconv.Itoa(value)) + "\n" + StatLabelStyle.Render(label),
	)
}
