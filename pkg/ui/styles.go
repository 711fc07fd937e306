package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of terminal colors a theme paints with
type Palette struct {
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Primary lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
}

var palettes = map[string]Palette{
	// auto follows the terminal background
	"auto": {
		Success: lipgloss.AdaptiveColor{Light: "28", Dark: "2"},
		Error:   lipgloss.AdaptiveColor{Light: "124", Dark: "1"},
		Primary: lipgloss.AdaptiveColor{Light: "90", Dark: "5"},
		Info:    lipgloss.AdaptiveColor{Light: "30", Dark: "6"},
		Muted:   lipgloss.AdaptiveColor{Light: "244", Dark: "8"},
		Warning: lipgloss.AdaptiveColor{Light: "130", Dark: "3"},
		Accent:  lipgloss.AdaptiveColor{Light: "25", Dark: "4"},
		Text:    lipgloss.AdaptiveColor{Light: "235", Dark: "7"},
	},
	"dark": {
		Success: lipgloss.Color("10"),
		Error:   lipgloss.Color("9"),
		Primary: lipgloss.Color("13"),
		Info:    lipgloss.Color("14"),
		Muted:   lipgloss.Color("245"),
		Warning: lipgloss.Color("11"),
		Accent:  lipgloss.Color("12"),
		Text:    lipgloss.Color("252"),
	},
	"light": {
		Success: lipgloss.Color("28"),
		Error:   lipgloss.Color("124"),
		Primary: lipgloss.Color("90"),
		Info:    lipgloss.Color("30"),
		Muted:   lipgloss.Color("244"),
		Warning: lipgloss.Color("130"),
		Accent:  lipgloss.Color("25"),
		Text:    lipgloss.Color("235"),
	},
	"notty": {
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Primary: lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
	},
}

var (
	// Active colors, set by SetTheme
	ColorSuccess lipgloss.TerminalColor
	ColorError   lipgloss.TerminalColor
	ColorPrimary lipgloss.TerminalColor
	ColorInfo    lipgloss.TerminalColor
	ColorMuted   lipgloss.TerminalColor
	ColorWarning lipgloss.TerminalColor
	ColorAccent  lipgloss.TerminalColor
	ColorDefault lipgloss.TerminalColor

	// Message styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Component styles
	StyleTitle       lipgloss.Style
	StyleHeader      lipgloss.Style
	StyleSubtle      lipgloss.Style
	StyleBold        lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableRule   lipgloss.Style
	StyleHighlight   lipgloss.Style
	StyleTab         lipgloss.Style
	StyleTabActive   lipgloss.Style

	categoryStyles map[string]lipgloss.Style

	// Status icons
	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconHouse   = "🏠"
	IconBuild   = "🔨"
	IconSearch  = "🔍"
	IconTip     = "💡"
)

func init() {
	SetTheme("auto")
}

// Themes returns the accepted color_theme values
func Themes() []string {
	return []string{"auto", "dark", "light", "notty"}
}

// SetTheme rebuilds every style from the named palette.
// Unknown names fall back to "auto".
func SetTheme(theme string) {
	p, ok := palettes[theme]
	if !ok {
		theme = "auto"
		p = palettes[theme]
	}
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	ColorSuccess, ColorError, ColorPrimary, ColorInfo = p.Success, p.Error, p.Primary, p.Info
	ColorMuted, ColorWarning, ColorAccent, ColorDefault = p.Muted, p.Warning, p.Accent, p.Text

	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	StyleSuccess = fg(p.Success).Bold(true)
	StyleError = fg(p.Error).Bold(true)
	StylePrimary = fg(p.Primary).Bold(true)
	StyleInfo = fg(p.Info)
	StyleMuted = fg(p.Muted)
	StyleWarning = fg(p.Warning).Bold(true)
	StyleAccent = fg(p.Accent)

	StyleTitle = fg(p.Primary).Bold(true).Underline(true)
	StyleHeader = fg(p.Primary).Bold(true)
	StyleSubtle = fg(p.Muted).Italic(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleTableHeader = fg(p.Primary).Bold(true)
	StyleTableRule = fg(p.Muted)
	StyleHighlight = fg(p.Warning).Bold(true).Underline(true)
	StyleTab = fg(p.Muted).Padding(0, 1)
	StyleTabActive = fg(p.Primary).Bold(true).Underline(true).Padding(0, 1)

	categoryStyles = map[string]lipgloss.Style{
		"structural": fg(p.Warning),
		"exterior":   fg(p.Info),
		"interior":   fg(p.Success),
	}
}

// categoryStyle returns the tag color of a topic category
func categoryStyle(category string) lipgloss.Style {
	if s, ok := categoryStyles[category]; ok {
		return s
	}
	return StyleAccent
}

// FormatCategory renders a category as a colored "[tag]"
func FormatCategory(category string) string {
	return categoryStyle(category).Render("[" + category + "]")
}

func withIcon(style lipgloss.Style, icon, msg string) string {
	return style.Render(icon + " " + msg)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return withIcon(StyleSuccess, IconSuccess, msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return withIcon(StyleError, IconError, msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return withIcon(StyleInfo, IconInfo, msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return withIcon(StyleWarning, IconWarning, msg)
}

// FormatTip returns a tip message
func FormatTip(msg string) string {
	return withIcon(StyleAccent, IconTip, msg)
}

func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}
