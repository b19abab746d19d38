package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vvka-141/fman/pkg/fman"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	// Listing table styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	DirectoryCellStyle = CellStyle.
				Foreground(ColorPrimary)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// ListingHeaders are the column titles of the ls table.
var ListingHeaders = []string{"(index)", "Name", "Type"}

// Theme renders session output. A plain theme returns text unchanged so
// piped output and transcripts stay free of escape sequences.
type Theme struct {
	styled bool
}

// NewTheme returns a theme that applies colour when styled is true.
func NewTheme(styled bool) Theme {
	return Theme{styled: styled}
}

// Styled reports whether the theme applies colour.
func (t Theme) Styled() bool { return t.styled }

func (t Theme) Title(s string) string   { return t.render(TitleStyle, s) }
func (t Theme) Path(s string) string    { return t.render(PathStyle, s) }
func (t Theme) Prompt(s string) string  { return t.render(PromptStyle, s) }
func (t Theme) Success(s string) string { return t.render(SuccessStyle, s) }
func (t Theme) Error(s string) string   { return t.render(ErrorStyle, s) }

func (t Theme) render(style lipgloss.Style, s string) string {
	if !t.styled {
		return s
	}
	return style.Render(s)
}

// Listing renders entries as a bordered table with a zero-based index column.
func (t Theme) Listing(entries []fman.FileEntry) string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{strconv.Itoa(i), e.Name, string(e.Kind)})
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(ListingHeaders...).
		Rows(rows...)

	if !t.styled {
		return tbl.StyleFunc(func(row, col int) lipgloss.Style {
			return CellStyle
		}).String()
	}

	return tbl.
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case row >= 0 && row < len(entries) && entries[row].Kind == fman.EntryDirectory:
				return DirectoryCellStyle
			default:
				return CellStyle
			}
		}).
		String()
}
