package cards

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vavargasdev/vanotes/internal/config"
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0AF")).
			Bold(true).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")).
			Padding(0, 1)

	statusBannerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#0AF", Dark: "#0AF"})

	statusStyle = statusBannerStyle.Render

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1).
			MarginBottom(1)

	focusedCardStyle = cardStyle.Copy().
				BorderForeground(lipgloss.Color("#0AF"))

	attachmentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#767676")).
			Italic(true)

	previewStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#334455"))

	searchStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#334455")).
			Padding(0, 1)

	focusedSearchStyle = searchStyle.Copy().
				BorderForeground(lipgloss.Color("#0AF"))

	tagStyle = lipgloss.NewStyle().
			Padding(0, 1).
			MarginRight(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)

// categoryStyle renders a card header band in the category's palette
// color so cards read the same as their tag chips.
func categoryStyle(cfg *config.Config, colorKey string) lipgloss.Style {
	c := cfg.PaletteColorFor(colorKey)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Base())).
		Foreground(lipgloss.Color(cfg.UIColor("wh-1", "#FFF"))).
		Bold(true).
		Padding(0, 1)
}

// tagChipStyle renders a tag bar entry. Selected tags use the base
// shade, unselected ones the light shade.
func tagChipStyle(cfg *config.Config, colorKey string, selected bool) lipgloss.Style {
	c := cfg.PaletteColorFor(colorKey)
	bg := c.Light()
	fg := cfg.UIColor("gr-0", "#2E2E2E")
	if selected {
		bg = c.Base()
		fg = cfg.UIColor("wh-1", "#FFF")
	}
	return tagStyle.Copy().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}
