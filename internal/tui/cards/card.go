package cards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vavargasdev/vanotes/internal/category"
	"github.com/vavargasdev/vanotes/internal/config"
	"github.com/vavargasdev/vanotes/internal/note"
	cardsvc "github.com/vavargasdev/vanotes/internal/services/cards"
)

const (
	fieldCategory = iota
	fieldTitle
	fieldBody
	fieldCount
)

// cardModel is the editable view of one stored row. The inputs hold
// the live values; the embedded note keeps the id, date, and
// attachment list the store knows about.
type cardModel struct {
	note     note.Note
	category textinput.Model
	title    textinput.Model
	body     textarea.Model
	field    int
}

func newCardModel(n note.Note, label string) cardModel {
	c := textinput.New()
	c.Placeholder = "Category"
	c.CharLimit = 30
	c.Prompt = ""
	c.SetValue(label)

	t := textinput.New()
	t.Placeholder = "Title"
	t.CharLimit = 60
	t.Prompt = ""
	t.SetValue(n.Title)

	b := textarea.New()
	b.Placeholder = "Text"
	b.ShowLineNumbers = false
	b.SetHeight(4)
	b.SetValue(n.DecodeBody())

	return cardModel{
		note:     n,
		category: c,
		title:    t,
		body:     b,
		field:    fieldTitle,
	}
}

func (c cardModel) id() int64 {
	return c.note.ID
}

// fields snapshots the live input values for the save path.
func (c cardModel) fields() cardsvc.Fields {
	return cardsvc.Fields{
		ID:            c.note.ID,
		CategoryLabel: strings.TrimSpace(c.category.Value()),
		Title:         strings.TrimSpace(c.title.Value()),
		Body:          c.body.Value(),
	}
}

func (c *cardModel) focus() tea.Cmd {
	switch c.field {
	case fieldCategory:
		return c.category.Focus()
	case fieldTitle:
		return c.title.Focus()
	default:
		return c.body.Focus()
	}
}

func (c *cardModel) blur() {
	c.category.Blur()
	c.title.Blur()
	c.body.Blur()
}

func (c *cardModel) cycleField(delta int) tea.Cmd {
	c.blur()
	c.field = (c.field + delta + fieldCount) % fieldCount
	return c.focus()
}

func (c *cardModel) setWidth(w int) {
	c.category.Width = w - 4
	c.title.Width = w - 4
	c.body.SetWidth(w - 4)
}

func (c cardModel) update(msg tea.Msg) (cardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch c.field {
	case fieldCategory:
		c.category, cmd = c.category.Update(msg)
	case fieldTitle:
		c.title, cmd = c.title.Update(msg)
	default:
		c.body, cmd = c.body.Update(msg)
	}
	return c, cmd
}

func (c cardModel) view(cfg *config.Config, reg *category.Registry, width int, focused bool) string {
	_, entry := reg.Resolve(c.note.Category)
	header := categoryStyle(cfg, entry.Color).Render(c.category.View())
	date := countStyle.Render(c.note.DisplayDate())

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, header, date),
		c.title.View(),
		c.body.View(),
	}
	if n := len(c.note.Attachments); n > 0 {
		lines = append(lines, attachmentStyle.Render(
			fmt.Sprintf("%d image(s): %s", n, strings.Join(c.note.Attachments, ", ")),
		))
	}

	style := cardStyle
	if focused {
		style = focusedCardStyle
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}
