// Package cards renders the scrollable note-card screen: a search
// input and category tag bar on top, the matching cards below, and a
// styled preview of the focused card beside them.
package cards

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vavargasdev/vanotes/internal/attachment"
	"github.com/vavargasdev/vanotes/internal/cache"
	cardsvc "github.com/vavargasdev/vanotes/internal/services/cards"
	"github.com/vavargasdev/vanotes/internal/state"
)

const previewCacheSize = 64

type focusArea int

const (
	focusCards focusArea = iota
	focusSearch
	focusTags
)

type CardListModel struct {
	state       *state.State
	cache       *cache.Cache
	keys        *cardKeyMap
	search      textinput.Model
	tags        tagBar
	cards       []cardModel
	selected    int
	focus       focusArea
	preview     string
	showPreview bool
	showHelp    bool
	status      string
	total       int
	width       int
	height      int
}

func NewCardListModel(s *state.State) (*CardListModel, error) {
	c, err := cache.New(previewCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview cache: %w", err)
	}

	search := textinput.New()
	search.Placeholder = "Search notes"
	search.CharLimit = 120
	search.Prompt = ""

	m := &CardListModel{
		state:       s,
		cache:       c,
		keys:        newCardKeyMap(),
		search:      search,
		tags:        newTagBar(s.Registry),
		showPreview: true,
	}
	m.refresh()
	m.focusSelected()
	return m, nil
}

func (m CardListModel) Init() tea.Cmd {
	return nil
}

func (m *CardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeCards()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			m.flushFocused()
			return m, tea.Quit
		}

		switch m.focus {
		case focusSearch:
			return m.handleSearchUpdate(msg)
		case focusTags:
			return m.handleTagsUpdate(msg)
		default:
			return m.handleCardsUpdate(msg)
		}
	}

	return m, nil
}

func (m *CardListModel) handleSearchUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitAltView):
		m.search.Blur()
		m.focus = focusCards
		return m, m.focusSelected()

	case key.Matches(msg, m.keys.submitSearch):
		m.search.Blur()
		m.focus = focusCards
		m.refresh()
		return m, m.focusSelected()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *CardListModel) handleTagsUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitAltView):
		m.focus = focusCards
		return m, m.focusSelected()

	case key.Matches(msg, m.keys.toggleTag):
		if tag, selected := m.tags.toggle(); tag != "" {
			if selected {
				m.state.List.SetCurrentTag(tag)
			}
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.clearTags):
		if m.tags.clear() {
			m.refresh()
		}
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.tags.move(-1)
	case "right", "l":
		m.tags.move(1)
	}
	return m, nil
}

func (m *CardListModel) handleCardsUpdate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.focusSearch):
		m.blurSelected()
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.focusTags):
		m.blurSelected()
		m.focus = focusTags
		return m, nil

	case key.Matches(msg, m.keys.nextField):
		if c := m.focusedCard(); c != nil {
			return m, c.cycleField(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.prevField):
		if c := m.focusedCard(); c != nil {
			return m, c.cycleField(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.nextCard):
		return m, m.selectCard(1)

	case key.Matches(msg, m.keys.prevCard):
		return m, m.selectCard(-1)

	case key.Matches(msg, m.keys.newNote):
		m.createNote()
		return m, m.focusSelected()

	case key.Matches(msg, m.keys.deleteNote):
		m.deleteNote()
		return m, m.focusSelected()

	case key.Matches(msg, m.keys.copyBody):
		m.copyBody()
		return m, nil

	case key.Matches(msg, m.keys.pasteImage):
		m.pasteImage()
		return m, nil

	case key.Matches(msg, m.keys.deleteAttachment):
		m.deleteAttachment()
		return m, nil

	case key.Matches(msg, m.keys.reset):
		m.search.SetValue("")
		m.tags.clear()
		m.refresh()
		return m, m.focusSelected()

	case key.Matches(msg, m.keys.togglePreview):
		m.showPreview = !m.showPreview
		m.resizeCards()
		return m, nil

	case key.Matches(msg, m.keys.toggleHelp):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if c := m.focusedCard(); c != nil {
		var cmd tea.Cmd
		m.cards[m.selected], cmd = c.update(msg)
		m.handlePreview()
		return m, cmd
	}
	return m, nil
}

func (m CardListModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Notes"))
	b.WriteString("\n")

	search := searchStyle
	if m.focus == focusSearch {
		search = focusedSearchStyle
	}
	b.WriteString(search.Width(m.leftWidth() - 2).Render(m.search.View()))
	b.WriteString("\n")

	if tags := m.tags.view(m.state.Config, m.focus == focusTags); tags != "" {
		b.WriteString(tags)
		b.WriteString("\n")
	}

	b.WriteString(countStyle.Render(fmt.Sprintf("%d note(s)", m.total)))
	b.WriteString("\n\n")

	for i := range m.cards {
		focused := m.focus == focusCards && i == m.selected
		b.WriteString(m.cards[i].view(m.state.Config, m.state.Registry, m.leftWidth()-2, focused))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle(m.status))
		b.WriteString("\n")
	}
	if m.showHelp {
		b.WriteString(helpStyle.Render(renderHelp(m.keys.fullHelp())))
	} else {
		b.WriteString(helpStyle.Render(renderHelp([]key.Binding{
			m.keys.focusSearch, m.keys.focusTags, m.keys.newNote,
			m.keys.nextCard, m.keys.pasteImage, m.keys.toggleHelp, m.keys.quit,
		})))
	}

	left := lipgloss.NewStyle().Width(m.leftWidth()).Render(b.String())
	if !m.showPreview {
		return appStyle.Render(left)
	}

	preview := previewStyle.Render(
		lipgloss.NewStyle().
			MaxWidth(m.width / 2).
			Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)),
	)
	return appStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, preview))
}

func Run(s *state.State) error {
	m, err := NewCardListModel(s)
	if err != nil {
		return err
	}

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}

// refresh saves the focused card, re-queries the store, and rebuilds
// the card models. A refresh that registers a new category also
// rebuilds the tag bar.
func (m *CardListModel) refresh() {
	res, err := m.state.List.Refresh(
		strings.TrimSpace(m.search.Value()),
		m.tags.selectedKeys(),
		m.readFields,
	)
	if err != nil {
		m.status = fmt.Sprintf("Error refreshing notes: %v", err)
		return
	}

	m.cards = m.cards[:0]
	for _, n := range res.Notes {
		_, entry := m.state.Registry.Resolve(n.Category)
		m.cards = append(m.cards, newCardModel(n, entry.Label))
	}
	m.total = res.Total
	m.selected = 0
	m.status = ""
	m.resizeCards()

	if res.RebuildTags {
		m.tags.rebuild(m.state.Registry)
	}
	if len(m.cards) > 0 {
		m.state.Cards.Track(m.cards[0].id())
	}
	m.handlePreview()
}

// selectCard moves focus between cards. Leaving a card commits its
// edits.
func (m *CardListModel) selectCard(delta int) tea.Cmd {
	if len(m.cards) == 0 {
		return nil
	}

	prev := m.selected
	next := (m.selected + delta + len(m.cards)) % len(m.cards)

	res, err := m.state.Cards.Blur(m.cards[next].id(), m.readFields)
	if err != nil {
		m.status = fmt.Sprintf("Error saving note: %v", err)
	} else {
		m.status = ""
		if res.Committed {
			m.reloadCard(prev)
		}
		if res.NewCategory {
			m.tags.rebuild(m.state.Registry)
		}
	}

	m.blurSelected()
	m.selected = next
	m.handlePreview()
	return m.focusSelected()
}

func (m *CardListModel) createNote() {
	if _, err := m.state.List.CreateNote(strings.TrimSpace(m.search.Value())); err != nil {
		m.status = fmt.Sprintf("Error creating note: %v", err)
		return
	}
	m.refresh()
}

func (m *CardListModel) deleteNote() {
	c := m.focusedCard()
	if c == nil {
		return
	}
	if err := m.state.List.DeleteNote(c.id()); err != nil {
		m.status = fmt.Sprintf("Error deleting note: %v", err)
		return
	}
	m.refresh()
}

func (m *CardListModel) copyBody() {
	c := m.focusedCard()
	if c == nil {
		return
	}
	if err := clipboard.WriteAll(c.body.Value()); err != nil {
		m.status = fmt.Sprintf("Error copying text: %v", err)
		return
	}
	m.status = "Note text copied"
}

func (m *CardListModel) pasteImage() {
	c := m.focusedCard()
	if c == nil {
		return
	}

	name, err := m.state.Attachments.Paste(&c.note)
	switch {
	case errors.Is(err, attachment.ErrNoImage):
		m.status = "No image on the clipboard"
	case err != nil:
		m.status = fmt.Sprintf("Error attaching image: %v", err)
	default:
		m.status = fmt.Sprintf("Attached %s", name)
	}
}

func (m *CardListModel) deleteAttachment() {
	c := m.focusedCard()
	if c == nil || len(c.note.Attachments) == 0 {
		return
	}

	last := c.note.Attachments[len(c.note.Attachments)-1]
	if err := m.state.Attachments.Delete(&c.note, last); err != nil {
		m.status = fmt.Sprintf("Error removing image: %v", err)
		return
	}
	m.status = fmt.Sprintf("Removed %s", last)
}

// flushFocused commits the focused card without moving focus, for the
// quit path.
func (m *CardListModel) flushFocused() {
	if res, err := m.state.Cards.Flush(m.readFields); err != nil {
		m.state.Logger.Error("flush on quit failed", "error", err)
	} else if res.NewCategory {
		m.tags.rebuild(m.state.Registry)
	}
}

// readFields hands the save path the live values of the card it asks
// for.
func (m *CardListModel) readFields(id int64) (cardsvc.Fields, error) {
	for i := range m.cards {
		if m.cards[i].id() == id {
			return m.cards[i].fields(), nil
		}
	}
	return cardsvc.Fields{}, fmt.Errorf("note %d is not on screen", id)
}

// reloadCard re-reads a card's row after a save so the stored
// category key and date reflect what was committed.
func (m *CardListModel) reloadCard(i int) {
	if i < 0 || i >= len(m.cards) {
		return
	}
	n, err := m.state.Store.Get(m.cards[i].id())
	if err != nil {
		return
	}
	_, entry := m.state.Registry.Resolve(n.Category)
	m.cards[i] = newCardModel(n, entry.Label)
	m.resizeCards()
}

func (m *CardListModel) focusedCard() *cardModel {
	if m.focus != focusCards || m.selected < 0 || m.selected >= len(m.cards) {
		return nil
	}
	return &m.cards[m.selected]
}

func (m *CardListModel) focusSelected() tea.Cmd {
	if c := m.focusedCard(); c != nil {
		return c.focus()
	}
	return nil
}

func (m *CardListModel) blurSelected() {
	if m.selected >= 0 && m.selected < len(m.cards) {
		m.cards[m.selected].blur()
	}
}

func (m *CardListModel) handlePreview() {
	if m.selected < 0 || m.selected >= len(m.cards) {
		m.preview = ""
		return
	}

	c := m.cards[m.selected]
	body := c.body.Value()
	ck := previewKey(c.id(), body)
	if p, ok := m.cache.Get(ck); ok {
		m.preview = p
		return
	}

	r := renderPreview(body, m.width/2)
	m.cache.Put(ck, r)
	m.preview = r
}

func (m *CardListModel) leftWidth() int {
	if m.width == 0 {
		return 80
	}
	if m.showPreview {
		return m.width / 2
	}
	return m.width - 4
}

func (m *CardListModel) resizeCards() {
	for i := range m.cards {
		m.cards[i].setWidth(m.leftWidth() - 2)
	}
}

func renderHelp(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, fmt.Sprintf("%s %s", b.Help().Key, b.Help().Desc))
	}
	return strings.Join(parts, " · ")
}
