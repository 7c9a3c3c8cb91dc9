package cards

import "github.com/charmbracelet/bubbles/key"

type cardKeyMap struct {
	focusSearch      key.Binding
	focusTags        key.Binding
	submitSearch     key.Binding
	exitAltView      key.Binding
	toggleTag        key.Binding
	clearTags        key.Binding
	reset            key.Binding
	nextCard         key.Binding
	prevCard         key.Binding
	nextField        key.Binding
	prevField        key.Binding
	newNote          key.Binding
	deleteNote       key.Binding
	copyBody         key.Binding
	pasteImage       key.Binding
	deleteAttachment key.Binding
	togglePreview    key.Binding
	toggleHelp       key.Binding
	quit             key.Binding
}

func newCardKeyMap() *cardKeyMap {
	return &cardKeyMap{
		focusSearch: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "search"),
		),
		focusTags: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "tags"),
		),
		submitSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "apply search"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to cards"),
		),
		toggleTag: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle tag"),
		),
		clearTags: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear tags"),
		),
		reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset search and tags"),
		),
		nextCard: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next card"),
		),
		prevCard: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "previous card"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		prevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		newNote: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "new note"),
		),
		deleteNote: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete note"),
		),
		copyBody: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy text"),
		),
		pasteImage: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste image"),
		),
		deleteAttachment: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "remove last image"),
		),
		togglePreview: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle preview"),
		),
		toggleHelp: key.NewBinding(
			key.WithKeys("ctrl+h"),
			key.WithHelp("ctrl+h", "toggle help"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

func (m cardKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.focusSearch,
		m.focusTags,
		m.submitSearch,
		m.toggleTag,
		m.clearTags,
		m.reset,
		m.nextCard,
		m.prevCard,
		m.nextField,
		m.newNote,
		m.deleteNote,
		m.copyBody,
		m.pasteImage,
		m.deleteAttachment,
		m.togglePreview,
		m.toggleHelp,
		m.quit,
	}
}
