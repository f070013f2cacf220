package issue

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/thomas-vilte/issuemate/internal/models"
)

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true)
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	pickerLinkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
	pickerDimStyle    = lipgloss.NewStyle().Faint(true)
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// pickerModel is the terminal version of the platform's "new issue" menu:
// one row per template, then the blank-issue row, then the contact links.
type pickerModel struct {
	title   string
	entries []models.ChooserEntry
	keys    pickerKeyMap
	cursor  int
	choice  int
	aborted bool
}

func newPickerModel(title string, entries []models.ChooserEntry) pickerModel {
	return pickerModel{title: title, entries: entries, keys: defaultPickerKeys(), choice: -1}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveCursor(-1), nil
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveCursor(1), nil
	case key.Matches(keyMsg, m.keys.Select):
		m.choice = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) moveCursor(delta int) pickerModel {
	next := m.cursor + delta
	if next >= 0 && next < len(m.entries) {
		m.cursor = next
	}
	return m
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, entry := range m.entries {
		marker := "  "
		name := entry.Name
		switch {
		case entry.IsLink:
			name = pickerLinkStyle.Render(name)
		case i == m.cursor:
			name = pickerCursorStyle.Render(name)
		}
		if i == m.cursor {
			marker = pickerCursorStyle.Render("> ")
		}
		b.WriteString(marker + name + "\n")

		if entry.About != "" {
			b.WriteString("    " + pickerDimStyle.Render(entry.About) + "\n")
		}
		if entry.IsLink && entry.URL != "" {
			b.WriteString("    " + pickerDimStyle.Render(entry.URL) + "\n")
		}
	}

	b.WriteString("\n" + pickerDimStyle.Render(m.helpLine()) + "\n")
	return b.String()
}

func (m pickerModel) helpLine() string {
	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// runPicker shows the menu and returns the chosen entry. A nil entry with
// a nil error means the user backed out.
func runPicker(title string, entries []models.ChooserEntry) (*models.ChooserEntry, error) {
	final, err := tea.NewProgram(newPickerModel(title, entries)).Run()
	if err != nil {
		return nil, err
	}

	model, ok := final.(pickerModel)
	if !ok || model.aborted || model.choice < 0 || model.choice >= len(model.entries) {
		return nil, nil
	}
	entry := model.entries[model.choice]
	return &entry, nil
}
