package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/box-arcade/internal/core"
	"github.com/vovakirdan/box-arcade/internal/registry"
)

// VariantModel lets users choose the board of a game that offers several.
type VariantModel struct {
	title     string
	variants  []registry.Variant
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *registry.Variant
	quitting  bool
	back      bool
}

// NewVariantModel creates a variant picker for one game.
func NewVariantModel(title string, variants []registry.Variant, width, height int) VariantModel {
	return VariantModel{
		title:     title,
		variants:  variants,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m VariantModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m VariantModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m VariantModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.variants)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.variants) > 0 {
			v := m.variants[m.cursor]
			m.selected = &v
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the variant list.
func (m VariantModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select board:", m.width))
	b.WriteString("\n\n")

	for i, v := range m.variants {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-18s", cursor, v.Label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// spaced turns "Slide" into "S L I D E".
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// Selected returns the chosen variant, or nil if none was chosen.
func (m VariantModel) Selected() *registry.Variant {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m VariantModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m VariantModel) WantsBack() bool {
	return m.back
}

// RunVariantSelector asks for a board and returns its ID. ok is false when
// the player backed out or quit.
func RunVariantSelector(title string, variants []registry.Variant, cfg core.RuntimeConfig) (variant string, ok bool, err error) {
	model := NewVariantModel(title, variants, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", false, err
	}

	m, isVariant := finalModel.(VariantModel)
	if !isVariant || m.Selected() == nil {
		return "", false, nil
	}
	return m.Selected().ID, true, nil
}
