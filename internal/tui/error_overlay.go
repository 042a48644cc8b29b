package tui

// alertModel is a blocking message box dismissed with enter or esc.
type alertModel struct {
	message string
}

func (m alertModel) View() string {
	content := m.message + "\n\nenter / esc close"
	return overlayBoxStyle.Render(content)
}
