package tui

// confirmModel is the wallet approval prompt shown before a write is signed.
type confirmModel struct {
	address string
	key     string
	reply   chan<- bool
}

func (m confirmModel) answer(approved bool) {
	if m.reply != nil {
		m.reply <- approved
	}
}

func (m confirmModel) View() string {
	content := titleStyle.Render("Confirm transaction") + "\n\n"
	content += "Account: " + m.address + "\n"
	content += "Write:   " + m.key + "\n\n"
	content += "y approve    n reject"
	return overlayBoxStyle.Render(content)
}
