package term

import tea "github.com/charmbracelet/bubbletea"

const helpText = "space/click toggle  q quit"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func isToggle(msg tea.KeyMsg) bool {
	switch msg.String() {
	case " ", "enter":
		return true
	}
	return false
}
