// Package term draws a mosaic in the terminal with Bubbletea.
//
// Each element is one pixel; two pixel rows share a terminal row through
// the upper half block "▀". Depth shows as a sideways parallax shift and a
// fade toward the background. Space, enter or a left click toggles the
// scatter; q, esc or ctrl+c quits.
//
//	m := term.New(ctrl, term.DefaultOptions())
//	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
//		log.Fatal(err)
//	}
package term
