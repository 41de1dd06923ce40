package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup is the contract for modal components layered over the main view.
type Popup interface {
	// Init returns any initial command, such as focusing a text input.
	Init() tea.Cmd

	// Update handles messages and returns the updated popup plus a command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup ready to be composed over the base view.
	View() string

	// SetSize informs the popup of the terminal dimensions.
	SetSize(width, height int)
}
