// Package ui provides layout constants shared across UI components.
package ui

const (
	// ScrollMargin is the number of rows kept visible above and below the
	// cursor while scrolling.
	ScrollMargin = 3

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// HeaderHeight is the space for a panel header plus its separator.
	HeaderHeight = 2

	// PanelOverhead is the total vertical overhead of a bordered panel
	// with a header: listHeight = panelHeight - PanelOverhead.
	PanelOverhead = BorderHeight + HeaderHeight
)
