package trackpanel

import "github.com/avrel/setlist/internal/ui/styles"

var (
	headerStyle       = styles.T().S().Title
	selectHeaderStyle = styles.T().S().Selected.Bold(true)
	modeIconStyle     = styles.T().S().Muted
)
