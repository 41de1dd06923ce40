package trackpanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avrel/setlist/internal/icons"
	"github.com/avrel/setlist/internal/playlist"
	"github.com/avrel/setlist/internal/ui"
	"github.com/avrel/setlist/internal/ui/render"
	"github.com/avrel/setlist/internal/ui/styles"
)

// View renders the panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderWidth
	listHeight := m.listHeight()

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	rows := m.renderRows(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + rows

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader shows the track counter on the left and active mode icons
// on the right. A pending selection replaces the counter.
func (m Model) renderHeader(innerWidth int) string {
	var left string
	var style lipgloss.Style
	if len(m.selected) > 0 {
		left = fmt.Sprintf("Playlist [%d selected]", len(m.selected))
		style = selectHeaderStyle
	} else {
		left = icons.FormatPlaylist(fmt.Sprintf("Playlist (%d/%d)", m.list.CurrentIndex()+1, m.list.Len()))
		style = headerStyle
	}

	modeIcons, iconsWidth := m.renderModeIcons()
	left = render.TruncateAndPad(left, innerWidth-iconsWidth)

	return style.Render(left) + modeIcons
}

// renderModeIcons returns the styled shuffle and repeat icons and their
// display width.
func (m Model) renderModeIcons() (styled string, width int) {
	var parts []string

	if m.list.Shuffled() {
		parts = append(parts, icons.Shuffle())
	}

	switch m.list.Repeat() {
	case playlist.RepeatOff:
		// no icon
	case playlist.RepeatAll:
		parts = append(parts, icons.RepeatAll())
	case playlist.RepeatOne:
		parts = append(parts, icons.RepeatOne())
	}

	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ")
	width = lipgloss.Width(raw) + 1
	return modeIconStyle.Render(raw) + " ", width
}

// renderRows renders the visible slice of the track list, padded to the
// viewport height.
func (m Model) renderRows(innerWidth, listHeight int) string {
	tracks := m.list.Tracks()
	currentIdx := m.list.CurrentIndex()

	lines := make([]string, 0, listHeight)
	start, end := m.cursor.VisibleRange(len(tracks), listHeight)
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderRow(tracks[idx], idx, currentIdx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return strings.Join(lines, "\n")
}

// renderRow renders one track line: marker, title, artist, duration and
// selection mark.
func (m Model) renderRow(track playlist.Track, idx, currentIdx, width int) string {
	prefix := "  "
	if idx == currentIdx {
		prefix = icons.Current() + " "
	}

	suffix := "  "
	if m.selected[idx] {
		suffix = " " + icons.Selected()
	}

	prefixWidth := 2
	suffixWidth := 2
	contentWidth := width - prefixWidth - suffixWidth
	durWidth := 0
	dur := ""
	if contentWidth >= 30 && track.Duration > 0 {
		dur = playlist.FormatDuration(track.Duration)
		durWidth = len(dur) + 1
	}

	titleWidth := (contentWidth - durWidth) * 3 / 5
	artistWidth := contentWidth - durWidth - titleWidth

	title := render.TruncateAndPad(render.Sanitize(track.Title), titleWidth)
	artist := render.TruncateAndPad(render.Sanitize(track.Artist), artistWidth)
	if durWidth > 0 {
		dur = " " + dur
	}

	line := prefix + title + artist + dur + suffix

	return m.rowStyle(idx, currentIdx).Render(line)
}

// rowStyle picks the style for a row from its cursor, current and
// selection state.
func (m Model) rowStyle(idx, currentIdx int) lipgloss.Style {
	s := styles.T().S()
	isCursor := idx == m.cursor.Pos() && m.IsFocused()
	isCurrent := idx == currentIdx
	isSelected := m.selected[idx]

	switch {
	case isCursor && isCurrent:
		return s.Cursor.Inherit(s.Current)
	case isCursor && isSelected:
		return s.Cursor.Inherit(s.Selected)
	case isCursor:
		return s.Cursor
	case isCurrent:
		return s.Current
	case isSelected:
		return s.Selected
	default:
		return s.Base
	}
}
