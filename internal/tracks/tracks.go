// Package tracks builds playlist tracks from the filesystem.
package tracks

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/dhowden/tag"

	"github.com/avrel/setlist/internal/m3u"
	"github.com/avrel/setlist/internal/playlist"
)

// IsMusicFile reports whether the path has a known music file extension.
func IsMusicFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3", ".flac", ".ogg", ".opus", ".m4a", ".wav":
		return true
	}
	return false
}

// FromPath builds a track from a file path by reading its tags.
// Unreadable files or missing tags fall back to the file name as title.
func FromPath(path string) playlist.Track {
	t := playlist.Track{
		Path:  path,
		Title: filepath.Base(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return t
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return t
	}

	if title := m.Title(); title != "" {
		t.Title = title
	}
	t.Artist = m.Artist()
	t.Album = m.Album()
	t.TrackNumber, _ = m.Track()
	return t
}

// CollectDir gathers all music files under dir recursively, sorted by path.
func CollectDir(dir string) ([]playlist.Track, error) {
	var tracks []playlist.Track
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Skip directories/files with errors, continue walking
			return nil //nolint:nilerr // intentionally skipping errors
		}
		if d.IsDir() {
			return nil
		}
		if !IsMusicFile(path) {
			return nil
		}

		tracks = append(tracks, FromPath(path))
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sort by path for consistent ordering
	sort.Slice(tracks, func(i, j int) bool {
		return tracks[i].Path < tracks[j].Path
	})

	return tracks, nil
}

// FromPlaylistFile imports an m3u file. Entry titles and durations fill in
// what the file tags do not provide.
func FromPlaylistFile(path string) ([]playlist.Track, error) {
	entries, err := m3u.ParseFile(path)
	if err != nil {
		return nil, err
	}

	tracks := make([]playlist.Track, 0, len(entries))
	for _, e := range entries {
		t := FromPath(e.Path)
		if e.Title != "" && t.Title == filepath.Base(e.Path) {
			t.Title = e.Title
		}
		if t.Duration == 0 {
			t.Duration = e.Duration
		}
		tracks = append(tracks, t)
	}
	return tracks, nil
}

// Load resolves a path argument into tracks: a directory is scanned
// recursively, an m3u file is imported, anything else must be a single
// music file.
func Load(arg string) ([]playlist.Track, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}

	switch {
	case info.IsDir():
		return CollectDir(arg)
	case m3u.IsPlaylistFile(arg):
		return FromPlaylistFile(arg)
	case IsMusicFile(arg):
		return []playlist.Track{FromPath(arg)}, nil
	default:
		return nil, fmt.Errorf("unsupported file type: %s", arg)
	}
}

// TotalSize sums the on-disk sizes of the given tracks.
func TotalSize(tracks []playlist.Track) int64 {
	var total int64
	for _, t := range tracks {
		if info, err := os.Stat(t.Path); err == nil {
			total += info.Size()
		}
	}
	return total
}

// TotalDuration sums the known durations of the given tracks.
// Tracks without duration metadata contribute nothing.
func TotalDuration(tracks []playlist.Track) time.Duration {
	var total time.Duration
	for _, t := range tracks {
		total += t.Duration
	}
	return total
}
