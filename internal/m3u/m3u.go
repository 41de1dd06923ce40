// Package m3u reads m3u and m3u8 playlist files.
package m3u

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is a single playlist entry.
type Entry struct {
	Path     string
	Title    string
	Duration time.Duration
}

// IsPlaylistFile reports whether the path looks like an m3u playlist.
func IsPlaylistFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".m3u" || ext == ".m3u8"
}

// Parse reads playlist entries from r. Relative paths are resolved against
// baseDir. #EXTINF metadata applies to the entry that follows it; the
// #EXTM3U header and other comment lines are skipped.
func Parse(r io.Reader, baseDir string) ([]Entry, error) {
	var entries []Entry
	var pending Entry
	hasPending := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "﻿")
		if line == "" {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "#EXTINF:"); ok {
			pending.Duration, pending.Title = parseExtInf(rest)
			hasPending = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		entry := Entry{Path: resolvePath(line, baseDir)}
		if hasPending {
			entry.Title = pending.Title
			entry.Duration = pending.Duration
			pending = Entry{}
			hasPending = false
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ParseFile opens and parses an m3u file, resolving relative entries
// against the file's directory.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries, err := Parse(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return entries, nil
}

// parseExtInf splits "123,Artist - Title" into duration and display title.
// Unknown runtimes (absent or negative) yield a zero duration.
func parseExtInf(s string) (time.Duration, string) {
	runtime, title, ok := strings.Cut(s, ",")
	if !ok {
		runtime = s
		title = ""
	}
	title = strings.TrimSpace(title)

	secs, err := strconv.ParseFloat(strings.TrimSpace(runtime), 64)
	if err != nil || secs < 0 {
		return 0, title
	}
	return time.Duration(secs * float64(time.Second)), title
}

func resolvePath(p, baseDir string) string {
	if strings.Contains(p, "://") {
		return p
	}
	if baseDir == "" || filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}
