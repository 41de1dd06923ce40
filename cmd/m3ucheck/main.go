// Test program to inspect how an m3u playlist parses
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/avrel/setlist/internal/m3u"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <playlist.m3u>", os.Args[0])
	}
	path := os.Args[1]

	if !m3u.IsPlaylistFile(path) {
		log.Printf("Warning: %s does not look like an m3u file", path)
	}

	entries, err := m3u.ParseFile(path)
	if err != nil {
		log.Fatalf("Failed to parse playlist: %v", err)
	}
	log.Printf("Parsed %d entries from %s", len(entries), path)

	missing := 0
	for i, e := range entries {
		title := e.Title
		if title == "" {
			title = "(no title)"
		}
		log.Printf("  [%d] %s (%s)", i+1, title, formatRuntime(e.Duration))
		log.Printf("      %s", e.Path)
		if _, err := os.Stat(e.Path); err != nil {
			log.Printf("      MISSING: %v", err)
			missing++
		}
	}

	if missing > 0 {
		log.Printf("%d of %d entries point to missing files", missing, len(entries))
	} else {
		log.Println("All entries resolve to existing files")
	}
}

// formatRuntime renders a duration as m:ss, with ?:?? for unknown runtimes.
func formatRuntime(d time.Duration) string {
	if d <= 0 {
		return "?:??"
	}
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
