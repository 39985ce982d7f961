package playlist

import (
	"context"
	"encoding/json"
	"log"
	"regexp"
	"time"

	"github.com/rohan/learnfast/internal/duration"
	"github.com/rohan/learnfast/internal/fetch"
	"github.com/rohan/learnfast/internal/schedule"
)

// ScrapeSource fetches playlist metadata by parsing the playlist page
// itself. It is the fallback for deployments without a YouTube API key; the
// page embeds its video list as JSON inside a script tag, and we pull the
// fields we need out of that blob.
type ScrapeSource struct {
	opts *fetch.Options
	// UseBrowser enables headless rendering when the plain HTTP response
	// looks like a consent wall or interstitial.
	UseBrowser bool
}

// NewScrapeSource creates a scrape-backed source.
func NewScrapeSource(useBrowser bool) *ScrapeSource {
	return &ScrapeSource{opts: fetch.DefaultOptions(), UseBrowser: useBrowser}
}

var (
	videoEntryPattern = regexp.MustCompile(`"playlistVideoRenderer":\{"videoId":"([A-Za-z0-9_-]{11})"`)
	titlePattern      = regexp.MustCompile(`"title":\{"runs":\[\{"text":"((?:[^"\\]|\\.)*)"`)
	lengthPattern     = regexp.MustCompile(`(?s)"lengthText":\{.*?"simpleText":"([0-9:]+)"`)
)

// Playlist fetches and parses the playlist page.
func (s *ScrapeSource) Playlist(ctx context.Context, rawURL string) (*Playlist, error) {
	id, err := PlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	pageURL := "https://www.youtube.com/playlist?list=" + id
	result, err := fetch.URL(ctx, pageURL, s.opts)
	if err != nil {
		return nil, err
	}

	html := result.HTML
	if s.UseBrowser && fetch.ShouldUseBrowser(html) {
		html, err = fetch.WithBrowser(ctx, pageURL, 60*time.Second)
		if err != nil {
			return nil, err
		}
	}

	title, err := fetch.PageTitle(html)
	if err != nil {
		return nil, err
	}

	items := parsePlaylistPage(html)
	if len(items) == 0 {
		return nil, &ErrEmptyPlaylist{URL: rawURL}
	}

	return &Playlist{ID: id, URL: rawURL, Title: title, Items: items}, nil
}

// parsePlaylistPage extracts the video entries embedded in the page's script
// data. Entries without a length (private or upcoming videos) are skipped.
func parsePlaylistPage(html string) []schedule.Item {
	matches := videoEntryPattern.FindAllStringSubmatchIndex(html, -1)
	var items []schedule.Item

	for i, match := range matches {
		videoID := html[match[2]:match[3]]

		// Each entry's fields live between this renderer marker and the next.
		segEnd := len(html)
		if i+1 < len(matches) {
			segEnd = matches[i+1][0]
		}
		segment := html[match[1]:segEnd]

		title := ""
		if m := titlePattern.FindStringSubmatch(segment); m != nil {
			title = unescapeJSON(m[1])
		}

		m := lengthPattern.FindStringSubmatch(segment)
		if m == nil {
			log.Printf("[playlist] skipping video %s without a length", videoID)
			continue
		}
		d, err := duration.Parse(m[1])
		if err != nil {
			log.Printf("[playlist] skipping video %s: %v", videoID, err)
			continue
		}

		items = append(items, schedule.Item{
			ID:       WatchURL(videoID),
			Title:    title,
			Duration: d,
		})
	}
	return items
}

// unescapeJSON decodes a JSON string body extracted by regexp.
func unescapeJSON(raw string) string {
	var s string
	if err := json.Unmarshal([]byte(`"`+raw+`"`), &s); err != nil {
		return raw
	}
	return s
}
