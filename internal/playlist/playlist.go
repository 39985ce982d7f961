// Package playlist retrieves ordered video metadata for a YouTube playlist.
// The primary source is the YouTube Data API; a page-scrape fallback covers
// deployments without an API key. Both return items in playlist order with
// durations already parsed, ready for the scheduling engine.
package playlist

import (
	"context"
	"fmt"

	"github.com/rohan/learnfast/internal/schedule"
)

// Playlist is the fetched metadata for one playlist.
type Playlist struct {
	ID    string
	URL   string
	Title string
	Items []schedule.Item
}

// Source retrieves playlist metadata. Implementations must preserve playlist
// order and guarantee unique item IDs.
type Source interface {
	Playlist(ctx context.Context, url string) (*Playlist, error)
}

// ErrInvalidURL indicates the given URL is not a YouTube playlist URL.
type ErrInvalidURL struct {
	URL    string
	Reason string
}

func (e *ErrInvalidURL) Error() string {
	return fmt.Sprintf("invalid playlist URL %q: %s", e.URL, e.Reason)
}

// ErrEmptyPlaylist indicates the playlist has no retrievable videos.
type ErrEmptyPlaylist struct {
	URL string
}

func (e *ErrEmptyPlaylist) Error() string {
	return fmt.Sprintf("playlist is empty or inaccessible: %s", e.URL)
}

// WatchURL returns the canonical watch URL for a video ID. It is the item ID
// progress tracking keys on, so the form must never change between fetches.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
