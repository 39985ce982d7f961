package playlist

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/rohan/learnfast/internal/schedule"
)

const (
	// videoBatchSize is the YouTube API's maximum IDs per videos.list call.
	videoBatchSize = 50
	// maxConcurrentBatches bounds parallel duration lookups.
	maxConcurrentBatches = 4
)

// APISource fetches playlist metadata through the YouTube Data API v3.
type APISource struct {
	svc *youtube.Service
}

// NewAPISource creates an API-backed source with the given API key.
func NewAPISource(ctx context.Context, apiKey string) (*APISource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &APISource{svc: svc}, nil
}

// playlistEntry is one row of a playlistItems page, before its duration is
// known.
type playlistEntry struct {
	videoID   string
	title     string
	thumbnail string
}

// Playlist fetches the playlist's title and all its videos in order.
// Durations come from batched videos.list calls run concurrently; videos the
// API reports without a duration (private or deleted entries) are skipped.
func (s *APISource) Playlist(ctx context.Context, rawURL string) (*Playlist, error) {
	id, err := PlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	title, err := s.playlistTitle(ctx, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.playlistEntries(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &ErrEmptyPlaylist{URL: rawURL}
	}

	durations, err := s.videoDurations(ctx, entries)
	if err != nil {
		return nil, err
	}

	items := make([]schedule.Item, 0, len(entries))
	for _, entry := range entries {
		d, ok := durations[entry.videoID]
		if !ok {
			log.Printf("[playlist] skipping unplayable video %s (%q)", entry.videoID, entry.title)
			continue
		}
		items = append(items, schedule.Item{
			ID:        WatchURL(entry.videoID),
			Title:     entry.title,
			Duration:  d,
			Thumbnail: entry.thumbnail,
		})
	}
	if len(items) == 0 {
		return nil, &ErrEmptyPlaylist{URL: rawURL}
	}

	return &Playlist{ID: id, URL: rawURL, Title: title, Items: items}, nil
}

func (s *APISource) playlistTitle(ctx context.Context, id string) (string, error) {
	resp, err := s.svc.Playlists.List([]string{"snippet"}).Id(id).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to fetch playlist %s: %w", id, err)
	}
	if len(resp.Items) == 0 {
		return "", &ErrEmptyPlaylist{URL: "https://www.youtube.com/playlist?list=" + id}
	}
	return resp.Items[0].Snippet.Title, nil
}

func (s *APISource) playlistEntries(ctx context.Context, id string) ([]playlistEntry, error) {
	var entries []playlistEntry
	pageToken := ""
	for {
		call := s.svc.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(id).
			MaxResults(videoBatchSize)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list playlist items for %s: %w", id, err)
		}

		for _, item := range resp.Items {
			entry := playlistEntry{
				videoID: item.ContentDetails.VideoId,
				title:   item.Snippet.Title,
			}
			if thumbs := item.Snippet.Thumbnails; thumbs != nil && thumbs.Medium != nil {
				entry.thumbnail = thumbs.Medium.Url
			}
			entries = append(entries, entry)
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return entries, nil
		}
	}
}

// videoDurations resolves durations for all entries, batching IDs and
// fetching the batches concurrently.
func (s *APISource) videoDurations(ctx context.Context, entries []playlistEntry) (map[string]time.Duration, error) {
	var batches [][]string
	for start := 0; start < len(entries); start += videoBatchSize {
		end := min(start+videoBatchSize, len(entries))
		ids := make([]string, 0, end-start)
		for _, entry := range entries[start:end] {
			ids = append(ids, entry.videoID)
		}
		batches = append(batches, ids)
	}

	durations := make(map[string]time.Duration, len(entries))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBatches)
	for _, ids := range batches {
		g.Go(func() error {
			resp, err := s.svc.Videos.List([]string{"contentDetails"}).Id(ids...).Context(gctx).Do()
			if err != nil {
				return fmt.Errorf("failed to fetch video details: %w", err)
			}
			mu.Lock()
			defer mu.Unlock()
			for _, video := range resp.Items {
				if video.ContentDetails == nil || video.ContentDetails.Duration == "" {
					continue
				}
				d, err := parseISO8601(video.ContentDetails.Duration)
				if err != nil {
					return fmt.Errorf("video %s: %w", video.Id, err)
				}
				durations[video.Id] = d
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return durations, nil
}
