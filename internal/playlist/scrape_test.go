package playlist

import (
	"testing"
	"time"
)

// A trimmed-down imitation of the script blob a playlist page embeds.
const samplePage = `<html><head><meta property="og:title" content="Go Basics"></head><body>
<script>var ytInitialData = {"contents":[
{"playlistVideoRenderer":{"videoId":"aaaaaaaaaaa","title":{"runs":[{"text":"Intro & Setup"}]},"lengthText":{"accessibility":{"accessibilityData":{"label":"10 minutes"}},"simpleText":"10:00"}}},
{"playlistVideoRenderer":{"videoId":"bbbbbbbbbbb","title":{"runs":[{"text":"[Private video]"}]}}},
{"playlistVideoRenderer":{"videoId":"ccccccccccc","title":{"runs":[{"text":"Structs"}]},"lengthText":{"accessibility":{"accessibilityData":{"label":"1 hour"}},"simpleText":"1:02:03"}}}
]};</script></body></html>`

func TestParsePlaylistPage(t *testing.T) {
	items := parsePlaylistPage(samplePage)

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (private entry skipped)", len(items))
	}

	if items[0].ID != WatchURL("aaaaaaaaaaa") {
		t.Errorf("item 0 ID = %q", items[0].ID)
	}
	if items[0].Title != "Intro & Setup" {
		t.Errorf("item 0 title = %q, want unescaped ampersand", items[0].Title)
	}
	if items[0].Duration != 10*time.Minute {
		t.Errorf("item 0 duration = %v, want 10m", items[0].Duration)
	}

	if items[1].Title != "Structs" {
		t.Errorf("item 1 title = %q", items[1].Title)
	}
	if items[1].Duration != time.Hour+2*time.Minute+3*time.Second {
		t.Errorf("item 1 duration = %v", items[1].Duration)
	}
}

func TestParsePlaylistPageEmpty(t *testing.T) {
	if items := parsePlaylistPage("<html><body>nothing here</body></html>"); len(items) != 0 {
		t.Errorf("got %d items from a page without entries", len(items))
	}
}
