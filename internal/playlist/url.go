package playlist

import (
	"net/url"
	"strings"
)

// PlaylistID validates a YouTube playlist URL and extracts its list ID.
// Accepted hosts are youtube.com (any subdomain) and youtu.be; the URL must
// carry a list parameter.
func PlaylistID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", &ErrInvalidURL{URL: raw, Reason: "playlist URL cannot be empty"}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", &ErrInvalidURL{URL: raw, Reason: "not a valid URL"}
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	host = strings.TrimPrefix(host, "m.")
	if host != "youtube.com" && host != "youtu.be" && !strings.HasSuffix(host, ".youtube.com") {
		return "", &ErrInvalidURL{URL: raw, Reason: "not a YouTube URL"}
	}

	id := parsed.Query().Get("list")
	if id == "" {
		return "", &ErrInvalidURL{URL: raw, Reason: "missing list parameter"}
	}
	return id, nil
}
