// Package fetch - browser.go provides headless browser rendering for pages
// that ship their playlist data only via script.
package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinPageLength is the minimum HTML length to consider a plain HTTP fetch
// usable. Consent walls and bot interstitials come in well under this.
const MinPageLength = 2000

// ShouldUseBrowser reports whether the fetched HTML looks like an
// interstitial rather than the playlist page itself.
func ShouldUseBrowser(html string) bool {
	if len(strings.TrimSpace(html)) < MinPageLength {
		return true
	}
	return strings.Contains(html, "consent.youtube.com")
}

// WithBrowser renders a page in a headless browser and returns the rendered
// HTML. Requires Chrome/Chromium to be installed on the system.
func WithBrowser(ctx context.Context, url string, timeout time.Duration) (string, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give the playlist renderer time to populate.
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss the consent dialog if one appears; ignore failures.
			_ = chromedp.Click(`button[aria-label*="Accept"], button[aria-label*="agree"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	return html, nil
}
