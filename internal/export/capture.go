package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// captureTimeout bounds a single headless-browser capture.
const captureTimeout = 60 * time.Second

// captureViewportWidth is the CSS pixel width pages are laid out at
// before oversampling. Roughly A4 width at 96dpi.
const captureViewportWidth = 794

// browserContext prepares a headless browser context for html, staged in
// a temp directory so relative resources resolve. The returned cleanup
// must run regardless of the capture outcome.
func browserContext(ctx context.Context, html string) (context.Context, string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "resumemint-")
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to create capture directory: %w", err)
	}

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		os.RemoveAll(tmpDir)
		return nil, "", nil, fmt.Errorf("failed to stage capture page: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, captureTimeout)

	cleanup := func() {
		cancelTimeout()
		cancelCtx()
		cancelAlloc()
		os.RemoveAll(tmpDir)
	}
	return browserCtx, "file://" + htmlPath, cleanup, nil
}

// captureScreenshot renders html and screenshots the full page as PNG at
// the given device scale factor. The metrics override is cleared before
// the browser context is torn down, whether or not the capture succeeds.
func captureScreenshot(ctx context.Context, html string, scale float64) ([]byte, error) {
	browserCtx, url, cleanup, err := browserContext(ctx, html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	var buf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := emulation.SetDeviceMetricsOverride(captureViewportWidth, 0, scale, false).Do(ctx); err != nil {
				return fmt.Errorf("failed to override device metrics: %w", err)
			}
			defer func() {
				_ = emulation.ClearDeviceMetricsOverride().Do(ctx)
			}()

			shot, err := page.CaptureScreenshot().
				WithFormat(page.CaptureScreenshotFormatPng).
				WithCaptureBeyondViewport(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = shot
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("capture failed: %w", err)
	}
	return buf, nil
}
