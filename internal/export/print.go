package export

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper size in inches for the browser print engine.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

// PrintHTML renders arbitrary HTML in a headless browser and prints it to
// an A4 PDF with backgrounds and zero margins. This is the server-side
// path behind the generate-pdf endpoint; pages that declare their own
// CSS page size win over the defaults.
func PrintHTML(ctx context.Context, html string) ([]byte, error) {
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
			pdf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print failed: %w", err)
	}
	return buf, nil
}
