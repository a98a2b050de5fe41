package rendering

import (
	"context"
	"encoding/base64"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PrintToPDF renders the given HTML document to PDF bytes through a headless
// browser. It needs a Chrome/Chromium binary on the host; callers that only
// want the HTML page can skip this step entirely.
func PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "failed to print page to PDF", Cause: err}
	}

	return pdf, nil
}
