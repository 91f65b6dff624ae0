// Package chrome provides a render.Renderer implementation that lays the
// invitation card out in a headless Chrome instance and captures it as a PNG.
package chrome

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"naamkaran/pkg/domain"
	"naamkaran/pkg/metrics"
	"naamkaran/pkg/render"

	"github.com/chromedp/chromedp"
)

// Options controls how the card is laid out and captured.
type Options struct {
	// Scale is the device scale factor of the capture. Higher values yield
	// sharper images at the cost of size.
	Scale float64
	// SettleDelay is how long to wait after the capture overrides are applied
	// so fonts and reflow finish before the screenshot.
	SettleDelay time.Duration
	// CaptureTimeout bounds a single render from navigation to screenshot.
	CaptureTimeout time.Duration
	// Background is the page background color behind the card.
	Background string
	// ExecPath optionally points at a specific Chrome binary.
	ExecPath string
	// Details are the ceremony facts printed on every card.
	Details render.Details
}

// Renderer captures invitation cards with headless Chrome. It is safe for
// concurrent use; every render runs in its own browser context.
type Renderer struct {
	options   Options
	overrides render.DisplayOverrides
}

// New constructs a Renderer with the provided options. Zero-valued fields
// fall back to sensible capture defaults.
func New(options Options) *Renderer {
	if options.Scale <= 0 {
		options.Scale = 3
	}
	if options.SettleDelay <= 0 {
		options.SettleDelay = 100 * time.Millisecond
	}
	if options.CaptureTimeout <= 0 {
		options.CaptureTimeout = 30 * time.Second
	}
	if options.Background == "" {
		options.Background = "#fffcf5"
	}
	if options.Details == (render.Details{}) {
		options.Details = render.DefaultDetails()
	}

	return &Renderer{
		options:   options,
		overrides: render.DefaultOverrides(),
	}
}

// RenderCard writes the guest's card document to a temp file, loads it in a
// fresh headless Chrome context, applies the capture overrides, and returns
// the screenshot as a base64 PNG.
func (r *Renderer) RenderCard(ctx context.Context, guestName string) (*domain.RenderedImage, error) {
	started := time.Now()
	defer func() {
		metrics.RenderDuration.Observe(time.Since(started).Seconds())
	}()

	html, err := render.CardHTML(render.CardData{GuestName: guestName, Details: r.options.Details})
	if err != nil {
		return nil, fmt.Errorf("could not build card document: %w", err)
	}

	tempDir, err := os.MkdirTemp("", "naamkaran-card")
	if err != nil {
		return nil, fmt.Errorf("could not create temp directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()

	tempFile := filepath.Join(tempDir, "card.html")
	if err := os.WriteFile(tempFile, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("could not write card document: %w", err)
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("incognito", true),
	)
	if r.options.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(r.options.ExecPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.options.CaptureTimeout)
	defer cancelTimeout()

	backgroundScript := fmt.Sprintf("document.body.style.background = %q;", r.options.Background)

	var buf []byte
	if err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(460, 760, chromedp.EmulateScale(r.options.Scale)),
		chromedp.Navigate("file://"+filepath.ToSlash(tempFile)),
		chromedp.WaitVisible(r.overrides.RootSelector, chromedp.ByQuery),
		chromedp.Evaluate(backgroundScript, nil),
		chromedp.Evaluate(r.overrides.Script(), nil),
		chromedp.Sleep(r.options.SettleDelay),
		chromedp.FullScreenshot(&buf, 100),
	); err != nil {
		return nil, fmt.Errorf("could not capture card: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("capture produced an empty image")
	}

	return &domain.RenderedImage{
		Encoding: domain.PNGEncoding,
		Payload:  base64.StdEncoding.EncodeToString(buf),
	}, nil
}

// Ensure Renderer conforms to the render.Renderer interface at compile time.
var _ render.Renderer = (*Renderer)(nil)
