package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/paramveer-prakash/career-sub001/internal/domain"
)

// A4: 210mm x 297mm -> inches: 8.27 x 11.69
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.5
)

var errRendererClosed = errors.New("renderer closed")

type ChromedpOptions struct {
	// ExecPath overrides Chrome discovery (CHROME_PATH).
	ExecPath string
	// PoolSize bounds how many exports run at once; each slot owns at most
	// one browser process.
	PoolSize int
	// Reuse keeps a slot's browser alive between exports. Each export still
	// gets its own tab, closed when the export ends.
	Reuse bool
	// Timeout bounds browser start-up and each export separately.
	Timeout time.Duration
}

// browser is one Chrome process plus its root chromedp context.
type browser struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

// close terminates the process; cancelling the root context closes Chrome
// and cancelling the allocator removes its profile directory.
func (b *browser) close() {
	b.cancel()
	b.allocCancel()
}

// ChromedpRenderer transcodes HTML documents to PDF with headless Chrome.
type ChromedpRenderer struct {
	allocOpts []chromedp.ExecAllocatorOption
	timeout   time.Duration
	reuse     bool

	// slots holds PoolSize entries; a nil entry is a slot without a running
	// browser.
	slots chan *browser

	mu     sync.Mutex
	closed bool
}

func NewChromedpRenderer(o ChromedpOptions) *ChromedpRenderer {
	if o.PoolSize <= 0 {
		o.PoolSize = 1
	}
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}

	r := &ChromedpRenderer{
		allocOpts: opts,
		timeout:   o.Timeout,
		reuse:     o.Reuse,
		slots:     make(chan *browser, o.PoolSize),
	}
	for i := 0; i < o.PoolSize; i++ {
		r.slots <- nil
	}
	return r
}

// RenderHTMLToPDF prints html as an A4 PDF with backgrounds and half-inch
// margins. Every failure is a *domain.ExportError and returns no bytes. The
// browser used is released (or terminated) on every path, including
// cancellation of ctx.
func (r *ChromedpRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	b, err := r.acquire(ctx)
	if err != nil {
		return nil, &domain.ExportError{Stage: domain.StageLaunch, Err: err}
	}

	ok := false
	defer func() { r.release(b, ok) }()

	if b == nil {
		if b, err = r.launch(ctx); err != nil {
			return nil, &domain.ExportError{Stage: domain.StageLaunch, Err: err}
		}
	}

	pdfBuf, err := r.print(ctx, b, html)
	if err != nil {
		return nil, err
	}
	if err := VerifyPDF(pdfBuf); err != nil {
		return nil, &domain.ExportError{Stage: domain.StageVerify, Err: err}
	}

	ok = true
	return pdfBuf, nil
}

// Close terminates every idle browser and makes later exports fail. Exports
// in flight terminate their browser when they finish.
func (r *ChromedpRenderer) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	r.mu.Unlock()

	n := len(r.slots)
	for i := 0; i < n; i++ {
		b := <-r.slots
		if b != nil {
			b.close()
		}
		r.slots <- nil
	}
}

func (r *ChromedpRenderer) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *ChromedpRenderer) acquire(ctx context.Context) (*browser, error) {
	if r.isClosed() {
		return nil, errRendererClosed
	}
	select {
	case b := <-r.slots:
		if r.isClosed() {
			if b != nil {
				b.close()
			}
			r.slots <- nil
			return nil, errRendererClosed
		}
		return b, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// release returns the slot to the pool. A browser is kept only after a
// clean export, with reuse enabled and the renderer still open.
func (r *ChromedpRenderer) release(b *browser, ok bool) {
	if b != nil && (!ok || !r.reuse || r.isClosed()) {
		b.close()
		b = nil
	}
	r.slots <- b
}

// launch starts a Chrome process detached from the request context so a
// pooled browser outlives the request that started it. Start-up is bounded
// by the renderer timeout and by ctx.
func (r *ChromedpRenderer) launch(ctx context.Context) (*browser, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), r.allocOpts...)
	bctx, cancel := chromedp.NewContext(allocCtx)
	b := &browser{ctx: bctx, cancel: cancel, allocCancel: allocCancel}

	started := make(chan error, 1)
	go func() {
		// the first Run allocates the browser; it must not carry a deadline
		started <- chromedp.Run(bctx)
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case err := <-started:
		if err != nil {
			b.close()
			return nil, fmt.Errorf("start chrome: %w", err)
		}
		return b, nil
	case <-timer.C:
		b.close()
		return nil, fmt.Errorf("start chrome: timed out after %s", r.timeout)
	case <-ctx.Done():
		b.close()
		return nil, ctx.Err()
	}
}

// print renders html in a fresh tab of b. The tab is closed on return; a
// timeout or a cancelled ctx closes it early, which aborts the run.
func (r *ChromedpRenderer) print(ctx context.Context, b *browser, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, &domain.ExportError{Stage: domain.StageLoad, Err: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o600); err != nil {
		return nil, &domain.ExportError{Stage: domain.StageLoad, Err: err}
	}

	tabCtx, closeTab := chromedp.NewContext(b.ctx)
	defer closeTab()

	var timedOut atomic.Bool
	timer := time.AfterFunc(r.timeout, func() {
		timedOut.Store(true)
		closeTab()
	})
	defer timer.Stop()
	stop := context.AfterFunc(ctx, closeTab)
	defer stop()

	stage := domain.StageLoad
	var pdfBuf []byte
	err = chromedp.Run(tabCtx,
		loadUntilNetworkIdle("file://"+htmlPath),
		chromedp.ActionFunc(func(ctx context.Context) error {
			stage = domain.StageCapture
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				Do(ctx)
			return err
		}),
	)
	switch {
	case err == nil:
		return pdfBuf, nil
	case timedOut.Load():
		err = fmt.Errorf("timed out after %s: %w", r.timeout, err)
	case ctx.Err() != nil:
		err = ctx.Err()
	}
	slog.Debug("chromedp export failed", "stage", stage, "error", err)
	return nil, &domain.ExportError{Stage: stage, Err: err}
}
