package infrastructure

import (
	"context"
	"sync"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// loadUntilNetworkIdle navigates to url and returns once the main frame's
// new document reports the networkIdle lifecycle event. Events belonging to
// the tab's initial about:blank document are ignored by matching loader ids.
func loadUntilNetworkIdle(url string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		lctx, cancel := context.WithCancel(ctx)
		defer cancel()

		var (
			mu     sync.Mutex
			loader cdp.LoaderID
			once   sync.Once
			idle   = make(chan struct{})
		)
		chromedp.ListenTarget(lctx, func(ev interface{}) {
			switch e := ev.(type) {
			case *page.EventFrameNavigated:
				if e.Frame != nil && e.Frame.ParentID == "" {
					mu.Lock()
					loader = e.Frame.LoaderID
					mu.Unlock()
				}
			case *page.EventLifecycleEvent:
				if e.Name != "networkIdle" {
					return
				}
				mu.Lock()
				match := loader != "" && e.LoaderID == loader
				mu.Unlock()
				if match {
					once.Do(func() { close(idle) })
				}
			}
		})

		if err := page.SetLifecycleEventsEnabled(true).Do(ctx); err != nil {
			return err
		}
		if err := chromedp.Navigate(url).Do(ctx); err != nil {
			return err
		}

		select {
		case <-idle:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
