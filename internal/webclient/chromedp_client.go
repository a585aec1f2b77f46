package webclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"trustlens/internal/interfaces"
	"trustlens/internal/model"
)

// ChromeDPClient renders pages in a headless browser and returns the
// post-JavaScript HTML. Useful for storefronts that only materialize
// their content client-side.
type ChromeDPClient struct {
	idleAfter   time.Duration
	allocCtx    context.Context
	allocCancel context.CancelFunc
	logger      interfaces.Logger
}

// NewChromeDPClient creates a chromedp-backed webclient sharing one
// browser allocator across requests; each Do runs in a fresh tab.
func NewChromeDPClient(idleAfter time.Duration, logger interfaces.Logger, opts ...chromedp.ExecAllocatorOption) (*ChromeDPClient, error) {
	if idleAfter <= 0 {
		idleAfter = 2 * time.Second
	}
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], opts...)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), allocOpts...)

	return &ChromeDPClient{
		idleAfter:   idleAfter,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
		logger:      logger.With(interfaces.Field{Key: "backend", Value: "chromedp"}),
	}, nil
}

// waitNetworkIdle closes the returned channel once no network requests
// have been in flight for idleAfter.
func waitNetworkIdle(ctx context.Context, idleAfter time.Duration) chan struct{} {
	idleChan := make(chan struct{})
	var activeReqs int32
	var timer *time.Timer
	var timerMutex sync.Mutex
	var once sync.Once

	startTimer := func() {
		timerMutex.Lock()
		defer timerMutex.Unlock()

		if timer != nil {
			timer.Stop()
		}

		timer = time.AfterFunc(idleAfter, func() {
			if atomic.LoadInt32(&activeReqs) == 0 {
				once.Do(func() {
					close(idleChan)
				})
			}
		})
	}

	chromedp.ListenTarget(ctx, func(ev any) {
		switch ev.(type) {
		case *network.EventRequestWillBeSent:
			atomic.AddInt32(&activeReqs, 1)
		case *network.EventLoadingFinished, *network.EventLoadingFailed:
			if atomic.AddInt32(&activeReqs, -1) == 0 {
				startTimer()
			}
		}
	})

	// Cover pages that issue no subresource requests at all.
	startTimer()

	return idleChan
}

func (cdc *ChromeDPClient) Do(ctx context.Context, req *model.Request) (*model.Response, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}
	if m := strings.ToUpper(req.Method); m != "" && m != http.MethodGet {
		return nil, fmt.Errorf("chromedp backend supports GET only, got %s", m)
	}

	tabCtx, cancel := chromedp.NewContext(cdc.allocCtx)
	defer cancel()

	if deadline, ok := ctx.Deadline(); ok {
		var dcancel context.CancelFunc
		tabCtx, dcancel = context.WithDeadline(tabCtx, deadline)
		defer dcancel()
	}

	cdc.logger.Debug("rendering page", interfaces.Field{Key: "url", Value: req.URL})

	idleChan := waitNetworkIdle(tabCtx, cdc.idleAfter)

	if err := chromedp.Run(tabCtx, chromedp.Navigate(req.URL)); err != nil {
		return nil, fmt.Errorf("navigate %s: %w", req.URL, err)
	}

	select {
	case <-idleChan:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-tabCtx.Done():
		return nil, tabCtx.Err()
	}

	var html string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &html)); err != nil {
		return nil, fmt.Errorf("capture html: %w", err)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "text/html")

	// The devtools protocol gives no top-level status here; a page that
	// rendered is reported as 200.
	return &model.Response{
		Request:    req,
		Body:       []byte(html),
		Headers:    headers,
		StatusCode: http.StatusOK,
		FetchedAt:  time.Now(),
	}, nil
}

// Get is a convenience method for simple GET requests
func (cdc *ChromeDPClient) Get(ctx context.Context, url string) (*model.Response, error) {
	return cdc.Do(ctx, &model.Request{Method: "GET", URL: url})
}

func (cdc *ChromeDPClient) Close() error {
	cdc.logger.Info("closing chromedp webclient")
	cdc.allocCancel()
	return nil
}
