package tools

/*
Reusable Chrome session for the live executor: one allocator + context
pair kept alive across hatch orders so login happens once, not per
purchase.
*/

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/jqcwhw/ps99stuff/config"
)

type Browser struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewBrowser starts a Chrome instance parked on the Roblox homepage.
// Pass a flag set from chromeflags.go; nil defaults to FastFlags.
func NewBrowser(opts []chromedp.ExecAllocatorOption) (*Browser, error) {
	if opts == nil {
		opts = FastFlags()
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	if err := chromedp.Run(ctx, chromedp.Navigate(config.RobloxHome)); err != nil {
		cancel()
		allocCancel()
		return nil, err
	}

	return &Browser{
		ctx: ctx,
		cancel: func() {
			cancel()
			allocCancel()
		},
	}, nil
}

// Login applies the account cookie and reloads until the logged-in
// avatar shows up.
func (b *Browser) Login(cookie string) error {
	return chromedp.Run(b.ctx,
		chromedp.Navigate(config.RobloxHome),

		chromedp.ActionFunc(func(ctx context.Context) error {
			return network.SetCookies([]*network.CookieParam{
				{
					Name:     ".ROBLOSECURITY",
					Value:    cookie,
					Domain:   ".roblox.com",
					Path:     "/",
					Secure:   true,
					HTTPOnly: true,
				},
			}).Do(ctx)
		}),

		chromedp.Reload(),
		chromedp.WaitVisible(".avatar", chromedp.ByQuery),
	)
}

// Reset parks the session back on the homepage between orders.
func (b *Browser) Reset() error {
	return chromedp.Run(b.ctx, chromedp.Navigate(config.RobloxHome))
}

// OrderContext returns the session context bounded by a timeout; the
// cancel func parks the session back on the homepage.
func (b *Browser) OrderContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	timeoutCtx, cancel := context.WithTimeout(b.ctx, timeout)

	wrappedCancel := func() {
		b.Reset()
		cancel()
	}

	return timeoutCtx, wrappedCancel
}

// Close shuts the browser down.
func (b *Browser) Close() {
	b.cancel()
}
