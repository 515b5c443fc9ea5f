package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/sirupsen/logrus"

	"github.com/jqcwhw/ps99stuff/config"
	"github.com/jqcwhw/ps99stuff/tools"
)

/*
Live hatch executor. Drives a shared Chrome session: logs in once,
then per committed egg navigates to the shop page, cross-checks the
displayed price against the catalog price, and clicks buy + confirm.
*/

type LiveExecutor struct {
	browser *tools.Browser
	log     *logrus.Entry
}

// NewLiveExecutor starts the browser session and logs into the account.
// Headful so live orders can be watched.
func NewLiveExecutor() (*LiveExecutor, error) {
	browser, err := tools.NewBrowser(tools.HeadfulFlags())
	if err != nil {
		return nil, fmt.Errorf("start browser: %w", err)
	}

	logrus.Info("Logging into Roblox account...")
	if err := browser.Login(config.RobloxCookie); err != nil {
		browser.Close()
		return nil, fmt.Errorf("login failed: %w", err)
	}

	return &LiveExecutor{
		browser: browser,
		log:     logrus.WithField("component", "executor"),
	}, nil
}

// Purchase executes one hatch order. Implements collector.Executor.
func (e *LiveExecutor) Purchase(_ context.Context, name string, price int) error {
	octx, cancel := e.browser.OrderContext(15 * time.Second)
	defer cancel()

	e.log.WithField("egg", name).Info("Navigating to shop page...")
	var displayed string
	err := chromedp.Run(octx,
		chromedp.Navigate(config.GameShopBaseURL),
		chromedp.WaitVisible(config.PriceSelector, chromedp.ByQuery),
		chromedp.Text(config.PriceSelector, &displayed, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("read shop price: %w", err)
	}

	//Final validation of the displayed price against the catalog
	displayed = strings.ReplaceAll(displayed, ",", "")
	shown, err := strconv.Atoi(strings.TrimSpace(displayed))
	if err != nil {
		return fmt.Errorf("parse shop price %q: %w", displayed, err)
	}
	if shown == 0 {
		return fmt.Errorf("egg %s shows no price, likely out of stock", name)
	}
	if shown > price {
		return fmt.Errorf("egg %s displayed at %d, catalog says %d, canceling", name, shown, price)
	}

	err = chromedp.Run(octx,
		chromedp.WaitVisible(config.BuyButtonSelector, chromedp.ByQuery),
		chromedp.Click(config.BuyButtonSelector, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("click buy: %w", err)
	}

	// Give the purchase modal a moment to appear
	err = chromedp.Run(octx,
		chromedp.Sleep(250*time.Millisecond),
		chromedp.WaitVisible(config.ConfirmButtonSelector, chromedp.ByQuery),
		chromedp.Click(config.ConfirmButtonSelector, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("confirm purchase: %w", err)
	}

	e.log.WithFields(logrus.Fields{"egg": name, "price": shown}).Info("Executed hatch order")
	return nil
}

// Close shuts the browser session down.
func (e *LiveExecutor) Close() {
	e.browser.Close()
}
