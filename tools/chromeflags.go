package tools

/*
ChromeDP flag sets for the browser session
*/

import (
	"github.com/chromedp/chromedp"

	"github.com/jqcwhw/ps99stuff/config"
)

// Flag list for fastest page load possible
func FastFlags() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),

		// Network and loading optimizations
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-background-timer-throttling", true),
		chromedp.Flag("disable-renderer-backgrounding", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-images", true),

		// Keep automation markers off the wire
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),

		chromedp.Flag("disable-logging", true),
		chromedp.Flag("log-level", "3"),

		chromedp.Flag("user-agent", config.UserAgent),
	)

	return opts
}

// Flag list for a visible window; used when watching live orders
func HeadfulFlags() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", false),
		chromedp.Flag("disable-gpu", false),
		chromedp.Flag("no-sandbox", true),

		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("user-agent", config.UserAgent),
	)

	return opts
}
