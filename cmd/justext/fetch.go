package main

import (
	"fmt"
	"net/url"
	"os"
)

// FetchCmd retrieves HTML for a URL, optionally through a browser for
// JavaScript-rendered pages, and writes it to stdout or --out.
type FetchCmd struct {
	URL    string `arg:"" help:"URL to fetch"`
	Static bool   `help:"Use a plain HTTP fetch instead of a headless browser."`
	Out    string `short:"o" help:"Write HTML to this file instead of stdout."`
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	defer func() {
		if deps.Fetch != nil {
			_ = deps.Fetch.Close()
		}
	}()

	if deps.Limiter != nil {
		domain := c.URL
		if u, err := url.Parse(c.URL); err == nil && u.Host != "" {
			domain = u.Host
		}
		if err := deps.Limiter.Wait(deps.Ctx, domain); err != nil {
			return err
		}
	}

	html, err := deps.Fetch.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to fetch %s: %v\n", c.URL, err)
		return err
	}

	if c.Out != "" {
		return os.WriteFile(c.Out, []byte(html), 0644)
	}
	fmt.Fprintln(deps.Stdout, html)
	return nil
}
