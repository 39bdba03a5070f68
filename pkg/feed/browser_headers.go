package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages contains Accept-Language values of typical readers of vietnamese news
var acceptLanguages = []string{
	"vi-VN,vi;q=0.9,en-US;q=0.8,en;q=0.7",
	"vi,en-US;q=0.9,en;q=0.8",
	"en-US,en;q=0.9,vi;q=0.8",
}

// addBrowserHeaders adds browser-like headers for feed fetching, some publishers reject bare clients
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // header variation only
	req.Header.Set("Connection", "keep-alive")
}
