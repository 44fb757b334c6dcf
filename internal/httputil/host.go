package httputil

import (
	"github.com/gin-gonic/gin"
)

// RequestHost returns the host the request was made against, as seen from
// the client. The scheme defaults to http and is only upgraded when a
// reverse proxy reports https via x-forwarded-proto.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	// A reverse proxy can reasonably be expected to set x-forwarded-host.
	// If it is set, it is used together with the x-forwarded-prefix
	// header for link construction. Without a proxy, the request host is
	// used unchanged.
	host := c.Request.Host
	var forwardedPrefix string

	xForwardedHost := c.Request.Header.Get("x-forwarded-host")
	if xForwardedHost != "" {
		host = xForwardedHost
		forwardedPrefix = c.Request.Header.Get("x-forwarded-prefix")
	}

	return scheme + "://" + host + forwardedPrefix
}

// RequestPathV1 returns the URL with the prefix for API v1.
func RequestPathV1(c *gin.Context) string {
	return RequestHost(c) + "/v1"
}
