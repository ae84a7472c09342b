package mw

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders sets the usual hardening headers on every response.
// HSTS is only sent in production, where TLS is expected in front of the service.
func SecureHeaders(production bool) func(http.Handler) http.Handler {
	opts := secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'; frame-ancestors 'none'",
		IsDevelopment:         !production,
	}
	if production {
		opts.STSSeconds = 15552000
		opts.STSIncludeSubdomains = true
	}
	return secure.New(opts).Handler
}
