package middleware

import (
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

// Secure sets the browser security headers for the rendered page. HSTS and
// the HTTPS redirect are only enabled when the app terminates TLS itself.
func Secure(ssl bool) gin.HandlerFunc {
	cfg := secure.Config{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; img-src * data:; script-src 'self'; style-src 'self'",
	}
	if ssl {
		cfg.SSLRedirect = true
		cfg.STSSeconds = 31536000
		cfg.STSIncludeSubdomains = true
	}
	return secure.New(cfg)
}
