package server

import (
	"net/http"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// WrapH2C: TLS 없이 HTTP/2(h2c)와 HTTP/1.1을 모두 받도록 핸들러를 래핑한다.
func WrapH2C(handler http.Handler) http.Handler {
	return h2c.NewHandler(handler, &http2.Server{})
}
