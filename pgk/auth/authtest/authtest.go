// Package authtest builds requests that look like they passed the cookie
// auth middleware, so handlers can be tested in isolation.
package authtest

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/linkpay/webclient/pgk/auth"
)

// NewRequest собирает запрос с данными сессии в контексте, минуя
// middleware (для тестов обработчиков)
func NewRequest[T any](method, target string, tokenInfo *T, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(auth.WithTokenInfo(req.Context(), tokenInfo))
}
