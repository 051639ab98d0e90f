package api

import (
	"fmt"
	"net/http"
)

// HTTPError はカタログAPIの2xx以外の応答
type HTTPError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("catalog api: %s %s: status=%d body=%s", e.Method, e.Path, e.StatusCode, string(e.Body))
}

// 5xx/429/408は一時的な失敗（再試行はしない。ログ用）
func (e *HTTPError) Temporary() bool {
	if e == nil {
		return false
	}
	return e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout ||
		(e.StatusCode >= 500 && e.StatusCode <= 599)
}
