package middleware

import (
	"bytes"
	"net/http"
	"strings"
)

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// bufferedResponseWriter holds the whole body back until the ETag is known.
type bufferedResponseWriter struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	wroteHeader bool
}

func newBufferedResponseWriter() *bufferedResponseWriter {
	return &bufferedResponseWriter{
		header:     make(http.Header),
		statusCode: http.StatusOK,
	}
}

func (w *bufferedResponseWriter) Header() http.Header {
	return w.header
}

func (w *bufferedResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(b)
}

// ConditionalGET tags successful GET responses with a strong ETag and answers 304 when If-None-Match matches.
// A tag already set by the handler wins over the hash of the body.
func ConditionalGET(generator *ETagGenerator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)

				return
			}

			brw := newBufferedResponseWriter()
			next.ServeHTTP(brw, r)

			for key, values := range brw.header {
				for _, value := range values {
					w.Header().Add(key, value)
				}
			}

			if brw.statusCode != http.StatusOK {
				w.WriteHeader(brw.statusCode)
				_, _ = w.Write(brw.body.Bytes())

				return
			}

			etag := brw.header.Get(headerETag)
			if etag == "" {
				etag = generator.Tag(brw.body.Bytes())
				w.Header().Set(headerETag, etag)
			}

			if etagMatches(r.Header.Get(headerIfNoneMatch), etag) {
				w.Header().Del(contentTypeHeader)
				w.WriteHeader(http.StatusNotModified)

				return
			}

			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(brw.body.Bytes())
		})
	}
}

func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}

	for _, value := range strings.Split(ifNoneMatch, ",") {
		value = strings.TrimPrefix(strings.TrimSpace(value), "W/")
		if value == etag {
			return true
		}
	}

	return false
}

func formatETag(etag string) string {
	return "\"" + etag + "\""
}
