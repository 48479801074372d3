package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// compressibleTypes перечисляет Content-Type ответов, которые сжимаются
var compressibleTypes = map[string]bool{
	"application/json": true,
	"text/html":        true,
	"text/plain":       true,
}

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(io.Discard)
	},
}

// gzipRequestBody распаковывает тело входящего запроса
type gzipRequestBody struct {
	body       io.ReadCloser
	gzipReader *gzip.Reader
}

func newGzipRequestBody(body io.ReadCloser) (*gzipRequestBody, error) {
	gzipReader, err := gzip.NewReader(body)
	if err != nil {
		return nil, err
	}

	return &gzipRequestBody{
		body:       body,
		gzipReader: gzipReader,
	}, nil
}

func (c *gzipRequestBody) Read(p []byte) (int, error) {
	return c.gzipReader.Read(p)
}

func (c *gzipRequestBody) Close() error {
	if err := c.gzipReader.Close(); err != nil {
		return err
	}
	return c.body.Close()
}

// shouldCompress проверяет Content-Type без параметров, например "application/json; charset=utf-8"
func shouldCompress(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return compressibleTypes[mediaType]
}

func acceptsGzip(r *http.Request) bool {
	for _, encoding := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		name := strings.TrimSpace(strings.Split(encoding, ";")[0])
		if strings.EqualFold(name, "gzip") {
			return true
		}
	}
	return false
}

// gzipResponseWriter решает, сжимать ли ответ, в момент записи заголовков.
// Сжимаются только успешные ответы с подходящим Content-Type
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	compressing bool
}

func newGzipResponseWriter(w http.ResponseWriter) *gzipResponseWriter {
	return &gzipResponseWriter{
		ResponseWriter: w,
	}
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	w.Header().Add("Vary", "Accept-Encoding")

	if statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices &&
		shouldCompress(w.Header().Get("Content-Type")) {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")

		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
		w.compressing = true
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.compressing {
		return w.gzipWriter.Write(data)
	}

	return w.ResponseWriter.Write(data)
}

// Close дописывает gzip футер и возвращает writer в пул
func (w *gzipResponseWriter) Close() error {
	if !w.compressing {
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
	w.compressing = false

	return err
}

// Gzip распаковывает запросы с Content-Encoding: gzip и сжимает ответы для клиентов с Accept-Encoding: gzip
func Gzip(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
				body, err := newGzipRequestBody(r.Body)
				if err != nil {
					logger.Warn("Failed to decompress request body",
						zap.Error(err),
						zap.String("uri", r.RequestURI),
						zap.String("method", r.Method),
						zap.String("remote_addr", r.RemoteAddr),
					)
					http.Error(w, "Failed to decompress request body", http.StatusBadRequest)
					return
				}
				defer func() {
					if err := body.Close(); err != nil {
						logger.Warn("Failed to close request body", zap.Error(err), zap.String("uri", r.RequestURI))
					}
				}()
				r.Body = body
				r.Header.Del("Content-Encoding")
				r.ContentLength = -1
			}

			if !acceptsGzip(r) {
				next.ServeHTTP(w, r)
				return
			}

			gzipWriter := newGzipResponseWriter(w)
			defer func() {
				if err := gzipWriter.Close(); err != nil {
					logger.Error("Failed to close gzip writer", zap.Error(err), zap.String("uri", r.RequestURI))
				}
			}()

			next.ServeHTTP(gzipWriter, r)
		})
	}
}
