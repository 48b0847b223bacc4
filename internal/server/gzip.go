package server

import (
	"compress/gzip"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Dorrrke/open-redirect/internal/logger"
)

// gzipWriter сжимает только успешные ответы: у редиректов и ошибок тело остается как есть.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func newGzipWriter(w http.ResponseWriter) *gzipWriter {
	return &gzipWriter{
		ResponseWriter: w,
	}
}

func (c *gzipWriter) WriteHeader(statusCode int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true
	if statusCode < 300 {
		c.Header().Set("Content-Encoding", "gzip")
		c.Header().Del("Content-Length")
		c.zw = gzip.NewWriter(c.ResponseWriter)
	}
	c.ResponseWriter.WriteHeader(statusCode)
}

func (c *gzipWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw == nil {
		return c.ResponseWriter.Write(p)
	}
	return c.zw.Write(p)
}

// Close закрывает gzip.Writer и досылает все данные из буфера.
func (c *gzipWriter) Close() error {
	if c.zw == nil {
		return nil
	}
	return c.zw.Close()
}

// acceptsGzip - разбор заголовка Accept-Encoding с учетом q-значений.
// Явно указанный gzip важнее "*", кодировка с q=0 запрещена.
func acceptsGzip(header string) bool {
	wildcard := false
	for _, part := range strings.Split(header, ",") {
		coding, params, _ := strings.Cut(part, ";")
		coding = strings.ToLower(strings.TrimSpace(coding))
		if coding != "gzip" && coding != "x-gzip" && coding != "*" {
			continue
		}
		accepted := qValue(params) > 0
		if coding == "*" {
			wildcard = accepted
			continue
		}
		return accepted
	}
	return wildcard
}

// qValue возвращает вес кодировки, по умолчанию 1.
func qValue(params string) float64 {
	for _, param := range strings.Split(params, ";") {
		name, value, ok := strings.Cut(param, "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(name), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return 1
		}
		return q
	}
	return 1
}

// GzipMiddleware - middleware сжатия ответов для клиентов, поддерживающих gzip.
func GzipMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if !acceptsGzip(r.Header.Get("Accept-Encoding")) {
			h.ServeHTTP(w, r)
			return
		}
		gzipWriter := newGzipWriter(w)
		defer func() {
			if err := gzipWriter.Close(); err != nil {
				logger.Log.Debug("cannot close gzip writer", zap.Error(err))
			}
		}()
		h.ServeHTTP(gzipWriter, r)
	})
}
