package middleware

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"

	"currencyrates/internal/models"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for the compression middleware
type CompressionConfig struct {
	// MinLength is the smallest body, in bytes, that gets compressed
	MinLength int
	// Level is the gzip level, gzip.BestSpeed through gzip.BestCompression
	Level int
	// SkipContentTypes lists content type prefixes sent as is
	SkipContentTypes []string
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinLength:        1024,
		Level:            gzip.DefaultCompression,
		SkipContentTypes: []string{"image/", "video/", "audio/"},
	}
}

func (cfg CompressionConfig) compressible(contentType string, size int) bool {
	if size < cfg.MinLength {
		return false
	}
	for _, prefix := range cfg.SkipContentTypes {
		if strings.HasPrefix(contentType, prefix) {
			return false
		}
	}
	return true
}

// Compression inflates gzip request bodies and gzips responses for clients
// that accept it
func Compression(cfg CompressionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Content-Encoding"), "gzip") {
			if err := inflateBody(c.Request); err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest,
					models.NewErrorResponse(http.StatusBadRequest, err.Error()))
				return
			}
		}

		if !strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
			c.Next()
			return
		}

		bw := &bufferedWriter{ResponseWriter: c.Writer}
		c.Writer = bw
		c.Header("Vary", "Accept-Encoding")

		// On a panic the buffer is dropped and outer handlers write to the
		// real writer again
		defer func() { c.Writer = bw.ResponseWriter }()

		c.Next()

		if err := bw.flush(cfg); err != nil {
			_ = c.Error(err)
		}
	}
}

func inflateBody(r *http.Request) error {
	zr, err := gzip.NewReader(r.Body)
	if err != nil {
		return fmt.Errorf("invalid gzip body: %w", err)
	}
	defer zr.Close()

	body, err := io.ReadAll(zr)
	if err != nil {
		return fmt.Errorf("invalid gzip body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	r.Header.Del("Content-Encoding")
	r.ContentLength = int64(len(body))
	return nil
}

// bufferedWriter holds the response body until the handler chain is done so
// the size is known before choosing an encoding
type bufferedWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bufferedWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *bufferedWriter) Written() bool {
	return w.buf.Len() > 0 || w.ResponseWriter.Written()
}

func (w *bufferedWriter) flush(cfg CompressionConfig) error {
	body := w.buf.Bytes()
	if !cfg.compressible(w.Header().Get("Content-Type"), len(body)) {
		_, err := w.ResponseWriter.Write(body)
		return err
	}

	zw, err := gzip.NewWriterLevel(w.ResponseWriter, cfg.Level)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")

	if _, err := zw.Write(body); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
