package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/syndication"
	"github.com/lysyi3m/syndication/app/metrics"
	"github.com/lysyi3m/syndication/app/report"
)

const (
	atomContentType = "application/atom+xml; charset=utf-8"
	rssContentType  = "application/rss+xml; charset=utf-8"
)

func NewHandler(recorder metrics.Recorder, maxBodyBytes int64, version string) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		metrics:      recorder,
		maxBodyBytes: maxBodyBytes,
		version:      version,
	}
}

// Convert parses the request body and writes it back in the format named by
// the :format parameter.
func (h *Handler) Convert(c *gin.Context) {
	target := c.Param("format")
	if target != "atom" && target != "rss" {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "Unsupported format",
			Message: "Format must be 'atom' or 'rss'",
		})
		return
	}

	start := time.Now()

	feed, ok := h.parseBody(c)
	if !ok {
		return
	}

	var out, contentType string
	switch target {
	case "atom":
		out, contentType = syndication.ToAtomString(feed), atomContentType
	case "rss":
		out, contentType = syndication.ToRSSString(feed), rssContentType
	}

	h.metrics.RecordConversion(feed.SourceFormat(), target)
	h.metrics.RecordLatency(time.Since(start))

	c.Header("X-Feed-Entries", strconv.Itoa(len(feed.Entries)))
	c.Header("X-Source-Format", feed.SourceFormat())
	c.Data(http.StatusOK, contentType, []byte(out))
}

// Inspect parses the request body and responds with a JSON summary.
func (h *Handler) Inspect(c *gin.Context) {
	feed, ok := h.parseBody(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, report.New(feed))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   h.version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// parseBody reads the request body within the configured limit and parses
// it. On failure the response has been written and ok is false.
func (h *Handler) parseBody(c *gin.Context) (*syndication.Feed, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, errorResponse{
				Error:   "Request body too large",
				Message: "Limit is " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
			})
			return nil, false
		}
		slog.Error("Failed to read request body", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Failed to read request body"})
		return nil, false
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Empty request body"})
		return nil, false
	}

	feed, err := syndication.ParseBytes(body)
	if err != nil {
		h.metrics.RecordParseFailure()
		if errors.Is(err, syndication.ErrUnrecognizedFormat) {
			slog.Debug("Unrecognized feed document", "path", c.FullPath(), "bytes", len(body))
			c.JSON(http.StatusUnprocessableEntity, errorResponse{
				Error:   "Unrecognized document",
				Message: err.Error(),
			})
			return nil, false
		}
		slog.Error("Failed to parse feed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to parse feed"})
		return nil, false
	}

	return feed, true
}
