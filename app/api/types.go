package api

import (
	"github.com/lysyi3m/syndication/app/metrics"
)

type Handler struct {
	metrics      metrics.Recorder
	maxBodyBytes int64
	version      string
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
