package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/avekoi/pngbox/pkg/png"
)

// Server holds the API server state
type Server struct {
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleInspect parses the uploaded image and returns its decoded header
// metadata plus a per-chunk listing.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}

	img, ok := s.parseImage(w, body)
	if !ok {
		return
	}

	resp := InspectResponse{
		Width:             img.Width,
		Height:            img.Height,
		BitDepth:          img.BitDepth,
		ColorType:         img.ColorType,
		CompressionMethod: img.CompressionMethod,
		FilterMethod:      img.FilterMethod,
		InterlaceMethod:   img.InterlaceMethod,
		Chunks:            make([]ChunkInfo, 0, len(img.Chunks)),
	}
	for i := range img.Chunks {
		c := &img.Chunks[i]
		resp.Chunks = append(resp.Chunks, ChunkInfo{
			Index:      i,
			Tag:        string(c.Tag),
			Length:     c.Length(),
			Critical:   c.Tag.Critical(),
			StoredCRC:  c.Checksum,
			ChecksumOK: c.VerifyChecksum(),
		})
	}

	sendSuccess(w, resp)
}

// handlePaletteShift parses the uploaded image, shifts one palette channel
// by the requested delta, and returns the re-exported image bytes.
func (s *Server) handlePaletteShift(w http.ResponseWriter, r *http.Request) {
	channelParam := r.URL.Query().Get("channel")
	if channelParam == "" {
		channelParam = "g"
	}
	channel, err := png.ParseChannel(channelParam)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	deltaParam := r.URL.Query().Get("delta")
	if deltaParam == "" {
		sendError(w, "delta query parameter is required", http.StatusBadRequest)
		return
	}
	delta, err := strconv.Atoi(deltaParam)
	if err != nil {
		sendError(w, fmt.Sprintf("invalid delta %q", deltaParam), http.StatusBadRequest)
		return
	}

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	img, ok := s.parseImage(w, body)
	if !ok {
		return
	}

	if err := png.ShiftPalette(img, channel, delta); err != nil {
		sendError(w, fmt.Sprintf("%s: %v", errorKind(err), err), http.StatusUnprocessableEntity)
		return
	}

	out, err := img.Export()
	if err != nil {
		sendError(w, fmt.Sprintf("%s: %v", errorKind(err), err), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// readBody reads the request body under the configured size cap. On failure
// it writes the error response and returns ok=false.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := s.config.MaxBodyBytes
	if limit <= 0 {
		limit = 64 << 20
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		sendError(w, fmt.Sprintf("failed to read request body: %v", err), http.StatusBadRequest)
		return nil, false
	}
	if len(body) == 0 {
		sendError(w, "request body is empty", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

// parseImage runs png.Parse with metrics. Typed parse failures map to 422
// with the error kind in the response envelope.
func (s *Server) parseImage(w http.ResponseWriter, body []byte) (*png.Container, bool) {
	start := time.Now()
	img, err := png.Parse(body)

	if s.metrics != nil {
		chunks := 0
		if img != nil {
			chunks = len(img.Chunks)
		}
		s.metrics.RecordParse(err == nil, chunks, time.Since(start))
	}

	if err != nil {
		sendError(w, fmt.Sprintf("%s: %v", errorKind(err), err), http.StatusUnprocessableEntity)
		return nil, false
	}
	return img, true
}

// errorKind maps a typed codec failure to a stable identifier for clients.
func errorKind(err error) string {
	var formatErr *png.FormatError
	var unknownErr *png.UnknownChunkError
	var duplicateErr *png.DuplicateChunkError
	var missingErr *png.MissingChunkError
	var unsupportedErr *png.UnsupportedFeatureError
	var boundsErr *png.BoundsError

	switch {
	case errors.As(err, &formatErr):
		return "format_error"
	case errors.As(err, &unknownErr):
		return "unknown_chunk"
	case errors.As(err, &duplicateErr):
		return "duplicate_chunk"
	case errors.As(err, &missingErr):
		return "missing_chunk"
	case errors.As(err, &unsupportedErr):
		return "unsupported_feature"
	case errors.As(err, &boundsErr):
		return "bounds_error"
	}
	return "error"
}
