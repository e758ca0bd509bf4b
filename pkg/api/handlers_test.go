package api

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avekoi/pngbox/pkg/png"
)

// testImage assembles a complete image buffer with the given color type and
// middle chunks (between IHDR and IEND).
func testImage(t *testing.T, colorType byte, middle ...png.Chunk) []byte {
	t.Helper()

	header := make([]byte, 13)
	binary.BigEndian.PutUint32(header[0:4], 4)
	binary.BigEndian.PutUint32(header[4:8], 4)
	header[8] = 8
	header[9] = colorType

	chunks := []png.Chunk{png.NewChunk(png.TagHeader, header)}
	chunks = append(chunks, middle...)
	chunks = append(chunks, png.NewChunk(png.TagEnd, nil))

	img := &png.Container{Chunks: chunks}
	data, err := img.Export()
	require.NoError(t, err)
	return data
}

func newTestServer() *Server {
	// Metrics are nil in tests to avoid registering collectors on the
	// global Prometheus registry per test run.
	return NewServer(ServerConfig{APIKey: "test-key", MaxBodyBytes: 1 << 20}, nil)
}

type inspectEnvelope struct {
	Success bool            `json:"success"`
	Data    InspectResponse `json:"data"`
	Error   string          `json:"error"`
}

func TestHandleInspect(t *testing.T) {
	server := newTestServer()

	t.Run("valid image", func(t *testing.T) {
		data := testImage(t, png.ColorTruecolor, png.NewChunk(png.TagImageData, []byte{1, 2, 3}))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inspect", bytes.NewReader(data))
		rec := httptest.NewRecorder()
		server.handleInspect(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var envelope inspectEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.True(t, envelope.Success)
		assert.Equal(t, uint32(4), envelope.Data.Width)
		assert.Equal(t, uint32(4), envelope.Data.Height)
		assert.Equal(t, uint8(png.ColorTruecolor), envelope.Data.ColorType)
		require.Len(t, envelope.Data.Chunks, 3)
		assert.Equal(t, "IHDR", envelope.Data.Chunks[0].Tag)
		assert.Equal(t, "IDAT", envelope.Data.Chunks[1].Tag)
		assert.Equal(t, "IEND", envelope.Data.Chunks[2].Tag)
		for _, c := range envelope.Data.Chunks {
			assert.True(t, c.Critical)
			assert.True(t, c.ChecksumOK)
		}
	})

	t.Run("bad signature returns 422 with error kind", func(t *testing.T) {
		data := testImage(t, png.ColorTruecolor, png.NewChunk(png.TagImageData, []byte{1}))
		data[0] ^= 0xFF

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inspect", bytes.NewReader(data))
		rec := httptest.NewRecorder()
		server.handleInspect(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var envelope inspectEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.False(t, envelope.Success)
		assert.Contains(t, envelope.Error, "format_error")
	})

	t.Run("unknown chunk returns 422 with error kind", func(t *testing.T) {
		data := testImage(t, png.ColorTruecolor,
			png.NewChunk(png.TagImageData, []byte{1}),
			png.NewChunk("abcd", []byte{2}),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/inspect", bytes.NewReader(data))
		rec := httptest.NewRecorder()
		server.handleInspect(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var envelope inspectEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.Contains(t, envelope.Error, "unknown_chunk")
	})

	t.Run("empty body returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/inspect", bytes.NewReader(nil))
		rec := httptest.NewRecorder()
		server.handleInspect(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandlePaletteShift(t *testing.T) {
	server := newTestServer()

	paletteImage := func(t *testing.T) []byte {
		return testImage(t, png.ColorPalette,
			png.NewChunk(png.TagPalette, []byte{10, 250, 30, 40, 2, 60}),
			png.NewChunk(png.TagImageData, []byte{1}),
		)
	}

	t.Run("shifts the green channel with clamping", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/palette/shift?channel=g&delta=18", bytes.NewReader(paletteImage(t)))
		rec := httptest.NewRecorder()
		server.handlePaletteShift(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))

		img, err := png.Parse(rec.Body.Bytes())
		require.NoError(t, err)
		m, ok := img.FindByTag(png.TagPalette).Single()
		require.True(t, ok)
		assert.Equal(t, []byte{10, 255, 30, 40, 20, 60}, m.Chunk.Payload)
	})

	t.Run("missing delta returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/palette/shift?channel=g", bytes.NewReader(paletteImage(t)))
		rec := httptest.NewRecorder()
		server.handlePaletteShift(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid channel returns 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/palette/shift?channel=x&delta=1", bytes.NewReader(paletteImage(t)))
		rec := httptest.NewRecorder()
		server.handlePaletteShift(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("image without palette returns 422", func(t *testing.T) {
		data := testImage(t, png.ColorTruecolor, png.NewChunk(png.TagImageData, []byte{1}))

		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/palette/shift?channel=g&delta=18", bytes.NewReader(data))
		rec := httptest.NewRecorder()
		server.handlePaletteShift(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var envelope inspectEnvelope
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
		assert.Contains(t, envelope.Error, "missing_chunk")
	})
}
