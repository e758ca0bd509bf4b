package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ChunkInfo describes one chunk of an inspected image.
type ChunkInfo struct {
	Index      int    `json:"index"`
	Tag        string `json:"tag"`
	Length     int    `json:"length"`
	Critical   bool   `json:"critical"`
	StoredCRC  uint32 `json:"stored_crc"`
	ChecksumOK bool   `json:"checksum_ok"`
}

// InspectResponse carries the decoded header metadata and the chunk
// listing of an inspected image.
type InspectResponse struct {
	Width             uint32      `json:"width"`
	Height            uint32      `json:"height"`
	BitDepth          uint8       `json:"bit_depth"`
	ColorType         uint8       `json:"color_type"`
	CompressionMethod uint8       `json:"compression_method"`
	FilterMethod      uint8       `json:"filter_method"`
	InterlaceMethod   uint8       `json:"interlace_method"`
	Chunks            []ChunkInfo `json:"chunks"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port         int
	Bind         string
	APIKey       string
	MaxBodyBytes int64 // request body cap for uploaded images
}
