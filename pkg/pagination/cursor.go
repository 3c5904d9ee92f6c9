package pagination

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Cursor represents a pagination cursor
type Cursor struct {
	ID      string    `json:"id"`
	StartAt time.Time `json:"start_at"`
}

// Encode encodes the cursor to a base64 string
func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.URLEncoding.EncodeToString(data)
}

// DecodeCursor decodes a base64 cursor string
func DecodeCursor(encoded string) (*Cursor, error) {
	if encoded == "" {
		return nil, nil
	}

	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, err
	}

	return &cursor, nil
}

// NormalizeLimit ensures limit is within bounds
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
