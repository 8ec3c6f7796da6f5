package common

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cursor is an opaque pagination position over (created_at, id). Ties on
// created_at are broken by id so a page boundary never skips or repeats rows.
type Cursor struct {
	CreatedAt time.Time
	ID        uint64
}

// EncodeCursor serializes a cursor to its opaque wire form
func EncodeCursor(createdAt time.Time, id uint64) string {
	raw := fmt.Sprintf("%d:%d", createdAt.UnixNano(), id)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses an opaque cursor string. Empty input yields a nil
// cursor (start from the beginning).
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}

	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	parts := strings.SplitN(string(raw), ":", 2)
	if len(parts) != 2 {
		return nil, ErrInvalidCursor
	}
	nanos, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	id, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, ErrInvalidCursor
	}

	return &Cursor{CreatedAt: time.Unix(0, nanos), ID: id}, nil
}
