package common

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCursor_RoundTrip(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 589793238, time.UTC)

	encoded := EncodeCursor(at, 42)
	decoded, err := DecodeCursor(encoded)

	assert.NoError(t, err)
	assert.NotNil(t, decoded)
	assert.Equal(t, uint64(42), decoded.ID)
	assert.True(t, decoded.CreatedAt.Equal(at))
}

func TestDecodeCursor_EmptyMeansStart(t *testing.T) {
	cursor, err := DecodeCursor("")
	assert.NoError(t, err)
	assert.Nil(t, cursor)
}

func TestDecodeCursor_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "%%%"},
		{"no separator", base64.RawURLEncoding.EncodeToString([]byte("123456"))},
		{"non-numeric time", base64.RawURLEncoding.EncodeToString([]byte("abc:1"))},
		{"non-numeric id", base64.RawURLEncoding.EncodeToString([]byte("123:xyz"))},
		{"negative id", base64.RawURLEncoding.EncodeToString([]byte("123:-5"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor, err := DecodeCursor(tt.input)
			assert.ErrorIs(t, err, ErrInvalidCursor)
			assert.Nil(t, cursor)
		})
	}
}
