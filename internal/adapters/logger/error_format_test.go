package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/desk/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	root := errors.New("file does not exist")
	err := zerr.With(zerr.Wrap(root, "failed to open view"), "path", "home.yaml")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "failed to open view", entries[0].Message)
	assert.Equal(t, map[string]any{"path": "home.yaml"}, entries[0].Metadata)
	assert.Equal(t, "file does not exist", entries[1].Message)
	assert.Nil(t, entries[1].Metadata)
}

func TestCollectErrorEntries_MetadataOnlyLink(t *testing.T) {
	// zerr.With on a plain error inserts a link without a message.
	inner := zerr.With(errors.New("boom"), "attempt", 1)
	err := zerr.Wrap(inner, "outer")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 2)
	assert.Equal(t, "outer", entries[0].Message)
	assert.Equal(t, 1, entries[0].Metadata["attempt"])
	assert.Equal(t, "boom", entries[1].Message)
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name: "sorted metadata",
			entries: []logger.ErrorEntry{{
				Message:  "failed",
				Metadata: map[string]any{"view": "home", "cached": true},
			}},
			want: "Error: failed\n       cached: true\n       view: home",
		},
		{
			name: "chain",
			entries: []logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause\nsecond line", Metadata: map[string]any{"k": "v"}},
			},
			want: "Error: main\n\n  Caused by:\n    → cause\n      second line\n      k: v",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
