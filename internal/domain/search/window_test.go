package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestWindowApplies(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   bool
	}{
		{"both absent", Window{}, false},
		{"offset only", NewWindow(intPtr(0), nil), false},
		{"limit only", NewWindow(nil, intPtr(10)), false},
		{"first page", NewWindow(intPtr(0), intPtr(10)), true},
		{"later page", NewWindow(intPtr(20), intPtr(10)), true},
		{"negative offset", NewWindow(intPtr(-1), intPtr(10)), false},
		{"zero limit", NewWindow(intPtr(0), intPtr(0)), false},
		{"negative limit", NewWindow(intPtr(0), intPtr(-5)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.window.Applies())
		})
	}
}

func TestWindowBounds(t *testing.T) {
	offset, limit := NewWindow(intPtr(30), intPtr(15)).Bounds()
	assert.Equal(t, uint64(30), offset)
	assert.Equal(t, uint64(15), limit)

	for _, w := range []Window{{}, NewWindow(intPtr(5), nil), NewWindow(nil, intPtr(5)), NewWindow(intPtr(-1), intPtr(5))} {
		offset, limit := w.Bounds()
		assert.Zero(t, offset)
		assert.Zero(t, limit)
	}
}
