package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlay(t *testing.T) {
	tests := []struct {
		name string
		bg   string
		fg   string
		x, y int
		want string
	}{
		{
			name: "inside",
			bg:   "aaaaa\nbbbbb\nccccc",
			fg:   "XY",
			x:    2, y: 1,
			want: "aaaaa\nbbXYb\nccccc",
		},
		{
			name: "multi line",
			bg:   "aaaa\nbbbb\ncccc",
			fg:   "12\n34",
			x:    0, y: 1,
			want: "aaaa\n12bb\n34cc",
		},
		{
			name: "pads short line",
			bg:   "ab",
			fg:   "XY",
			x:    4, y: 0,
			want: "ab  XY",
		},
		{
			name: "appends rows",
			bg:   "a",
			fg:   "X",
			x:    0, y: 2,
			want: "a\n\nX",
		},
		{
			name: "empty foreground",
			bg:   "abc",
			fg:   "",
			x:    1, y: 0,
			want: "abc",
		},
		{
			name: "negative origin clamps",
			bg:   "abc",
			fg:   "X",
			x:    -3, y: -1,
			want: "Xbc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlay(tt.bg, tt.fg, tt.x, tt.y))
		})
	}
}
