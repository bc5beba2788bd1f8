package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPositioning(t *testing.T) {
	p := NewPositioning()
	assert.Equal(t, &Positioning{X: 0, Y: 0, Width: 3, Height: 3, MaxWidth: 12}, p)
}

func TestPositioningAdvance(t *testing.T) {
	tests := []struct {
		name  string
		start Positioning
		want  Positioning
	}{
		{
			name:  "full row widget wraps to a new row",
			start: Positioning{X: 0, Y: 0, Width: 12, Height: 3, MaxWidth: 12},
			want:  Positioning{X: 0, Y: 3, Width: 12, Height: 3, MaxWidth: 12},
		},
		{
			name:  "narrow widget moves right",
			start: Positioning{X: 0, Y: 0, Width: 3, Height: 3, MaxWidth: 12},
			want:  Positioning{X: 3, Y: 0, Width: 3, Height: 3, MaxWidth: 12},
		},
		{
			name:  "widget ending flush with the edge wraps",
			start: Positioning{X: 9, Y: 6, Width: 3, Height: 3, MaxWidth: 12},
			want:  Positioning{X: 0, Y: 9, Width: 3, Height: 3, MaxWidth: 12},
		},
		{
			name:  "mid row keeps packing right",
			start: Positioning{X: 3, Y: 6, Width: 3, Height: 3, MaxWidth: 12},
			want:  Positioning{X: 6, Y: 6, Width: 3, Height: 3, MaxWidth: 12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			p.Advance()
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestPositioningAdvanceSequence(t *testing.T) {
	// Three full-row widgets stack vertically.
	p := NewPositioning()
	p.Width = 12
	for i := 1; i <= 3; i++ {
		p.Advance()
		assert.Equal(t, 0, p.X)
		assert.Equal(t, 3*i, p.Y)
	}
}
