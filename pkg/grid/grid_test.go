package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g, err := New(2, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Cols)
	assert.Equal(t, 2.0, g.At(0, 1))
	assert.Equal(t, 4.0, g.At(1, 0))
	assert.Equal(t, 6.0, g.At(1, 2))
}

func TestNewRejectsSizeMismatch(t *testing.T) {
	tests := []struct {
		name  string
		rows  int
		cols  int
		cells int
	}{
		{"short frame", 8, 8, 63},
		{"long frame", 8, 8, 65},
		{"empty frame", 8, 8, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.rows, tt.cols, make([]float64, tt.cells))
			assert.Error(t, err)
		})
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	_, err := New(0, 8, nil)
	assert.Error(t, err)
	_, err = New(8, -1, nil)
	assert.Error(t, err)
}
