package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReflection(t *testing.T) {
	tests := []struct {
		in      string
		want    Reflection
		wantErr bool
	}{
		{"1,1,1", Reflection{1, 1, 1}, false},
		{"2 0 0", Reflection{2, 0, 0}, false},
		{"(3 1 1)", Reflection{3, 1, 1}, false},
		{"-1,2,0", Reflection{-1, 2, 0}, false},
		{"1,1", Reflection{}, true},
		{"a,b,c", Reflection{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseReflection(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, "(2 2 0)", Reflection{2, 2, 0}.String())
	assert.Equal(t, 8, Reflection{2, 2, 0}.SumSquares())
}

func TestDiameterGrid(t *testing.T) {
	x, err := DiameterGrid(0, 1000)
	require.NoError(t, err)
	require.Len(t, x, DiameterSamples)
	assert.Equal(t, 0.0, x[0])
	assert.Equal(t, 999.0, x[len(x)-1])

	x, err = DiameterGrid(10, 20)
	require.NoError(t, err)
	assert.Equal(t, 10.0, x[0])
	assert.InDelta(t, 19.99, x[len(x)-1], 1e-9)

	for _, tt := range [][2]float64{{5, 5}, {10, 1}} {
		_, err := DiameterGrid(tt[0], tt[1])
		assert.ErrorIs(t, err, ErrInvalidDomain)
	}
}

func TestCorrelationLengthGrid(t *testing.T) {
	l, err := CorrelationLengthGrid(50)
	require.NoError(t, err)
	require.Len(t, l, CorrelationLengthSamples)
	assert.Equal(t, 0.5, l[0])
	assert.Equal(t, 50.0, l[len(l)-1])
	for i := 1; i < len(l); i++ {
		assert.Greater(t, l[i], l[i-1])
	}

	_, err = CorrelationLengthGrid(0)
	assert.ErrorIs(t, err, ErrInvalidDomain)
	_, err = CorrelationLengthGrid(-3)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}
