package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copperKAlpha(weight float64) *Wavelengths {
	return &Wavelengths{
		Principal: NewParameter("wavelength", 0.15406),
		Secondary: []WeightedWavelength{{
			Wavelength: NewParameter("wavelength_2", 0.15444),
			Weight:     NewParameter("weight_2", weight),
		}},
	}
}

func TestWavelengths_PrincipalWeight(t *testing.T) {
	single := &Wavelengths{Principal: NewParameter("wavelength", 0.0826)}
	w, err := single.PrincipalWeight()
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)

	w, err = copperKAlpha(0.25).PrincipalWeight()
	require.NoError(t, err)
	assert.Equal(t, 0.75, w)

	for _, bad := range []float64{1.0, 1.2} {
		_, err = copperKAlpha(bad).PrincipalWeight()
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}

	noWeight := copperKAlpha(0.2)
	noWeight.Secondary[0].Weight = nil
	_, err = noWeight.PrincipalWeight()
	assert.ErrorIs(t, err, ErrMissingRequiredParameter)
}

func TestWavelengths_Report(t *testing.T) {
	single := &Wavelengths{Principal: NewParameter("wavelength", 0.0826)}
	assert.Equal(t, "DIFFRACTION PATTERN\n"+ReportDivider+"\nWavelength: wavelength 0.0826\n"+ReportDivider+"\n", single.Report())

	multi := copperKAlpha(0.5).Report()
	assert.Contains(t, multi, "Principal Wavelength: wavelength 0.15406, weight: 0.5\n")
	assert.Contains(t, multi, "Wavelength: wavelength_2 0.15444, weight: weight_2 0.5\n")

	bad := copperKAlpha(1.5).Report()
	assert.Contains(t, bad, "weight: n/a")
	assert.Equal(t, 2, strings.Count(bad, ReportDivider))
}

func TestWavelengths_Duplicate(t *testing.T) {
	w := copperKAlpha(0.5)
	cp := w.Duplicate()
	assert.Equal(t, w, cp)

	cp.Secondary[0].Weight.Value = 0.1
	assert.Equal(t, 0.5, w.Secondary[0].Weight.Value)
	assert.Len(t, w.Parameters(), 3)
}
