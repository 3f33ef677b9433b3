package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

func TestServer_handleLaueGroups(t *testing.T) {
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	_, out, err := server.handleLaueGroups(context.Background(), nil, LaueGroupsInput{})
	require.NoError(t, err)
	require.Len(t, out.Groups, 14)

	cubic := out.Groups[13]
	assert.Equal(t, "m3m", cubic.Label)
	assert.Equal(t, []string{"e1", "e4"}, cubic.Coefficients)
	assert.True(t, cubic.Validated)
	assert.False(t, out.Groups[0].Validated)
}

func TestServer_handleInvariant(t *testing.T) {
	ctx := context.Background()
	server, err := NewServer(validPorts())
	require.NoError(t, err)

	t.Run("trigonal class with defaults", func(t *testing.T) {
		_, out, err := server.handleInvariant(ctx, nil, InvariantInput{
			LaueGroup:   "9",
			Reflections: []string{"1,1,1"},
		})
		require.NoError(t, err)
		assert.Equal(t, "-3m1", out.LaueGroup)
		require.Len(t, out.Values, 1)
		assert.Equal(t, "(1 1 1)", out.Values[0].Reflection)
		assert.InDelta(t, 8e-4, out.Values[0].Value, 1e-15)
	})

	t.Run("cubic override of e1", func(t *testing.T) {
		_, out, err := server.handleInvariant(ctx, nil, InvariantInput{
			LaueGroup:    "m3m",
			Coefficients: map[string]float64{"e1": 2e-4},
			Reflections:  []string{"2,0,0"},
		})
		require.NoError(t, err)
		assert.InDelta(t, 2e-4*16, out.Values[0].Value, 1e-15)
	})

	t.Run("derived coefficient is rejected", func(t *testing.T) {
		_, _, err := server.handleInvariant(ctx, nil, InvariantInput{
			LaueGroup:    "m3m",
			Coefficients: map[string]float64{"e2": 1},
			Reflections:  []string{"1,0,0"},
		})
		assert.ErrorIs(t, err, domain.ErrDerivedParameter)
	})

	t.Run("inactive coefficient is rejected", func(t *testing.T) {
		_, _, err := server.handleInvariant(ctx, nil, InvariantInput{
			LaueGroup:    "6/mmm",
			Coefficients: map[string]float64{"e7": 1},
			Reflections:  []string{"1,0,0"},
		})
		assert.ErrorIs(t, err, domain.ErrInactiveCoefficient)
	})

	t.Run("bad inputs", func(t *testing.T) {
		_, _, err := server.handleInvariant(ctx, nil, InvariantInput{LaueGroup: "m3m"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		_, _, err = server.handleInvariant(ctx, nil, InvariantInput{LaueGroup: "p4", Reflections: []string{"1,0,0"}})
		assert.ErrorIs(t, err, domain.ErrUnknownSymmetryClass)
	})
}

func TestServer_handleWarren(t *testing.T) {
	ctx := context.Background()

	t.Run("evaluates an inline setup", func(t *testing.T) {
		strain := &mockStrainService{}
		server, err := NewServer(&Ports{Strain: strain, Size: &mockSizeService{}})
		require.NoError(t, err)

		_, out, err := server.handleWarren(ctx, nil, WarrenInput{
			Setup:       "[strain]\nmodel = \"invariant\"\nlaue_group = \"m3m\"\n",
			Reflections: []string{"1,1,1", "2,0,0"},
		})
		require.NoError(t, err)
		require.Len(t, out.Plots, 2)
		assert.Equal(t, "(2 0 0)", out.Plots[1].Reflection)
		assert.Equal(t, domain.DefaultCorrelationLengthMax, strain.lMax)
		assert.Equal(t, domain.StrainInvariant, strain.model.Kind())
	})

	t.Run("honours lmax", func(t *testing.T) {
		strain := &mockStrainService{}
		server, err := NewServer(&Ports{Strain: strain, Size: &mockSizeService{}})
		require.NoError(t, err)

		_, out, err := server.handleWarren(ctx, nil, WarrenInput{
			Setup:       "[strain]\nmodel = \"invariant\"\nlaue_group = \"m3m\"\n",
			Reflections: []string{"1,1,1"},
			LMax:        80,
		})
		require.NoError(t, err)
		assert.Equal(t, 80.0, strain.lMax)
		assert.Equal(t, []float64{40, 80}, out.Plots[0].L)
	})

	t.Run("uses configured lmax", func(t *testing.T) {
		strain := &mockStrainService{}
		settings := &mockSettingsService{settings: domain.DefaultAppSettings()}
		settings.settings.Strain.LMax = 120
		server, err := NewServer(&Ports{Strain: strain, Size: &mockSizeService{}, Settings: settings})
		require.NoError(t, err)

		_, _, err = server.handleWarren(ctx, nil, WarrenInput{
			Setup:       "[strain]\nmodel = \"invariant\"\nlaue_group = \"m3m\"\n",
			Reflections: []string{"1,1,1"},
		})
		require.NoError(t, err)
		assert.Equal(t, 120.0, strain.lMax)
	})

	t.Run("settings failure falls back to default lmax", func(t *testing.T) {
		strain := &mockStrainService{}
		settings := &mockSettingsService{err: errors.New("config unreadable")}
		server, err := NewServer(&Ports{Strain: strain, Size: &mockSizeService{}, Settings: settings})
		require.NoError(t, err)

		_, _, err = server.handleWarren(ctx, nil, WarrenInput{
			Setup:       "[strain]\nmodel = \"invariant\"\nlaue_group = \"m3m\"\n",
			Reflections: []string{"1,1,1"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCorrelationLengthMax, strain.lMax)
	})

	t.Run("setup without strain model", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		_, _, err = server.handleWarren(ctx, nil, WarrenInput{Setup: "name = \"x\"\n", Reflections: []string{"1,1,1"}})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredParameter)
	})

	t.Run("service failure", func(t *testing.T) {
		ports := validPorts()
		ports.Strain = &mockStrainService{err: errors.New("kernel exploded")}
		ports.Session = &mockSessionService{sessions: []*domain.FitSession{cubicSession(t)}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		_, _, err = server.handleWarren(ctx, nil, WarrenInput{Session: "s-1", Reflections: []string{"1,1,1"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "kernel exploded")
	})
}

func TestServer_handleSize(t *testing.T) {
	ctx := context.Background()

	t.Run("automatic domain from parameters", func(t *testing.T) {
		size := &mockSizeService{}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, out, err := server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(2.5), Sigma: floatPtr(0.3)})
		require.NoError(t, err)
		assert.True(t, size.opts.Auto)
		assert.Equal(t, domain.ShapeSphere, size.size.Shape)
		assert.Equal(t, 2.5, size.size.Location.Value)
		assert.Equal(t, 2.0, out.Max)
	})

	t.Run("explicit domain", func(t *testing.T) {
		size := &mockSizeService{}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(2.5), Sigma: floatPtr(0.3), Min: 1, Max: 40})
		require.NoError(t, err)
		assert.Equal(t, domain.DistributionOptions{Min: 1, Max: 40}, size.opts)
	})

	t.Run("degraded result carries the cause", func(t *testing.T) {
		size := &mockSizeService{result: &domain.DistributionResult{
			Min: 0, Max: 1000, Degraded: true, Cause: domain.ErrInvalidDomain,
		}}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, out, err := server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(2.5), Sigma: floatPtr(0.3)})
		require.NoError(t, err)
		assert.True(t, out.Degraded)
		assert.Equal(t, domain.ErrInvalidDomain.Error(), out.Cause)
	})

	t.Run("lognormal needs sigma", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(2.5)})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredParameter)
	})

	t.Run("setup without size", func(t *testing.T) {
		server, err := NewServer(validPorts())
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Setup: "name = \"x\"\n"})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredParameter)
	})

	t.Run("missing mu is rejected", func(t *testing.T) {
		size := &mockSizeService{}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Sigma: floatPtr(0.3)})
		assert.ErrorIs(t, err, domain.ErrMissingRequiredParameter)
		assert.Nil(t, size.size, "size service must not be called")
	})

	t.Run("explicit zero mu is kept", func(t *testing.T) {
		size := &mockSizeService{}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(0), Sigma: floatPtr(0.3)})
		require.NoError(t, err)
		require.NotNil(t, size.size.Location)
		assert.Equal(t, 0.0, size.size.Location.Value)
	})

	t.Run("min without max is rejected", func(t *testing.T) {
		size := &mockSizeService{}
		server, err := NewServer(&Ports{Strain: &mockStrainService{}, Size: size})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Mu: floatPtr(2.5), Sigma: floatPtr(0.3), Min: 5})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Nil(t, size.size)
	})
}
