package mcp

import (
	"context"

	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// mockStrainService is a mock implementation of driving.StrainService.
type mockStrainService struct {
	lMax  float64
	model domain.StrainModel
	err   error
}

func (m *mockStrainService) WarrenPlot(
	_ context.Context,
	model domain.StrainModel,
	r domain.Reflection,
	lMax float64,
) (*domain.WarrenPlot, error) {
	m.model, m.lMax = model, lMax
	if m.err != nil {
		return nil, m.err
	}
	return &domain.WarrenPlot{
		Reflection: r,
		Curve:      domain.Curve{X: []float64{lMax / 2, lMax}, Y: []float64{1, 2}},
	}, nil
}

func (m *mockStrainService) WarrenPlots(
	ctx context.Context,
	model domain.StrainModel,
	rs []domain.Reflection,
	lMax float64,
) ([]domain.WarrenPlot, error) {
	out := make([]domain.WarrenPlot, 0, len(rs))
	for _, r := range rs {
		p, err := m.WarrenPlot(ctx, model, r, lMax)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// mockSizeService is a mock implementation of driving.SizeService.
type mockSizeService struct {
	size   *domain.SizeDistribution
	opts   domain.DistributionOptions
	result *domain.DistributionResult
	err    error
}

func (m *mockSizeService) Distribution(
	_ context.Context,
	size *domain.SizeDistribution,
	opts domain.DistributionOptions,
) (*domain.DistributionResult, error) {
	m.size, m.opts = size, opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.DistributionResult{
		Curve: domain.Curve{X: []float64{0, 1}, Y: []float64{0, 0.5}},
		Min:   0,
		Max:   2,
	}, nil
}

// mockSessionService is a mock implementation of driving.SessionService.
type mockSessionService struct {
	sessions []*domain.FitSession
	err      error
}

func (m *mockSessionService) Create(_ context.Context, s *domain.FitSession) (*domain.FitSession, error) {
	return s, m.err
}

func (m *mockSessionService) Get(ctx context.Context, id string) (*domain.FitSession, error) {
	return m.Find(ctx, id)
}

func (m *mockSessionService) Find(_ context.Context, ref string) (*domain.FitSession, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, s := range m.sessions {
		if s.ID == ref || s.Name == ref {
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockSessionService) List(_ context.Context) ([]*domain.FitSession, error) {
	return m.sessions, m.err
}

func (m *mockSessionService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockSessionService) Report(ctx context.Context, id string) (string, error) {
	s, err := m.Find(ctx, id)
	if err != nil {
		return "", err
	}
	return s.Report(), nil
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.err != nil {
		return nil, m.err
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	return nil
}

func (m *mockSettingsService) Set(_, _ string) error { return nil }

func (m *mockSettingsService) Keys() []string { return nil }

func (m *mockSettingsService) GetDefaults() domain.AppSettings { return domain.DefaultAppSettings() }

func floatPtr(v float64) *float64 { return &v }

func validPorts() *Ports {
	return &Ports{Strain: &mockStrainService{}, Size: &mockSizeService{}}
}

func cubicSession(t interface{ Fatal(...any) }) *domain.FitSession {
	model, err := domain.DefaultInvariantModel(14)
	if err != nil {
		t.Fatal(err)
	}
	return &domain.FitSession{ID: "s-1", Name: "ceria", Strain: model}
}
