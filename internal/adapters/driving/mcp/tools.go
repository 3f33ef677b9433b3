package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/wppm-cli/internal/adapters/driven/setupdoc"
	"github.com/custodia-labs/wppm-cli/internal/core/domain"
)

// LaueGroupsInput is the input schema for the laue_groups tool.
type LaueGroupsInput struct{}

// LaueGroupOutput describes one Laue group.
type LaueGroupOutput struct {
	ID           int      `json:"id"`
	Label        string   `json:"label"`
	Coefficients []string `json:"coefficients"`
	Validated    bool     `json:"validated"`
}

// LaueGroupsOutput is the output schema for the laue_groups tool.
type LaueGroupsOutput struct {
	Groups []LaueGroupOutput `json:"groups"`
}

// InvariantInput is the input schema for the strain_invariant tool.
type InvariantInput struct {
	LaueGroup    string             `json:"laue_group" jsonschema:"Laue group label such as m3m, or class id 1-14"`
	Coefficients map[string]float64 `json:"coefficients,omitempty" jsonschema:"coefficient values keyed e1..e15; unset ones default to 1e-4"`
	Reflections  []string           `json:"reflections" jsonschema:"reflections as h,k,l"`
}

// InvariantValue is the invariant at one reflection.
type InvariantValue struct {
	Reflection string  `json:"reflection"`
	Value      float64 `json:"value"`
}

// InvariantOutput is the output schema for the strain_invariant tool.
type InvariantOutput struct {
	LaueGroup string           `json:"laue_group"`
	Validated bool             `json:"validated"`
	Values    []InvariantValue `json:"values"`
}

// WarrenInput is the input schema for the warren_plot tool.
type WarrenInput struct {
	Setup       string   `json:"setup,omitempty" jsonschema:"setup document in TOML"`
	Session     string   `json:"session,omitempty" jsonschema:"saved session ID or name"`
	Reflections []string `json:"reflections" jsonschema:"reflections as h,k,l"`
	LMax        float64  `json:"lmax,omitempty" jsonschema:"largest correlation length (default 50)"`
}

// WarrenCurve is one Warren plot.
type WarrenCurve struct {
	Reflection string    `json:"reflection"`
	L          []float64 `json:"l"`
	Value      []float64 `json:"value"`
}

// WarrenOutput is the output schema for the warren_plot tool.
type WarrenOutput struct {
	Plots []WarrenCurve `json:"plots"`
}

// SizeInput is the input schema for the size_distribution tool.
type SizeInput struct {
	Setup   string `json:"setup,omitempty" jsonschema:"setup document in TOML"`
	Session string `json:"session,omitempty" jsonschema:"saved session ID or name"`

	Shape        string   `json:"shape,omitempty" jsonschema:"crystallite shape (default sphere)"`
	Distribution string   `json:"distribution,omitempty" jsonschema:"distribution family (default lognormal)"`
	Mu           *float64 `json:"mu,omitempty" jsonschema:"location parameter, required when no setup is given"`
	Sigma        *float64 `json:"sigma,omitempty" jsonschema:"scale parameter, required for lognormal when no setup is given"`

	Min float64 `json:"min,omitempty" jsonschema:"lower diameter bound; only valid together with max"`
	Max float64 `json:"max,omitempty" jsonschema:"upper diameter bound; 0 searches the domain automatically from 0"`
}

// SizeOutput is the output schema for the size_distribution tool.
type SizeOutput struct {
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Degraded bool      `json:"degraded"`
	Cause    string    `json:"cause,omitempty"`
	X        []float64 `json:"x"`
	Y        []float64 `json:"y"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "laue_groups",
		Description: "List the 14 Laue groups and the strain coefficients each one uses",
	}, s.handleLaueGroups)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "strain_invariant",
		Description: "Evaluate the symmetry-reduced quartic strain invariant at reflections",
	}, s.handleInvariant)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "warren_plot",
		Description: "Evaluate Warren plots of a setup's strain model",
	}, s.handleWarren)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "size_distribution",
		Description: "Sample a crystallite-size distribution",
	}, s.handleSize)
}

func (s *Server) handleLaueGroups(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ LaueGroupsInput,
) (*mcp.CallToolResult, LaueGroupsOutput, error) {
	groups := s.ports.Laue.Groups()
	out := LaueGroupsOutput{Groups: make([]LaueGroupOutput, 0, len(groups))}
	for _, g := range groups {
		class, err := domain.SymmetryClassByID(g.ID)
		if err != nil {
			return nil, LaueGroupsOutput{}, err
		}
		entry := LaueGroupOutput{ID: g.ID, Label: g.Label, Validated: class.Validated}
		for _, n := range class.Primary().Indices() {
			entry.Coefficients = append(entry.Coefficients, domain.CoefficientName(n))
		}
		out.Groups = append(out.Groups, entry)
	}
	return nil, out, nil
}

func (s *Server) handleInvariant(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input InvariantInput,
) (*mcp.CallToolResult, InvariantOutput, error) {
	reflections, err := parseReflections(input.Reflections)
	if err != nil {
		return nil, InvariantOutput{}, err
	}
	id, err := setupdoc.ParseLaueGroup(input.LaueGroup)
	if err != nil {
		return nil, InvariantOutput{}, err
	}
	model, err := domain.DefaultInvariantModel(id)
	if err != nil {
		return nil, InvariantOutput{}, err
	}
	for name, v := range input.Coefficients {
		n, err := setupdoc.ParseCoefficientName(name)
		if err != nil {
			return nil, InvariantOutput{}, err
		}
		if err := model.SetCoefficient(n, domain.NewParameter(name, v)); err != nil {
			return nil, InvariantOutput{}, err
		}
	}

	class := model.Class()
	out := InvariantOutput{LaueGroup: class.Label, Validated: class.Validated}
	for _, r := range reflections {
		v, err := model.Invariant(r)
		if err != nil {
			return nil, InvariantOutput{}, err
		}
		out.Values = append(out.Values, InvariantValue{Reflection: r.String(), Value: v})
	}
	return nil, out, nil
}

func (s *Server) handleWarren(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input WarrenInput,
) (*mcp.CallToolResult, WarrenOutput, error) {
	reflections, err := parseReflections(input.Reflections)
	if err != nil {
		return nil, WarrenOutput{}, err
	}
	session, err := s.resolveSession(ctx, input.Setup, input.Session)
	if err != nil {
		return nil, WarrenOutput{}, err
	}
	if session.Strain == nil {
		return nil, WarrenOutput{}, fmt.Errorf("strain model: %w", domain.ErrMissingRequiredParameter)
	}

	plots, err := s.ports.Strain.WarrenPlots(ctx, session.Strain, reflections, s.lMax(input.LMax))
	if err != nil {
		return nil, WarrenOutput{}, err
	}

	out := WarrenOutput{Plots: make([]WarrenCurve, len(plots))}
	for i, p := range plots {
		out.Plots[i] = WarrenCurve{Reflection: p.Reflection.String(), L: p.X, Value: p.Y}
	}
	return nil, out, nil
}

func (s *Server) handleSize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SizeInput,
) (*mcp.CallToolResult, SizeOutput, error) {
	if input.Max == 0 && input.Min != 0 {
		return nil, SizeOutput{}, fmt.Errorf("min %g without max: %w", input.Min, domain.ErrInvalidInput)
	}
	size, err := s.sizeFromInput(ctx, input)
	if err != nil {
		return nil, SizeOutput{}, err
	}

	opts := domain.DistributionOptions{Auto: input.Max == 0}
	if !opts.Auto {
		opts.Min, opts.Max = input.Min, input.Max
	}
	result, err := s.ports.Size.Distribution(ctx, size, opts)
	if err != nil {
		return nil, SizeOutput{}, err
	}

	out := SizeOutput{
		Min: result.Min, Max: result.Max, Degraded: result.Degraded,
		X: result.X, Y: result.Y,
	}
	if result.Cause != nil {
		out.Cause = result.Cause.Error()
	}
	return nil, out, nil
}

func (s *Server) sizeFromInput(ctx context.Context, input SizeInput) (*domain.SizeDistribution, error) {
	if input.Setup != "" || input.Session != "" {
		session, err := s.resolveSession(ctx, input.Setup, input.Session)
		if err != nil {
			return nil, err
		}
		if session.Size == nil {
			return nil, fmt.Errorf("size distribution: %w", domain.ErrMissingRequiredParameter)
		}
		return session.Size, nil
	}

	doc := setupdoc.Size{
		Shape:        input.Shape,
		Distribution: input.Distribution,
	}
	if input.Mu != nil {
		doc.Mu = &setupdoc.Parameter{Value: *input.Mu}
	}
	if input.Sigma != nil {
		doc.Sigma = &setupdoc.Parameter{Value: *input.Sigma}
	}
	session, err := (&setupdoc.Document{Name: "mcp", Size: &doc}).ToSession()
	if err != nil {
		return nil, err
	}
	return session.Size, nil
}

// lMax returns requested when positive, otherwise the configured strain.lmax.
func (s *Server) lMax(requested float64) float64 {
	if requested > 0 {
		return requested
	}
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil && settings.Strain.LMax > 0 {
			return settings.Strain.LMax
		}
	}
	return domain.DefaultCorrelationLengthMax
}

func parseReflections(in []string) ([]domain.Reflection, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("at least one reflection: %w", domain.ErrInvalidInput)
	}
	out := make([]domain.Reflection, len(in))
	for i, s := range in {
		r, err := domain.ParseReflection(s)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}
