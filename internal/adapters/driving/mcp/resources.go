package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "wppm://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "sessions",
		Name:        "sessions",
		Description: "Saved fit sessions",
		MIMEType:    "application/json",
	}, s.handleSessionsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "sessions/{session}/report",
		Name:        "session-report",
		Description: "Parameter report of a saved session",
		MIMEType:    "text/plain",
	}, s.handleSessionReportResource)
}

func (s *Server) handleSessionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	text := "[]"
	if s.ports.Session != nil {
		sessions, err := s.ports.Session.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing sessions: %w", err)
		}

		type sessionInfo struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Strain string `json:"strain,omitempty"`
		}
		infos := make([]sessionInfo, len(sessions))
		for i, session := range sessions {
			infos[i] = sessionInfo{ID: session.ID, Name: session.Name}
			if session.Strain != nil {
				infos[i].Strain = string(session.Strain.Kind())
			}
		}
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling sessions: %w", err)
		}
		text = string(data)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     text,
		}},
	}, nil
}

func (s *Server) handleSessionReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Session == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	ref := extractSessionRef(req.Params.URI)
	if ref == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	session, err := s.ports.Session.Find(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("finding session: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     session.Report(),
		}},
	}, nil
}

// extractSessionRef extracts the session from wppm://sessions/{session}/report.
func extractSessionRef(uri string) string {
	const prefix = uriScheme + "sessions/"
	const suffix = "/report"

	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok {
		return ""
	}
	ref, ok := strings.CutSuffix(rest, suffix)
	if !ok || strings.Contains(ref, "/") {
		return ""
	}
	return ref
}
