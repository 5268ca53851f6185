package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for brief resources.
	uriScheme = "brief://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the assembled semantic graph.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "graph",
		Name:        "semantic-graph",
		Description: "Concept graph assembled from the ingested documents",
		MIMEType:    "application/json",
	}, s.handleGraphResource)

	// Static resource for the extracted event timeline.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "timeline",
		Name:        "timeline",
		Description: "Dated events extracted from the ingested documents",
		MIMEType:    "application/json",
	}, s.handleTimelineResource)
}

// handleGraphResource returns the semantic graph as JSON.
func (s *Server) handleGraphResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Graph == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	model, err := s.ports.Graph.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing graph: %w", err)
	}

	type nodeInfo struct {
		ID    string `json:"id"`
		Label string `json:"label"`
	}
	type edgeInfo struct {
		Source string `json:"source"`
		Target string `json:"target"`
	}
	payload := struct {
		Nodes []nodeInfo `json:"nodes"`
		Edges []edgeInfo `json:"edges"`
	}{
		Nodes: make([]nodeInfo, 0, len(model.Nodes)),
		Edges: make([]edgeInfo, 0, len(model.Edges)),
	}
	for _, id := range model.NodeIDs() {
		payload.Nodes = append(payload.Nodes, nodeInfo{ID: id, Label: model.Nodes[id].Label})
	}
	for _, e := range model.Edges {
		payload.Edges = append(payload.Edges, edgeInfo{Source: e.Source, Target: e.Target})
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling graph: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleTimelineResource returns the extracted event timeline as JSON.
func (s *Server) handleTimelineResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Timeline == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	events, err := s.ports.Timeline.Events(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching timeline: %w", err)
	}

	type eventInfo struct {
		Date   string `json:"date"`
		Source string `json:"source"`
		Event  string `json:"event"`
	}
	infos := make([]eventInfo, len(events))
	for i, e := range events {
		infos[i] = eventInfo{Date: e.Date, Source: e.Source, Event: e.Event}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling timeline: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
