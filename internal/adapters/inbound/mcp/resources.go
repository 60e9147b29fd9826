package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pagelint/pagelint/internal/adapters/outbound/checklist"
	"github.com/pagelint/pagelint/internal/domain"
)

// registerResources registers all pagelint MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	// 1. pagelint://checklist - the effective checklist
	s.AddResource(
		mcplib.NewResource(
			"pagelint://checklist",
			"Checklist",
			mcplib.WithResourceDescription("The effective checklist: resolved configuration file or the built-in defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChecklistResource(),
	)

	// 2. pagelint://checklist/{section} - one checklist section (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"pagelint://checklist/{section}",
			"Checklist Section",
			mcplib.WithTemplateDescription("Check definitions for a single checklist section"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSectionResource(),
	)
}

func handleChecklistResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cl, err := checklist.New("").Load()
		if err != nil {
			cl = domain.DefaultChecklist()
		}

		data, err := json.MarshalIndent(cl, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling checklist: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "pagelint://checklist",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSectionResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		sectionID, ok := request.Params.Arguments["section"].(string)
		if !ok || sectionID == "" {
			return nil, fmt.Errorf("section name is required")
		}

		cl, err := checklist.New("").Load()
		if err != nil {
			cl = domain.DefaultChecklist()
		}
		section, ok := cl.Sections[sectionID]
		if !ok {
			return nil, fmt.Errorf("unknown section %q", sectionID)
		}

		data, err := json.MarshalIndent(section, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling section: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
