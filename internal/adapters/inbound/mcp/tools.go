package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/pagelint/pagelint/internal/adapters/outbound/checklist"
	"github.com/pagelint/pagelint/internal/adapters/outbound/docstore"
	"github.com/pagelint/pagelint/internal/adapters/outbound/fetch"
	"github.com/pagelint/pagelint/internal/application"
	"github.com/pagelint/pagelint/internal/domain"
)

// registerTools registers all pagelint MCP tools on the given server.
func registerTools(s *server.MCPServer) {
	// 1. pagelint_audit
	s.AddTool(
		mcplib.NewTool("pagelint_audit",
			mcplib.WithDescription("Audit a web page against the compliance checklist and return the scored report as JSON"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("URL of the page to audit (bare hosts become https://)"),
			),
			mcplib.WithString("checklist",
				mcplib.Description("Optional path to a checklist YAML file"),
			),
		),
		handleAudit(),
	)

	// 2. pagelint_remediate
	s.AddTool(
		mcplib.NewTool("pagelint_remediate",
			mcplib.WithDescription("Apply safe, idempotent fixes to a stored page copy and return the change log as JSON"),
			mcplib.WithString("document",
				mcplib.Required(),
				mcplib.Description("Path to the stored HTML document"),
			),
			mcplib.WithString("checks",
				mcplib.Required(),
				mcplib.Description("Comma-separated check ids, each optionally id=text to supply insertion text"),
			),
			mcplib.WithString("site", mcplib.Description("Canonical site URL for URL-generating fixes")),
			mcplib.WithString("name", mcplib.Description("Site display name for content-generating fixes")),
		),
		handleRemediate(),
	)
}

func handleAudit() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		checklistPath, _ := request.GetArguments()["checklist"].(string)

		fetcher := fetch.New(fetch.DefaultTimeout, "")
		svc := application.NewAuditService(fetcher, checklist.New(checklistPath))

		result, auditErr := svc.Audit(ctx, url)
		if auditErr != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", auditErr)), nil
		}
		return jsonResult(result)
	}
}

func handleRemediate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		document, err := request.RequireString("document")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		checks, err := request.RequireString("checks")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		site, _ := request.GetArguments()["site"].(string)
		name, _ := request.GetArguments()["name"].(string)

		svc := application.NewRemediateService(docstore.New())
		outcome, remErr := svc.Remediate(document, parseIssues(checks), domain.RemediationContext{
			SiteID:      site,
			DisplayName: name,
		})
		if remErr != nil {
			return errorResult(fmt.Sprintf("remediation failed: %v", remErr)), nil
		}
		return jsonResult(outcome)
	}
}

// parseIssues splits a comma-separated "id" or "id=text" list into issues.
func parseIssues(raw string) []domain.Issue {
	var issues []domain.Issue
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, text, _ := strings.Cut(part, "=")
		issues = append(issues, domain.Issue{CheckID: strings.TrimSpace(id), Text: strings.TrimSpace(text)})
	}
	return issues
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
