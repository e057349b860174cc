package mcp

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTreeResource(srv, svc)
	registerNodeTemplate(srv, svc)
}

func registerTreeResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"remap://tree",
		"Mindmap",
		mcp.WithResourceDescription("The whole mindmap as nested name/children objects."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		doc, err := svc.Tree(ctx, "", 0)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, doc)
	})
}

func registerNodeTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"remap://nodes/{path}",
		"Subtree",
		mcp.WithTemplateDescription("The subtree under a slash separated path."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		path := templateArg(request.Params.Arguments["path"])
		if path == "" {
			return nil, fmt.Errorf("node path is required")
		}

		doc, err := svc.Tree(ctx, path, 0)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, doc)
	})
}

// templateArg unwraps a URI template variable, which the server may hand over
// as a string or a one element slice.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
