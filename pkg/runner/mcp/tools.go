package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerShowTreeTool(srv, svc)
	registerFindNodesTool(srv, svc)
	registerAddNodeTool(srv, svc)
	registerRenameNodeTool(srv, svc)
	registerDeleteNodeTool(srv, svc)
}

func registerShowTreeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"show_tree",
		mcp.WithDescription("Show the mindmap, or the subtree under a path, as nested name/children objects."),
		mcp.WithString("path",
			mcp.Description("Slash separated path such as \"root/ideas\". Empty means the root."),
		),
		mcp.WithNumber("depth",
			mcp.Description("Levels below the path to include (0 for all)."),
			mcp.Min(0),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := request.GetString("path", "")
		depth := request.GetInt("depth", 0)

		doc, err := svc.Tree(ctx, path, depth)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(doc)
	})
}

func registerFindNodesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"find_nodes",
		mcp.WithDescription("Find nodes whose names contain the query."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-sensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of nodes to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.FindNodes(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerAddNodeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_node",
		mcp.WithDescription("Append a child node under a parent."),
		mcp.WithString("parent",
			mcp.Description("Path of the parent node. Empty means the root."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Name of the new node."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Parent string `json:"parent"`
			Name   string `json:"name"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddNode(ctx, args.Parent, args.Name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRenameNodeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"rename_node",
		mcp.WithDescription("Rename the node at a path."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the node to rename."),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RenameNode(ctx, path, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteNodeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_node",
		mcp.WithDescription("Delete a node and every node below it. The root can not be deleted."),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path of the node to delete."),
		),
		mcp.WithBoolean("confirm",
			mcp.Required(),
			mcp.Description("Must be true; the whole subtree is removed."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		confirm := request.GetBool("confirm", false)

		res, err := svc.DeleteNode(ctx, path, confirm)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(res)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
