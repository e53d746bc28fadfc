package mcp

import (
	"context"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/Paurakh977/HomeStay-MCP/internal/transport/officer"
)

type officerDataArg struct {
	Username      string          `json:"username"`
	Password      string          `json:"password"`
	Email         string          `json:"email"`
	ContactNumber string          `json:"contact_number"`
	Permissions   map[string]bool `json:"permissions"`
	IsActive      bool            `json:"is_active"`
}

type createOfficerArgs struct {
	OfficerData   officerDataArg `json:"officer_data"`
	AdminUsername string         `json:"admin_username"`
	AuthToken     string         `json:"auth_token"`
}

type listOfficersArgs struct {
	AdminUsername string `json:"admin_username"`
	AuthToken     string `json:"auth_token"`
}

type updateOfficerStatusArgs struct {
	OfficerID     string `json:"officer_id"`
	IsActive      bool   `json:"is_active"`
	AdminUsername string `json:"admin_username"`
	AuthToken     string `json:"auth_token"`
}

type deleteOfficerArgs struct {
	OfficerID     string `json:"officer_id"`
	AdminUsername string `json:"admin_username"`
	AuthToken     string `json:"auth_token"`
}

type updateOfficerPermissionsArgs struct {
	OfficerID     string          `json:"officer_id"`
	Permissions   map[string]bool `json:"permissions"`
	AdminUsername string          `json:"admin_username"`
	AuthToken     string          `json:"auth_token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func createOfficerTool() mcpgo.Tool {
	return mcpgo.NewTool("create_officer",
		mcpgo.WithDescription("Create a new officer under the specified admin."),
		mcpgo.WithObject("officer_data",
			mcpgo.Description("The new officer's account data"),
			mcpgo.Required(),
			mcpgo.Properties(map[string]any{
				"username":       map[string]any{"type": "string"},
				"password":       map[string]any{"type": "string"},
				"email":          map[string]any{"type": "string"},
				"contact_number": map[string]any{"type": "string"},
				"permissions":    map[string]any{"type": "object"},
				"is_active":      map[string]any{"type": "boolean"},
			}),
		),
		mcpgo.WithString("admin_username", mcpgo.Description("Admin the officer belongs to"), mcpgo.Required()),
		mcpgo.WithString("auth_token", mcpgo.Description("Admin auth token, sent as a cookie")),
	)
}

func listOfficersTool() mcpgo.Tool {
	return mcpgo.NewTool("list_officers",
		mcpgo.WithDescription("List all officers of the given admin."),
		mcpgo.WithString("admin_username", mcpgo.Description("Admin whose officers to list"), mcpgo.Required()),
		mcpgo.WithString("auth_token", mcpgo.Description("Admin auth token, sent as a cookie")),
	)
}

func updateOfficerStatusTool() mcpgo.Tool {
	return mcpgo.NewTool("update_officer_status",
		mcpgo.WithDescription("Activate or deactivate an officer."),
		mcpgo.WithString("officer_id", mcpgo.Description("Officer to update"), mcpgo.Required()),
		mcpgo.WithBoolean("is_active", mcpgo.Description("New active state"), mcpgo.Required()),
		mcpgo.WithString("admin_username", mcpgo.Description("Admin the officer belongs to"), mcpgo.Required()),
		mcpgo.WithString("auth_token", mcpgo.Description("Admin auth token, sent as a cookie")),
	)
}

func deleteOfficerTool() mcpgo.Tool {
	return mcpgo.NewTool("delete_officer",
		mcpgo.WithDescription("Delete an officer."),
		mcpgo.WithString("officer_id", mcpgo.Description("Officer to delete"), mcpgo.Required()),
		mcpgo.WithString("admin_username", mcpgo.Description("Admin the officer belongs to"), mcpgo.Required()),
		mcpgo.WithString("auth_token", mcpgo.Description("Admin auth token, sent as a cookie")),
	)
}

func updateOfficerPermissionsTool() mcpgo.Tool {
	return mcpgo.NewTool("update_officer_permissions",
		mcpgo.WithDescription("Replace an officer's permission set."),
		mcpgo.WithString("officer_id", mcpgo.Description("Officer to update"), mcpgo.Required()),
		mcpgo.WithObject("permissions",
			mcpgo.Description("Permission name to enabled flag"),
			mcpgo.Required(),
		),
		mcpgo.WithString("admin_username", mcpgo.Description("Admin the officer belongs to"), mcpgo.Required()),
		mcpgo.WithString("auth_token", mcpgo.Description("Admin auth token, sent as a cookie")),
	)
}

func (s *Server) handleCreateOfficer(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args createOfficerArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	created, err := s.officers.Create(ctx, officer.CreateOfficer{
		Username:      args.OfficerData.Username,
		Password:      args.OfficerData.Password,
		Email:         args.OfficerData.Email,
		ContactNumber: args.OfficerData.ContactNumber,
		Permissions:   args.OfficerData.Permissions,
		IsActive:      args.OfficerData.IsActive,
	}, args.AdminUsername, s.token(args.AuthToken))
	if err != nil {
		return s.toolError("create_officer", err), nil
	}
	return jsonResult(created)
}

func (s *Server) handleListOfficers(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args listOfficersArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	officers, err := s.officers.List(ctx, args.AdminUsername, s.token(args.AuthToken))
	if err != nil {
		return s.toolError("list_officers", err), nil
	}
	if officers == nil {
		officers = []officer.Officer{}
	}
	return jsonResult(officers)
}

func (s *Server) handleUpdateOfficerStatus(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args updateOfficerStatusArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	msg, err := s.officers.UpdateStatus(ctx, args.OfficerID, args.IsActive, args.AdminUsername, s.token(args.AuthToken))
	if err != nil {
		return s.toolError("update_officer_status", err), nil
	}
	return jsonResult(messageResponse{Message: msg})
}

func (s *Server) handleDeleteOfficer(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args deleteOfficerArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	msg, err := s.officers.Delete(ctx, args.OfficerID, args.AdminUsername, s.token(args.AuthToken))
	if err != nil {
		return s.toolError("delete_officer", err), nil
	}
	return jsonResult(messageResponse{Message: msg})
}

func (s *Server) handleUpdateOfficerPermissions(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	var args updateOfficerPermissionsArgs
	if err := req.BindArguments(&args); err != nil {
		return mcpgo.NewToolResultError("invalid arguments: " + err.Error()), nil
	}

	updated, err := s.officers.UpdatePermissions(ctx, args.OfficerID, args.Permissions, args.AdminUsername, s.token(args.AuthToken))
	if err != nil {
		return s.toolError("update_officer_permissions", err), nil
	}
	return jsonResult(updated)
}
