// Package mcpserver exposes skill discovery over the Model Context Protocol.
// The server speaks MCP on stdio and provides five tools: list_skills,
// read_skill, install_skill, manage_skill_paths, and skill_diagnostics. Every
// handler reports failures as tool errors rather than crashing the server.
package mcpserver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"github.com/skillserve/skillserve/pkg/config"
	"github.com/skillserve/skillserve/pkg/logger"
	"github.com/skillserve/skillserve/pkg/skills"
	"github.com/skillserve/skillserve/pkg/version"
)

// Server wires the scanner, the path store, and the MCP protocol layer.
type Server struct {
	scanner     *skills.Scanner
	store       *config.PathStore
	fixedRoots  []string
	installRoot string

	mcp *server.MCPServer
}

// Option configures a Server.
type Option func(*Server)

// WithRoots pins the search roots, bypassing store and environment
// resolution. Used by tests and by callers that resolve roots themselves.
func WithRoots(roots ...string) Option {
	return func(s *Server) {
		s.fixedRoots = roots
	}
}

// WithInstallRoot sets the directory install_skill copies into.
func WithInstallRoot(dir string) Option {
	return func(s *Server) {
		s.installRoot = dir
	}
}

// New creates a Server backed by the given path store.
func New(store *config.PathStore, opts ...Option) *Server {
	s := &Server{
		scanner: skills.NewScanner(),
		store:   store,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = server.NewMCPServer(
		"skillserve",
		version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()

	return s
}

// Serve runs the MCP server on stdio until the context is cancelled or stdin
// reaches EOF.
func (s *Server) Serve(ctx context.Context) error {
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		return errors.Wrap(err, "mcp server stopped")
	}
	return nil
}

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("list_skills",
		mcp.WithDescription("List all discovered skills with their names, descriptions, and source directories."),
	), s.handleListSkills)

	s.mcp.AddTool(mcp.NewTool("read_skill",
		mcp.WithDescription("Read the full SKILL.md instructions of a skill by name."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Exact name of the skill to read."),
		),
	), s.handleReadSkill)

	s.mcp.AddTool(mcp.NewTool("install_skill",
		mcp.WithDescription("Install a skill by copying a local skill directory into the managed skills directory."),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Path to a directory containing a SKILL.md file."),
		),
	), s.handleInstallSkill)

	s.mcp.AddTool(mcp.NewTool("manage_skill_paths",
		mcp.WithDescription("List, add, or remove directories that are scanned for skills."),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Enum("list", "add", "remove"),
			mcp.Description("Operation to perform on the path list."),
		),
		mcp.WithString("path",
			mcp.Description("Directory path, required for add and remove."),
		),
	), s.handleManagePaths)

	s.mcp.AddTool(mcp.NewTool("skill_diagnostics",
		mcp.WithDescription("Report scan warnings, path statuses, and skill frontmatter issues for debugging."),
	), s.handleDiagnostics)
}

// effectiveRoots returns the search roots for this request. A store read
// failure is logged and degrades to the default roots; discovery itself must
// keep working.
func (s *Server) effectiveRoots(ctx context.Context) []string {
	if s.fixedRoots != nil {
		return s.fixedRoots
	}

	stored, err := s.store.Load()
	if err != nil {
		logger.G(ctx).WithError(err).Warn("failed to load stored skill paths")
		stored = nil
	}
	return config.ResolveRoots(os.Getenv, stored)
}

// defaultInstallRoot is the user-global skills directory.
func (s *Server) defaultInstallRoot() (string, error) {
	if s.installRoot != "" {
		return s.installRoot, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(homeDir, ".skillserve", "skills"), nil
}
