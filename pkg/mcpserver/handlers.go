package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	"github.com/skillserve/skillserve/pkg/install"
	"github.com/skillserve/skillserve/pkg/logger"
	"github.com/skillserve/skillserve/pkg/skills"
)

// listedSkill is the listing view of a skill: internal path detail stripped,
// provenance kept.
type listedSkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

func (s *Server) handleListSkills(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roots := s.effectiveRoots(ctx)
	result := s.scanner.ScanAll(roots)

	logger.G(ctx).WithFields(map[string]interface{}{
		"roots":    len(roots),
		"skills":   len(result.Skills),
		"warnings": len(result.Warnings),
	}).Debug("listed skills")

	listed := make([]listedSkill, 0, len(result.Skills))
	for _, skill := range result.Skills {
		listed = append(listed, listedSkill{
			Name:        skill.Name,
			Description: skill.Description,
			Source:      skill.Source,
		})
	}

	return jsonResult(map[string]interface{}{
		"skills":        listed,
		"warning_count": len(result.Warnings),
	})
}

func (s *Server) handleReadSkill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	skill, err := s.scanner.FindSkill(s.effectiveRoots(ctx), name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
	if err != nil {
		return mcp.NewToolResultError(
			errors.Wrapf(err, "failed to read skill '%s'", name).Error()), nil
	}

	return mcp.NewToolResultText(string(content)), nil
}

func (s *Server) handleInstallSkill(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	destRoot, err := s.defaultInstallRoot()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	destDir, err := install.Install(source, destRoot)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	logger.G(ctx).WithField("dest", destDir).Info("installed skill")
	return mcp.NewToolResultText(fmt.Sprintf("Installed skill to %s", destDir)), nil
}

func (s *Server) handleManagePaths(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	action, err := request.RequireString("action")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path := request.GetString("path", "")

	switch action {
	case "list":
		// fallthrough to the listing below

	case "add":
		if path == "" {
			return mcp.NewToolResultError("path is required for add"), nil
		}
		added, err := s.store.Add(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !added {
			return mcp.NewToolResultText(fmt.Sprintf("Path %s is already configured", path)), nil
		}
		logger.G(ctx).WithField("path", path).Info("added skill path")

	case "remove":
		if path == "" {
			return mcp.NewToolResultError("path is required for remove"), nil
		}
		removed, err := s.store.Remove(path)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !removed {
			return mcp.NewToolResultError(fmt.Sprintf("path %s is not configured", path)), nil
		}
		logger.G(ctx).WithField("path", path).Info("removed skill path")

	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action %q", action)), nil
	}

	stored, err := s.store.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]interface{}{"paths": stored})
}

// frontmatterIssue flags a discovered skill whose SKILL.md frontmatter is
// missing or incomplete. These are quality diagnostics, not scan warnings:
// such skills are still listed.
type frontmatterIssue struct {
	Skill string `json:"skill"`
	Path  string `json:"path"`
	Issue string `json:"issue"`
}

func (s *Server) handleDiagnostics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roots := s.effectiveRoots(ctx)
	result := s.scanner.ScanAll(roots)
	statuses := skills.ProbePaths(roots)

	issues := []frontmatterIssue{}
	for _, skill := range result.Skills {
		content, err := os.ReadFile(filepath.Join(skill.Path, skills.SkillFileName))
		if err != nil {
			continue
		}
		meta, err := skills.ParseMetadata(string(content))
		switch {
		case err != nil:
			issues = append(issues, frontmatterIssue{Skill: skill.Name, Path: skill.Path, Issue: err.Error()})
		case meta.Name == "":
			issues = append(issues, frontmatterIssue{Skill: skill.Name, Path: skill.Path, Issue: "frontmatter has no name"})
		case meta.Description == "":
			issues = append(issues, frontmatterIssue{Skill: skill.Name, Path: skill.Path, Issue: "frontmatter has no description"})
		}
	}

	return jsonResult(map[string]interface{}{
		"paths":              statuses,
		"skill_count":        len(result.Skills),
		"warnings":           result.Warnings,
		"frontmatter_issues": issues,
	})
}

func jsonResult(payload interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
