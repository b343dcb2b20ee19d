package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skillserve/skillserve/pkg/config"
	"github.com/skillserve/skillserve/pkg/logger"
	"github.com/skillserve/skillserve/pkg/mcpserver"
	"github.com/skillserve/skillserve/pkg/presenter"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start an MCP (Model Context Protocol) server that communicates over
stdin/stdout. The server exposes skill discovery, reading, installation,
path management, and diagnostics as MCP tools.

The server is typically started as a subprocess by an MCP-capable agent and
runs until stdin reaches EOF or it is interrupted.`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		store, err := config.DefaultPathStore()
		if err != nil {
			presenter.Error(err, "failed to locate path configuration")
			os.Exit(1)
		}

		logger.G(ctx).Info("starting MCP server on stdio")

		srv := mcpserver.New(store)
		if err := srv.Serve(ctx); err != nil {
			logger.G(ctx).WithError(err).Error("MCP server error")
			presenter.Error(err, "MCP server failed")
			os.Exit(1)
		}
	},
}
