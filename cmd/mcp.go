package cmd

import (
	"os"

	gcmd "github.com/Laisky/go-utils/v6/cmd"
	"github.com/spf13/cobra"

	"github.com/Laisky/explain/internal/mcp"
	"github.com/Laisky/explain/library/log"
)

func newMCPCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve explain as an MCP tool over stdio",
		Long: `Serve a Model Context Protocol server on stdin/stdout.

The server exposes one tool, "explain", taking a required "query"
string and an optional "more" boolean. Logs go to stderr.`,
		Args: gcmd.NoExtraArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newServiceFromSettings()
			if err != nil {
				return err
			}

			server, err := mcp.NewServer(svc, log.Logger.Named("mcp"))
			if err != nil {
				return err
			}

			return server.ServeStdio(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
