package commands

import (
	"github.com/spf13/cobra"

	"senscode/internal/mcpserver"
)

// serve: speak MCP over stdio until the client hangs up.
func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the codecs as MCP tools on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.Serve(cmd.Context(), appWire)
		},
	}
}
