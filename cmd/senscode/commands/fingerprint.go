package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// fingerprint <artifact>: print the audit digest of an encoded artifact so
// it can be written on the physical copy (punchcard, transmission log).
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <artifact>",
		Short: "Print an audit fingerprint of an encoded artifact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp := appWire.Audit.Fingerprint(strings.Join(args, " "))
			fmt.Printf("Fingerprint: %s\n", fp)
			return nil
		},
	}
}
