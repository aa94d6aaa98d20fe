package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"senscode/internal/domain"
)

// transcode <input> --from <fmt> --to <fmt>: convert via the text pivot.
func transcodeCmd() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "transcode <input>",
		Short: "Convert between sensory encodings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := appWire.Transcoder.Transcode(args[0], domain.Format(from), domain.Format(to))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "text", "source format: text, morse or braille")
	cmd.Flags().StringVar(&to, "to", "morse", "target format: text, morse, braille, morse_visual or punchcard")
	return cmd
}
