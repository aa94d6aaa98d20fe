package commands

import (
	"github.com/spf13/cobra"

	"senscode/internal/app"
)

var (
	debug   bool
	appWire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "senscode",
		Short:         "Multi-sensory codec: Morse, Braille, punchcards and timing",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appWire = app.NewWire(app.Config{Debug: debug})
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging to stderr")

	root.AddCommand(morseCmd(), brailleCmd(), transcodeCmd(), fingerprintCmd(), serveCmd())
	return root.Execute()
}
