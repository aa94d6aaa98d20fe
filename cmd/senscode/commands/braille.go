package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"senscode/internal/codec/braille"
)

func brailleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "braille",
		Short: "Braille operations",
	}
	cmd.AddCommand(brailleEncodeCmd(), brailleDecodeCmd(), braillePunchcardCmd(), brailleGridCmd())
	return cmd
}

func brailleEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text to Braille Unicode cells",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(braille.Encode(strings.Join(args, " ")))
			return nil
		},
	}
}

func brailleDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <braille>",
		Short: "Decode Braille cells back to text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(braille.Decode(strings.Join(args, " ")))
			return nil
		},
	}
}

func braillePunchcardCmd() *cobra.Command {
	var width, height int
	cmd := &cobra.Command{
		Use:   "punchcard <text>",
		Short: "Render text as a punchable dot pattern",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, err := braille.Punchcard(strings.Join(args, " "), width, height)
			if err != nil {
				return err
			}
			fmt.Println(pattern)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", braille.DefaultCellWidth, "columns per character block (min 2)")
	cmd.Flags().IntVar(&height, "height", braille.DefaultCellHeight, "rows per character block (min 3)")
	return cmd
}

// braille grid <text...>: machine-readable dot matrix as JSON.
func brailleGridCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grid <text>",
		Short: "Print the binary dot grid as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := json.Marshal(braille.BinaryGrid(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
}
