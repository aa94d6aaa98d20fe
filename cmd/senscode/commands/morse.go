package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"senscode/internal/codec/morse"
	"senscode/internal/domain"
)

func morseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morse",
		Short: "Morse code operations",
	}
	cmd.AddCommand(morseEncodeCmd(), morseDecodeCmd(), morseTimingCmd())
	return cmd
}

// morse encode <text...>: print the Morse rendering of the joined args.
func morseEncodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode <text>",
		Short: "Encode text to Morse code",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			fmt.Println(morse.Encode(text, domain.ParseMorseFormat(format)))
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "standard", "output format: standard, visual or binary")
	return cmd
}

func morseDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <morse>",
		Short: "Decode Morse code back to text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(morse.Decode(strings.Join(args, " ")))
			return nil
		},
	}
}

// morse timing <text...>: encode, derive the keying schedule, print JSON.
func morseTimingCmd() *cobra.Command {
	var unitMS int
	cmd := &cobra.Command{
		Use:   "timing <text>",
		Short: "Print the audio/light keying schedule as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := morse.Encode(strings.Join(args, " "), domain.MorseStandard)
			b, err := json.Marshal(morse.ToTiming(code, unitMS))
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	cmd.Flags().IntVar(&unitMS, "unit", morse.DefaultUnitMS, "base time unit in milliseconds")
	return cmd
}
