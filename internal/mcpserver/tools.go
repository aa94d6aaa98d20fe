package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"senscode/internal/app"
	"senscode/internal/codec/braille"
	"senscode/internal/codec/morse"
	"senscode/internal/domain"
	"senscode/internal/logger"
)

// registerTools declares the eight sensory tools and their handlers.
func registerTools(s *server.MCPServer, w *app.Wire) {
	s.AddTool(mcp.NewTool("morse_encode",
		mcp.WithDescription("Encode text to Morse code. Formats: standard (.-), visual (█▄), binary (10)"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to encode")),
		mcp.WithString("format",
			mcp.Description("Output format"),
			mcp.Enum("standard", "visual", "binary"),
			mcp.DefaultString("standard"),
		),
	), handleMorseEncode)

	s.AddTool(mcp.NewTool("morse_decode",
		mcp.WithDescription("Decode Morse code back to text"),
		mcp.WithString("morse", mcp.Required(), mcp.Description("Morse code to decode")),
	), handleMorseDecode)

	s.AddTool(mcp.NewTool("morse_timing",
		mcp.WithDescription("Get timing data for Morse audio/light generation"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to convert")),
		mcp.WithNumber("unit_ms",
			mcp.Description("Base time unit in milliseconds"),
			mcp.DefaultNumber(morse.DefaultUnitMS),
		),
	), handleMorseTiming)

	s.AddTool(mcp.NewTool("braille_encode",
		mcp.WithDescription("Encode text to Braille Unicode characters"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to encode")),
	), handleBrailleEncode)

	s.AddTool(mcp.NewTool("braille_decode",
		mcp.WithDescription("Decode Braille back to text"),
		mcp.WithString("braille", mcp.Required(), mcp.Description("Braille text to decode")),
	), handleBrailleDecode)

	s.AddTool(mcp.NewTool("braille_punchcard",
		mcp.WithDescription("Generate ASCII punchcard pattern from text, suitable for physical punching"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to convert")),
		mcp.WithNumber("cell_width",
			mcp.Description("Width of each cell"),
			mcp.DefaultNumber(braille.DefaultCellWidth),
		),
		mcp.WithNumber("cell_height",
			mcp.Description("Height of each cell"),
			mcp.DefaultNumber(braille.DefaultCellHeight),
		),
	), handleBraillePunchcard)

	s.AddTool(mcp.NewTool("braille_binary_grid",
		mcp.WithDescription("Generate binary grid for machine-readable punchcard or CNC/laser cutting"),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to convert")),
	), handleBrailleBinaryGrid)

	s.AddTool(mcp.NewTool("transcode",
		mcp.WithDescription("Convert between different sensory encodings"),
		mcp.WithString("input", mcp.Required(), mcp.Description("Input data")),
		mcp.WithString("from_format", mcp.Required(),
			mcp.Description("Source format"),
			mcp.Enum("text", "morse", "braille"),
		),
		mcp.WithString("to_format", mcp.Required(),
			mcp.Description("Target format"),
			mcp.Enum("text", "morse", "braille", "morse_visual", "punchcard"),
		),
	), makeTranscodeHandler(w.Transcoder))
}

func handleMorseEncode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format := domain.ParseMorseFormat(req.GetString("format", "standard"))
	logger.L().Debug("tool.morse_encode", "format", format.String(), "len", len(text))
	return mcp.NewToolResultText(morse.Encode(text, format)), nil
}

func handleMorseDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("morse")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(morse.Decode(code)), nil
}

func handleMorseTiming(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	unitMS := req.GetInt("unit_ms", morse.DefaultUnitMS)
	timing := morse.ToTiming(morse.Encode(text, domain.MorseStandard), unitMS)
	return jsonResult(timing)
}

func handleBrailleEncode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(braille.Encode(text)), nil
}

func handleBrailleDecode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cells, err := req.RequireString("braille")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(braille.Decode(cells)), nil
}

func handleBraillePunchcard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	width := req.GetInt("cell_width", braille.DefaultCellWidth)
	height := req.GetInt("cell_height", braille.DefaultCellHeight)
	pattern, err := braille.Punchcard(text, width, height)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(pattern), nil
}

func handleBrailleBinaryGrid(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(braille.BinaryGrid(text))
}

// makeTranscodeHandler binds the transcode tool to the orchestrator.
func makeTranscodeHandler(tc domain.Transcoder) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		input, err := req.RequireString("input")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		from, err := req.RequireString("from_format")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		to, err := req.RequireString("to_format")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := tc.Transcode(input, domain.Format(from), domain.Format(to))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// jsonResult serializes a structured value as a text content block.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}
