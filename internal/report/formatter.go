package report

import (
	"fmt"

	"github.com/yildizm/AirdropSim/internal/client"
)

// Formatter renders an analysis result for non-interactive output
type Formatter interface {
	Format(walletAddress string, result *client.AnalysisResult) ([]byte, error)
}

// New creates a formatter for the given format name
func New(format string, color bool) (Formatter, error) {
	switch format {
	case "", "text":
		return NewTerminal(color), nil
	case "json":
		return NewJSON(), nil
	case "markdown":
		return NewMarkdown(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
