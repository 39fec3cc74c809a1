package report

import (
	"fmt"
	"strings"

	"github.com/yildizm/AirdropSim/internal/client"
)

type markdownFormatter struct{}

// NewMarkdown creates a new markdown formatter
func NewMarkdown() Formatter {
	return &markdownFormatter{}
}

func (f *markdownFormatter) Format(walletAddress string, result *client.AnalysisResult) ([]byte, error) {
	var b strings.Builder

	b.WriteString("# " + Title + "\n\n")
	fmt.Fprintf(&b, "**Wallet:** `%s`\n\n", walletAddress)

	b.WriteString("## Results\n\n")
	for _, field := range HeaderFields(result) {
		fmt.Fprintf(&b, "- **%s:** %s\n", field.Label, field.Value)
	}

	b.WriteString("\n### Details\n\n")
	if len(result.Details) == 0 {
		b.WriteString("_No details returned._\n")
	}
	for _, d := range result.Details {
		b.WriteString("- " + d + "\n")
	}
	b.WriteString("\n")

	for _, field := range FooterFields(result) {
		fmt.Fprintf(&b, "- **%s:** %s\n", field.Label, field.Value)
	}

	return []byte(b.String()), nil
}
