package report

import (
	"strings"

	"github.com/yildizm/AirdropSim/internal/client"
	"github.com/yildizm/AirdropSim/internal/emoji"
	"github.com/yildizm/go-termfmt"
)

// terminalFormatter formats output as plain text for terminal display using go-termfmt
type terminalFormatter struct {
	opts *termfmt.TerminalOptions
}

// NewTerminal creates a new terminal formatter with optional color support
func NewTerminal(color bool) Formatter {
	opts := termfmt.DefaultOptions()
	opts.Color = color
	opts.Emoji = !emoji.IsEmojiDisabled()
	return &terminalFormatter{opts: opts}
}

func (f *terminalFormatter) Format(walletAddress string, result *client.AnalysisResult) ([]byte, error) {
	var b strings.Builder

	f.writeHeader(&b)
	b.WriteString("Wallet Address: " + walletAddress + "\n\n")
	f.writeResults(&b, result)

	return []byte(b.String()), nil
}

func (f *terminalFormatter) writeHeader(b *strings.Builder) {
	headerLen := len(Title)

	b.WriteString("╔" + strings.Repeat("═", headerLen+2) + "╗\n")
	b.WriteString("║ " + Title + " ║\n")
	b.WriteString("╚" + strings.Repeat("═", headerLen+2) + "╝\n\n")
}

// writeResults writes the report as a tree, details nested under their label
func (f *terminalFormatter) writeResults(b *strings.Builder, result *client.AnalysisResult) {
	symbol := termfmt.GetEmoji("statistics", f.opts)
	b.WriteString(symbol + " Results\n")

	items := make([]termfmt.TreeItem, 0, 5)
	for _, field := range HeaderFields(result) {
		value := field.Value
		if field.Label == "Eligibility" {
			value += " " + eligibilitySymbol(result.IsEligible)
		}
		items = append(items, termfmt.TreeItem{Label: field.Label, Value: value})
	}

	details := make([]termfmt.TreeItem, 0, len(result.Details))
	for i, d := range result.Details {
		details = append(details, termfmt.TreeItem{Label: d, Last: i == len(result.Details)-1})
	}
	items = append(items, termfmt.TreeItem{Label: "Details", Value: detailCount(len(result.Details)), Children: details})

	footer := FooterFields(result)
	for i, field := range footer {
		items = append(items, termfmt.TreeItem{Label: field.Label, Value: field.Value, Last: i == len(footer)-1})
	}

	b.WriteString(termfmt.TreeViewWithOptions(items, f.opts) + "\n")
}

func eligibilitySymbol(eligible bool) string {
	if eligible {
		return emoji.GetEmoji("eligible")
	}
	return emoji.GetEmoji("rejected")
}

func detailCount(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return FormatNumber(float64(n)) + " entries"
}
