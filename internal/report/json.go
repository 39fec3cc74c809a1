package report

import (
	"encoding/json"

	"github.com/yildizm/AirdropSim/internal/client"
)

type jsonFormatter struct{}

// NewJSON creates a new JSON formatter.
// The result is emitted exactly as the backend shaped it.
func NewJSON() Formatter {
	return &jsonFormatter{}
}

func (f *jsonFormatter) Format(_ string, result *client.AnalysisResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
