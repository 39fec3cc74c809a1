package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yildizm/AirdropSim/internal/client"
)

type analysisCompleteMsg struct {
	generation uint64
	result     *client.AnalysisResult
}

type analysisErrorMsg struct {
	generation uint64
	err        error
}

// CreateAnalysisCommand creates a tea command that runs one analysis request
func CreateAnalysisCommand(analyzer client.Analyzer, walletAddress string, generation uint64) tea.Cmd {
	return func() tea.Msg {
		result, err := analyzer.Analyze(context.Background(), walletAddress)
		if err != nil {
			return analysisErrorMsg{generation: generation, err: err}
		}
		return analysisCompleteMsg{generation: generation, result: result}
	}
}
