package ui

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/yildizm/AirdropSim/internal/client"
)

// MockAnalyzer implements client.Analyzer for testing
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, walletAddress string) (*client.AnalysisResult, error) {
	args := m.Called(walletAddress)
	result, _ := args.Get(0).(*client.AnalysisResult)
	return result, args.Error(1)
}
