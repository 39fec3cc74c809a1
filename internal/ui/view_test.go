package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yildizm/AirdropSim/internal/emoji"
	"github.com/yildizm/AirdropSim/internal/report"
)

func TestRenderIsPure(t *testing.T) {
	styles := GetStyles()
	states := []State{
		{},
		{Address: "0xABC", Loading: true, Generation: 1},
		{Address: "0xABC", Result: scenarioA(), ShowSupport: true, Generation: 1},
		{Address: "", Err: report.ErrorMessage, Generation: 3},
	}

	for _, s := range states {
		for _, width := range []int{0, 80} {
			assert.Equal(t, Render(s, styles, width), Render(s, styles, width))
		}
	}
}

func TestRenderInitialState(t *testing.T) {
	view := Render(State{}, GetStyles(), 0)

	assert.Contains(t, view, report.Title)
	assert.Contains(t, view, "Wallet Address:")
	assert.Contains(t, view, addressPlaceholder)
	assert.Contains(t, view, "How it Works")
	assert.NotContains(t, view, "Results")
	assert.NotContains(t, view, "Support Us")
}

func TestRenderLoading(t *testing.T) {
	view := Render(State{Address: "0xABC", Loading: true}, GetStyles(), 0)

	assert.Contains(t, view, "Results")
	assert.Contains(t, view, report.LoadingMessage)
	assert.Contains(t, view, "0xABC")
	assert.NotContains(t, view, "ZKS:")
}

func TestRenderScenarioA(t *testing.T) {
	s := State{Address: "0xABC...", Result: scenarioA(), ShowSupport: true, Generation: 1}
	view := Render(s, GetStyles(), 0)

	for _, want := range []string{
		"ETH to USD rate: $3000",
		"ZKS: 120",
		"Eligibility: Eligible",
		"Details:",
		"tx>10",
		"zkSync Lite Activity: No",
		donationAddress,
	} {
		assert.Contains(t, view, want)
	}
	assert.NotContains(t, view, report.LoadingMessage)
}

func TestRenderScenarioB(t *testing.T) {
	s := State{Address: "", Err: report.ErrorMessage, Generation: 1}
	view := Render(s, GetStyles(), 0)

	assert.Contains(t, view, "Results")
	assert.Contains(t, view, "Error analyzing wallet.")
	assert.NotContains(t, view, "ETH to USD rate")
	assert.NotContains(t, view, "Eligibility")
	assert.NotContains(t, view, "Support Us")
}

func TestRenderEligibilitySymbol(t *testing.T) {
	emoji.SetEmojiDisabled(true)
	defer emoji.SetEmojiDisabled(false)

	r := scenarioA()
	view := Render(State{Result: r, ShowSupport: true}, GetStyles(), 0)
	assert.Contains(t, view, "Eligibility: Eligible [YES]")

	r.IsEligible = false
	view = Render(State{Result: r, ShowSupport: true}, GetStyles(), 0)
	assert.Contains(t, view, "Eligibility: Not Eligible [NO]")
}

func TestResultsVisible(t *testing.T) {
	assert.False(t, State{}.ResultsVisible())
	assert.True(t, State{Loading: true}.ResultsVisible())
	assert.True(t, State{Result: scenarioA()}.ResultsVisible())
	assert.True(t, State{Err: "x"}.ResultsVisible())
}

func TestSetThemeByName(t *testing.T) {
	defer SetThemeByName("default")

	for _, name := range GetAvailableThemes() {
		assert.True(t, SetThemeByName(name), name)
		assert.Equal(t, name, GetTheme().Name)
	}
	assert.False(t, SetThemeByName("neon"))
}
