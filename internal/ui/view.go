package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yildizm/AirdropSim/internal/emoji"
	"github.com/yildizm/AirdropSim/internal/report"
)

const (
	addressPlaceholder = "Enter your wallet address"
	donationAddress    = "0xcc0Ff1d8CB212363AbD32bFC6eee7602f7a84A0d"
	cursor             = "█"
)

var (
	supportText = "If you enjoy using this tool, please consider sending a donation through zkSync network to:"

	howItWorksText = "Enter your wallet address to check your eligibility for airdrops. " +
		"The analyzer will fetch your transaction history and current balance, then calculate " +
		"your eligibility based on the GitHub zkSync rumors regarding the criteria. " +
		"Beware this is not official criteria."

	howItWorksImage = "[image: How it Works]"

	keyHelp = "enter fetch • ctrl+u clear • esc quit"
)

// Render draws the whole screen for s. It depends on nothing but its
// arguments, so equal inputs always give equal output.
func Render(s State, styles *Styles, width int) string {
	panels := []string{renderForm(s, styles, width)}

	if s.ShowSupport {
		panels = append(panels, renderSupport(styles, width))
	}
	if s.ResultsVisible() {
		panels = append(panels, renderResults(s, styles, width))
	}
	panels = append(panels, renderHowItWorks(styles, width))
	panels = append(panels, styles.Muted.Render(keyHelp))

	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// panel wraps body in a bordered box with a title line
func panel(style lipgloss.Style, styles *Styles, width int, title string, body ...string) string {
	if width > 0 {
		// border and padding take four columns
		style = style.Width(max(width-4, 10))
	}
	content := append([]string{styles.Title.Render(title), ""}, body...)
	return style.Render(strings.Join(content, "\n"))
}

func renderForm(s State, styles *Styles, width int) string {
	input := styles.Input.Render(s.Address) + cursor
	if s.Address == "" {
		input = cursor + styles.Muted.Render(addressPlaceholder)
	}

	field := styles.Label.Render("Wallet Address:") + " " + input
	button := styles.Button.Render("[ Fetch ]")

	return panel(styles.Focused, styles, width, report.Title, field, "", button)
}

func renderSupport(styles *Styles, width int) string {
	return panel(styles.Panel, styles, width, emoji.GetEmoji("heart")+" Support Us",
		styles.Body.Render(supportText),
		styles.Info.Render(donationAddress),
	)
}

func renderResults(s State, styles *Styles, width int) string {
	var body []string

	if s.Loading {
		body = append(body, styles.Muted.Render(emoji.GetEmoji("loading")+" "+report.LoadingMessage))
	}
	if s.Err != "" {
		body = append(body, styles.Error.Render(emoji.GetEmoji("error")+" "+s.Err))
	}
	if s.Result != nil {
		body = append(body, renderResultFields(s, styles)...)
	}

	return panel(styles.Panel, styles, width, "Results", body...)
}

func renderResultFields(s State, styles *Styles) []string {
	r := s.Result
	lines := make([]string, 0, len(r.Details)+5)

	for _, f := range report.HeaderFields(r) {
		value := f.Value
		if f.Label == "Eligibility" {
			if r.IsEligible {
				value = styles.Success.Render(value + " " + emoji.GetEmoji("eligible"))
			} else {
				value = styles.Error.Render(value + " " + emoji.GetEmoji("rejected"))
			}
		}
		lines = append(lines, styles.Label.Render(f.Label+":")+" "+value)
	}

	lines = append(lines, styles.Label.Render(report.DetailsLabel))
	for _, d := range r.Details {
		lines = append(lines, "  • "+d)
	}

	for _, f := range report.FooterFields(r) {
		lines = append(lines, styles.Label.Render(f.Label+":")+" "+f.Value)
	}

	return lines
}

func renderHowItWorks(styles *Styles, width int) string {
	return panel(styles.Panel, styles, width, "How it Works",
		styles.Body.Render(howItWorksText),
		styles.Muted.Render(howItWorksImage),
	)
}
