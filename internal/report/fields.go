package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/yildizm/AirdropSim/internal/client"
)

// Fixed user-facing strings shared by the UI and the formatters
const (
	Title          = "zkSync Airdrop Simulator"
	LoadingMessage = "Loading..."
	ErrorMessage   = "Error analyzing wallet."
	DetailsLabel   = "Details:"
)

// Field is one labelled line of a rendered report
type Field struct {
	Label string
	Value string
}

// FormatNumber prints a number the way a browser prints a JS number:
// shortest round-trip digits, integers without a decimal point, and
// exponent form only when |v| >= 1e21 or |v| < 1e-6 (1e+21, 1.5e-7).
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// YesNo renders a boolean as Yes/No
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Eligibility renders the eligibility flag
func Eligibility(eligible bool) string {
	if eligible {
		return "Eligible"
	}
	return "Not Eligible"
}

// HeaderFields returns the lines shown before the details list
func HeaderFields(r *client.AnalysisResult) []Field {
	return []Field{
		{Label: "ETH to USD rate", Value: "$" + FormatNumber(r.EthToUSDRate)},
		{Label: "ZKS", Value: FormatNumber(r.ZKS)},
		{Label: "Eligibility", Value: Eligibility(r.IsEligible)},
	}
}

// FooterFields returns the lines shown after the details list
func FooterFields(r *client.AnalysisResult) []Field {
	return []Field{
		{Label: "zkSync Lite Activity", Value: YesNo(r.ZkSyncLiteActivity)},
	}
}
