package client

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AnalysisResult is the eligibility report returned by the analysis service.
// The client never builds or mutates one; it only decodes and hands it on.
type AnalysisResult struct {
	EthToUSDRate       float64  `json:"eth_to_usd_rate"`
	ZKS                float64  `json:"zks"`
	IsEligible         bool     `json:"is_eligible"`
	Details            []string `json:"details"`
	ZkSyncLiteActivity bool     `json:"zksync_lite_activity"`
}

// AnalyzeRequest is the body posted to the analyze endpoint
type AnalyzeRequest struct {
	WalletAddress string `json:"wallet_address"`
	Language      string `json:"language,omitempty"`
}

// number decodes either a JSON number or a string holding one.
// The service serializes decimal amounts as strings, e.g. "zks": "-2900".
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	text := string(data)
	if strings.HasPrefix(text, `"`) {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("not a number: %s", data)
	}
	*n = number(v)
	return nil
}

// wireResult mirrors AnalysisResult with pointers so absent fields can be told
// apart from zero values.
type wireResult struct {
	EthToUSDRate       *number   `json:"eth_to_usd_rate"`
	ZKS                *number   `json:"zks"`
	IsEligible         *bool     `json:"is_eligible"`
	Details            *[]string `json:"details"`
	ZkSyncLiteActivity *bool     `json:"zksync_lite_activity"`
}

// missingFields lists required fields that were absent or null
func (w *wireResult) missingFields() []string {
	var missing []string
	if w.EthToUSDRate == nil {
		missing = append(missing, "eth_to_usd_rate")
	}
	if w.ZKS == nil {
		missing = append(missing, "zks")
	}
	if w.IsEligible == nil {
		missing = append(missing, "is_eligible")
	}
	if w.Details == nil {
		missing = append(missing, "details")
	}
	if w.ZkSyncLiteActivity == nil {
		missing = append(missing, "zksync_lite_activity")
	}
	return missing
}

func (w *wireResult) toResult() *AnalysisResult {
	return &AnalysisResult{
		EthToUSDRate:       float64(*w.EthToUSDRate),
		ZKS:                float64(*w.ZKS),
		IsEligible:         *w.IsEligible,
		Details:            *w.Details,
		ZkSyncLiteActivity: *w.ZkSyncLiteActivity,
	}
}
