package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/AirdropSim/internal/client"
	"github.com/yildizm/AirdropSim/internal/config"
	"github.com/yildizm/AirdropSim/internal/logger"
	"github.com/yildizm/AirdropSim/internal/report"
)

const testWallet = "0xcc0Ff1d8CB212363AbD32bFC6eee7602f7a84A0d"

func quietLogger() *logger.Logger {
	return logger.NewWithWriter("test", nil, io.Discard)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := client.New(&client.Config{BaseURL: server.URL}, quietLogger())
	require.NoError(t, err)
	return c
}

func TestAnalyzeAndWrite_Markdown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, client.AnalyzePath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"eth_to_usd_rate":3000,"zks":12.5,"is_eligible":true,"details":["d1","d2"],"zksync_lite_activity":false}`))
	})

	var out bytes.Buffer
	err := analyzeAndWrite(context.Background(), c, report.NewMarkdown(), testWallet, &out, quietLogger())
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "- **ETH to USD rate:** $3000")
	assert.Contains(t, text, "- **ZKS:** 12.5")
	assert.Contains(t, text, "- **Eligibility:** Eligible")
	assert.Contains(t, text, "- d1\n- d2\n")
	assert.Contains(t, text, "- **zkSync Lite Activity:** No")
	assert.Contains(t, text, testWallet)
}

func TestAnalyzeAndWrite_JSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"eth_to_usd_rate":0.5,"zks":0,"is_eligible":false,"details":[],"zksync_lite_activity":true}`))
	})

	var out bytes.Buffer
	require.NoError(t, analyzeAndWrite(context.Background(), c, report.NewJSON(), testWallet, &out, quietLogger()))

	var decoded client.AnalysisResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.InDelta(t, 0.5, decoded.EthToUSDRate, 1e-9)
	assert.False(t, decoded.IsEligible)
	assert.True(t, decoded.ZkSyncLiteActivity)
	assert.Equal(t, byte('\n'), out.Bytes()[out.Len()-1])
}

func TestAnalyzeAndWrite_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	var out bytes.Buffer
	err := analyzeAndWrite(context.Background(), c, report.NewJSON(), testWallet, &out, quietLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), report.ErrorMessage)
	assert.True(t, errors.Is(err, client.ErrStatus))
	assert.Equal(t, client.ErrTypeStatus, client.TypeOf(err))
	assert.Zero(t, out.Len())
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.md")
	analyzeOutputFile = path
	defer func() { analyzeOutputFile = "" }()

	var stdout bytes.Buffer
	require.NoError(t, writeOutput([]byte("# report\n"), &stdout))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# report\n", string(data))
	assert.Zero(t, stdout.Len())
}

func TestNewAnalysisClient_MissingBaseURL(t *testing.T) {
	cfg := config.DefaultConfig()

	_, err := newAnalysisClient(cfg, "test")
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrConfiguration))
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3", "abc123", "2024-01-01")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "AirdropSim 1.2.3 (abc123) built on 2024-01-01")
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "airdropsim.yaml")

	cmd := NewRootCommand("dev", "none", "unknown")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "init", "--minimal", "--output", path})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url")

	// A second run without --force must refuse to overwrite
	cmd = NewRootCommand("dev", "none", "unknown")
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"config", "init", "--minimal", "--output", path})
	err = cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestRootHelpListsEnvOverrides(t *testing.T) {
	cmd := NewRootCommand("dev", "none", "unknown")
	for _, want := range []string{"AIRDROPSIM_API_URL", "AIRDROPSIM_API_TIMEOUT", "AIRDROPSIM_UI_THEME"} {
		assert.Contains(t, cmd.Long, want)
	}
}
