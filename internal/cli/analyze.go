package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/AirdropSim/internal/client"
	"github.com/yildizm/AirdropSim/internal/logger"
	"github.com/yildizm/AirdropSim/internal/report"
)

var analyzeOutputFile string

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <wallet-address>",
		Short: "Analyze a wallet once and print the report",
		Long: `Send a wallet address to the analysis service and print the eligibility report.

The address is passed through unchanged; the service decides whether it is valid.

Examples:
  airdropsim analyze 0xcc0Ff1d8CB212363AbD32bFC6eee7602f7a84A0d
  airdropsim analyze --output json 0xcc0F...
  airdropsim analyze --api-url http://localhost:8000 --output markdown 0xcc0F...`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVar(&analyzeOutputFile, "output-file", "", "save output to file instead of stdout")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()
	log := logger.NewWithCallback("analyze", isVerbose)

	c, err := newAnalysisClient(cfg, "client")
	if err != nil {
		return err
	}

	formatter, err := report.New(getOutputFormat(), useColor())
	if err != nil {
		return err
	}

	return analyzeAndWrite(cmd.Context(), c, formatter, args[0], cmd.OutOrStdout(), log)
}

// analyzeAndWrite runs one analysis and writes the formatted report
func analyzeAndWrite(ctx context.Context, analyzer client.Analyzer, formatter report.Formatter, address string, stdout io.Writer, log *logger.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	result, err := analyzer.Analyze(ctx, address)
	if err != nil {
		log.ErrorWithFields("error analyzing wallet", []logger.Field{
			logger.F("error_type", string(client.TypeOf(err))),
			logger.Error(err),
		})
		return fmt.Errorf("%s: %w", report.ErrorMessage, err)
	}
	log.InfoWithFields("analysis complete", []logger.Field{logger.Duration(time.Since(start))})

	output, err := formatter.Format(address, result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return writeOutput(output, stdout)
}

// writeOutput writes to the output file if set, otherwise to stdout
func writeOutput(output []byte, stdout io.Writer) error {
	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, output, 0o600); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if isVerbose() {
			fmt.Fprintf(os.Stderr, "Output written to %s\n", analyzeOutputFile)
		}
		return nil
	}

	if _, err := stdout.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(output) > 0 && output[len(output)-1] != '\n' {
		_, _ = io.WriteString(stdout, "\n")
	}
	return nil
}
