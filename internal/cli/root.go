package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/yildizm/AirdropSim/internal/client"
	"github.com/yildizm/AirdropSim/internal/config"
	"github.com/yildizm/AirdropSim/internal/emoji"
	"github.com/yildizm/AirdropSim/internal/logger"
	"github.com/yildizm/AirdropSim/internal/ui"
)

var (
	cfgFile   string
	verbose   bool
	noColor   bool
	noEmoji   bool
	outputFmt string
	apiURL    string

	globalConfig *config.Config
)

// NewRootCommand creates the root command
func NewRootCommand(version, commit, date string) *cobra.Command {
	var address string

	rootCmd := &cobra.Command{
		Use:   "airdropsim",
		Short: "zkSync airdrop eligibility simulator",
		Long: `AirdropSim sends a wallet address to a zkSync airdrop analysis service and
shows the eligibility report it returns.

Run without a subcommand for the interactive terminal UI, or use
"airdropsim analyze <address>" for one-shot output.

The service address is read from api.base_url in the config file, from
AIRDROPSIM_API_URL, or from a .env file in the working directory.

Every other config setting can also be overridden with an AIRDROPSIM_*
variable named after its section and key (AIRDROPSIM_API_TIMEOUT,
AIRDROPSIM_OUTPUT_VERBOSE, AIRDROPSIM_UI_THEME, ...); run
"airdropsim config path" for the search order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-disable emojis on Windows if not explicitly set
			if runtime.GOOS == "windows" && !cmd.Flag("no-emoji").Changed {
				noEmoji = true
			}
			return loadGlobalConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(address)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&noEmoji, "no-emoji", false, "disable emoji output (useful for Windows terminals)")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "", "output format for analyze (text, json, markdown)")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "analysis service base URL (overrides config and environment)")

	rootCmd.Flags().StringVarP(&address, "address", "a", "", "pre-fill the wallet address field")

	// Add subcommands
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newVersionCommand(version, commit, date))

	return rootCmd
}

// loadGlobalConfig loads configuration and folds command line flags into it
func loadGlobalConfig(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("api-url") {
		cfg.API.BaseURL = apiURL
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noEmoji {
		cfg.UI.NoEmoji = true
	}
	if noColor {
		cfg.Output.ColorMode = "never"
	}
	if outputFmt != "" {
		cfg.Output.DefaultFormat = outputFmt
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	emoji.SetEmojiDisabled(cfg.UI.NoEmoji)
	ui.SetColorDisabled(cfg.Output.ColorMode == "never")
	if !ui.SetThemeByName(cfg.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", cfg.UI.Theme)
	}

	globalConfig = cfg
	return nil
}

// runInteractive starts the terminal UI
func runInteractive(address string) error {
	cfg := GetGlobalConfig()

	// The UI owns the terminal, so diagnostics go to the log file or nowhere
	logOut, closeLog, err := openLogOutput(cfg.Output.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.SetOutput(logOut)
	defer logger.SetOutput(os.Stderr)

	c, err := newAnalysisClient(cfg, "ui-client")
	if err != nil {
		return err
	}

	return ui.Run(c, logger.NewWithCallback("ui", isVerbose), address)
}

// newAnalysisClient builds the API client from configuration
func newAnalysisClient(cfg *config.Config, component string) (*client.Client, error) {
	c, err := client.New(client.FromAppConfig(cfg), logger.NewWithCallback(component, isVerbose))
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis client: %w", err)
	}
	return c, nil
}

func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	// #nosec G304 - path comes from the user's own configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func newVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display version number, build commit, date, and runtime information",
		// Version output must not depend on a loadable config
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			displayVersion := version
			displayCommit := commit
			displayDate := date

			if version == "dev" || version == "" {
				displayVersion = "development"
			}
			if commit == "none" || commit == "" {
				displayCommit = "local-build"
			}
			if date == "unknown" || date == "" {
				displayDate = "local-build"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "AirdropSim %s (%s) built on %s\n", displayVersion, displayCommit, displayDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// GetGlobalConfig returns the configuration loaded for the running command
func GetGlobalConfig() *config.Config {
	if globalConfig == nil {
		return config.DefaultConfig()
	}
	return globalConfig
}

// Global helpers
func isVerbose() bool {
	return verbose || (globalConfig != nil && globalConfig.Output.Verbose)
}

func getOutputFormat() string {
	return GetGlobalConfig().Output.DefaultFormat
}

func useColor() bool {
	switch GetGlobalConfig().Output.ColorMode {
	case "never":
		return false
	case "always":
		return true
	default:
		return !ui.IsColorDisabled()
	}
}
