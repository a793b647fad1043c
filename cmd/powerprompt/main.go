package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Hanaasagi/powerprompt/cmd"
	"github.com/Hanaasagi/powerprompt/internal/logger"
	"github.com/Hanaasagi/powerprompt/pkg/powerline"
)

const appName = "powerprompt"

var (
	Version     = "0.1.0"
	CommitSha   = "unknown"
	FullVersion = Version + "-" + CommitSha
)

var errNoDescriptors = errors.New("no descriptors given and none configured")

// AppConfig holds the command line state shared by all commands
type AppConfig struct {
	separator   string
	dialect     string
	configPath  string
	logLevel    string
	logFile     string
	showVersion bool
	invokedAs   string

	ignoredFlags []string

	logCloser io.Closer
}

// normalizeFlagName accepts the historical "seperator" spelling.
func normalizeFlagName(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "seperator" {
		name = "separator"
	}
	return pflag.NormalizedName(name)
}

// setupLogging sends slog output to the state directory. A log file that
// cannot be opened never blocks prompt generation.
func setupLogging(config *AppConfig) {
	path := config.logFile
	if path == "" {
		path = filepath.Join(xdg.StateHome, appName, appName+".log")
	}

	closer, err := logger.InitLogger(path, logger.ResolveLevel(config.logLevel))
	if err != nil {
		logger.Discard()
		return
	}
	config.logCloser = closer
}

func teardownLogging(config *AppConfig) {
	if config.logCloser != nil {
		config.logCloser.Close() // nolint: errcheck
		config.logCloser = nil
	}
}

// compile loads the config file, merges it with the flags and compiles the
// descriptors. An empty dialect means the configured one.
func compile(c *cobra.Command, config *AppConfig, args []string, dialect string) (*powerline.Prompt, error) {
	fileConfig, err := LoadConfigFromFile(config.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", config.configPath, err)
	}

	descriptors := args
	if len(descriptors) == 0 {
		descriptors = fileConfig.Core.Segments
	}
	if len(descriptors) == 0 {
		return nil, errNoDescriptors
	}

	separator := " "
	if fileConfig.Core.Separator != nil {
		separator = *fileConfig.Core.Separator
	}
	if c.Flags().Changed("separator") {
		separator = config.separator
	}

	if dialect == "" {
		dialect = fileConfig.Core.Dialect
		if c.Flags().Changed("dialect") {
			dialect = config.dialect
		}
	}

	d, err := powerline.DialectByName(dialect, fileConfig.Glyphset())
	if err != nil {
		return nil, err
	}
	if zsh, ok := d.(*powerline.Zsh); ok {
		zsh.InvokedAs = config.invokedAs
	}

	slog.Debug("Compiling prompt", "descriptors", len(descriptors), "dialect", d.Name(), "separator", separator)

	prompt, err := powerline.Compile(descriptors, powerline.Options{
		Separator: separator,
		Dialect:   d,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Compiled prompt", "fragments", len(prompt.Fragments), "captures", len(prompt.Captures))
	return prompt, nil
}

// runApp writes the shell script for the descriptors to stdout
func runApp(c *cobra.Command, config *AppConfig, args []string) error {
	if config.showVersion {
		fmt.Fprintf(c.OutOrStdout(), "%s version: %s\n", appName, FullVersion)
		return nil
	}

	prompt, err := compile(c, config, args, "")
	if err != nil {
		return err
	}

	return prompt.WriteScript(c.OutOrStdout())
}

func newRootCmd(config *AppConfig) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName + " [flags] <descriptor>...",
		Short: "Compile powerline prompt descriptors into a zsh prompt",
		Long: color.New(color.FgHiMagenta).Sprintf(
			"Compile compact segment descriptors into a powerline-style shell prompt. %s",
			color.New(color.FgBlue).Sprintf("(%s)", FullVersion),
		),
		Example: `  eval "$(powerprompt '(white;blue)%n>' '(black;white)%~>' '(;default)\n' '?0?;$;!')"`,
		Args:    cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(c *cobra.Command, args []string) {
			setupLogging(config)
			for _, flag := range config.ignoredFlags {
				slog.Warn("Ignoring unknown flag", "flag", flag)
			}
		},
		PersistentPostRun: func(c *cobra.Command, args []string) {
			teardownLogging(config)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runApp(c, config, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&config.separator, "separator", " ", "Padding placed around every segment value")
	rootCmd.PersistentFlags().StringVarP(&config.configPath, "config", "c", DefaultConfigPath(), "Path to the config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVar(&config.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $"+logger.EnvLevel+" or info)")
	rootCmd.PersistentFlags().StringVar(&config.logFile, "log-file", "", "Write logs to this file instead of the state directory")
	rootCmd.PersistentFlags().MarkHidden("log-file") // nolint: errcheck
	rootCmd.Flags().StringVarP(&config.dialect, "dialect", "d", "zsh", "Output dialect: zsh or ansi")
	rootCmd.Flags().BoolVarP(&config.showVersion, "version", "v", false, "Print version and exit")
	rootCmd.SetGlobalNormalizationFunc(normalizeFlagName)

	rootCmd.AddCommand(newPreviewCmd(config))

	rootCmd.SetHelpTemplate(cmd.HelpTemplate)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		return cmd.ColorUsageFunc(c.OutOrStderr(), c)
	})

	return rootCmd
}

// execute runs the command line args with unknown flags removed.
func execute(rootCmd *cobra.Command, config *AppConfig, args []string) error {
	kept, dropped := filterUnknownFlags(rootCmd, args)
	config.ignoredFlags = dropped
	rootCmd.SetArgs(kept)
	return rootCmd.Execute()
}

func main() {
	config := &AppConfig{invokedAs: os.Args[0]}

	if err := execute(newRootCmd(config), config, os.Args[1:]); err != nil {
		slog.Error("Error executing command", "error", err)
		teardownLogging(config)
		cmd.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
