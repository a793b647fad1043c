package main

import (
	"github.com/spf13/cobra"

	"github.com/Hanaasagi/powerprompt/internal/preview"
)

func newPreviewCmd(config *AppConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [flags] [descriptor]...",
		Short: "Draw the prompt in this terminal and report its width and captures",
		Long: `Draw the prompt with plain terminal escapes instead of zsh prompt syntax.
Captured commands are shown as {N} placeholders and conditionals take their
true branch. Escapes are stripped when stdout is not a terminal.`,
		Args: cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(c *cobra.Command, args []string) error {
			prompt, err := compile(c, config, args, "ansi")
			if err != nil {
				return err
			}

			report, err := preview.Build(prompt)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			return report.Write(out, preview.IsTerminal(out))
		},
	}
}
