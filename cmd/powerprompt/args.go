package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// filterUnknownFlags drops flags that neither the root command nor the
// selected subcommand defines. Only the flag token itself is dropped: the
// argument after it stays a descriptor, where pflag would take it as the
// unknown flag's value.
func filterUnknownFlags(root *cobra.Command, args []string) (kept, dropped []string) {
	kept = make([]string, 0, len(args))
	target := root
	target.InitDefaultHelpFlag()
	seenPositional := false

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			kept = append(kept, args[i:]...)
			break
		}

		if !strings.HasPrefix(arg, "-") || arg == "-" {
			if !seenPositional {
				if sub := findSubcommand(target, arg); sub != nil {
					target = sub
					target.InitDefaultHelpFlag()
					kept = append(kept, arg)
					continue
				}
			}
			seenPositional = true
			kept = append(kept, arg)
			continue
		}

		flag, inlineValue := lookupFlag(target, arg)
		if flag == nil {
			dropped = append(dropped, arg)
			continue
		}

		kept = append(kept, arg)
		if !inlineValue && flag.NoOptDefVal == "" && i+1 < len(args) {
			i++
			kept = append(kept, args[i])
		}
	}

	return kept, dropped
}

func findSubcommand(c *cobra.Command, name string) *cobra.Command {
	for _, sub := range c.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	return nil
}

// lookupFlag resolves "--name", "--name=value", "-n", "-nvalue" and
// "-n=value". inlineValue reports whether the token already carries the
// flag's value.
func lookupFlag(c *cobra.Command, arg string) (flag *pflag.Flag, inlineValue bool) {
	flags := c.Flags()

	if name, ok := strings.CutPrefix(arg, "--"); ok {
		name, _, inlineValue = strings.Cut(name, "=")
		return flags.Lookup(string(normalizeFlagName(flags, name))), inlineValue
	}

	shorthands := arg[1:]
	flag = flags.ShorthandLookup(shorthands[:1])
	return flag, len(shorthands) > 1
}
