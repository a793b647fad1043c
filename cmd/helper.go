// nolint:errcheck
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	titleStyle       = color.New(color.Bold, color.FgHiWhite)
	commandStyle     = color.New(color.FgHiGreen)
	descriptionStyle = color.New(color.FgHiCyan)
	exampleStyle     = color.New(color.FgHiCyan)
	flagStyle        = color.New(color.Bold, color.FgHiCyan)
	syntaxStyle      = color.New(color.FgHiYellow)
	tipStyle         = color.New(color.FgHiYellow)
	errorStyle       = color.New(color.Bold, color.FgHiRed)
)

// DescriptorSyntax is the short reference printed after the flags.
var DescriptorSyntax = [][2]string{
	{"(fg;bg)value>", "segment with colors, right arrow into the next one"},
	{"value<", "left arrow into the next segment"},
	{"value|", "no glyph"},
	{`\> \< \|`, "literal glyph characters"},
	{`\\>`, "literal backslash, then the glyph"},
	{"$NAME", "shell variable"},
	{"$(cmd)", "command output, captured once per prompt"},
	{"?else$(cmd)", "command output, or else when it prints nothing"},
	{"?N<test>;a;b", "a when the zsh test %(N<test>...) holds, b otherwise"},
	{`\n`, "line break"},
}

var HelpTemplate = `{{with (or .Long .Short)}}{{. | trimTrailingWhitespaces}}

{{end}}{{if or .Runnable .HasSubCommands}}{{.UsageString}}{{end}}` + titleStyle.Sprintf("GitHub:") + color.New(color.FgYellow).Sprintln(
	"		https://github.com/Hanaasagi/powerprompt",
)

func rpad(s string, padding int) string {
	template := fmt.Sprintf("%%-%ds", padding)
	return fmt.Sprintf(template, s)
}

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

var (
	reWithShort = regexp.MustCompile(`^( {2,})(-[a-zA-Z]), (--[a-zA-Z0-9-]+)(.*)$`)
	reLongOnly  = regexp.MustCompile(`^( {2,})(--[a-zA-Z0-9-]+)(.*)$`)
)

func colorFlags(raw string) []byte {
	var out bytes.Buffer

	for _, line := range strings.Split(raw, "\n") {
		switch {
		case reWithShort.MatchString(line):
			m := reWithShort.FindStringSubmatch(line)
			indent, shortFlag, longFlag, rest := m[1], m[2], m[3], m[4]
			out.WriteString(indent)
			flagStyle.Fprint(&out, shortFlag)
			out.WriteString(", ")
			out.WriteString(longFlag)
			out.WriteString(rest)

		case reLongOnly.MatchString(line):
			m := reLongOnly.FindStringSubmatch(line)
			indent, longFlag, rest := m[1], m[2], m[3]
			out.WriteString(indent)
			flagStyle.Fprint(&out, longFlag)
			out.WriteString(rest)

		default:
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}

	return out.Bytes()
}

func writeSyntax(buf *bytes.Buffer) {
	width := 0
	for _, entry := range DescriptorSyntax {
		width = max(width, len(entry[0]))
	}

	fmt.Fprint(buf, "\n\n")
	titleStyle.Fprint(buf, "Descriptor syntax:")
	for _, entry := range DescriptorSyntax {
		fmt.Fprint(buf, "\n  ")
		syntaxStyle.Fprint(buf, rpad(entry[0], width))
		fmt.Fprint(buf, "  ")
		fmt.Fprint(buf, entry[1])
	}
}

func ColorUsageFunc(w io.Writer, cmd *cobra.Command) error {
	buf := &bytes.Buffer{}

	titleStyle.Fprint(buf, "Usage:")
	if cmd.Runnable() {
		fmt.Fprint(buf, "\n  ")
		commandStyle.Fprint(buf, cmd.UseLine())
	}
	if cmd.HasAvailableSubCommands() {
		fmt.Fprint(buf, "\n  ")
		commandStyle.Fprintf(buf, "%s [command]", cmd.CommandPath())
	}

	if cmd.HasExample() {
		fmt.Fprint(buf, "\n\n")
		titleStyle.Fprint(buf, "Examples:")
		fmt.Fprint(buf, "\n")
		exampleStyle.Fprint(buf, cmd.Example)
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprint(buf, "\n\n")
		titleStyle.Fprint(buf, "Available Commands:")
		for _, subcmd := range cmd.Commands() {
			if subcmd.IsAvailableCommand() || subcmd.Name() == "help" {
				fmt.Fprint(buf, "\n  ")
				commandStyle.Fprint(buf, rpad(subcmd.Name(), subcmd.NamePadding()))
				fmt.Fprint(buf, " ")
				descriptionStyle.Fprint(buf, subcmd.Short)
			}
		}
	}

	if cmd.HasAvailableLocalFlags() {
		fmt.Fprint(buf, "\n\n")
		titleStyle.Fprint(buf, "Flags:")
		fmt.Fprint(buf, "\n")
		buf.Write(colorFlags(trimRightSpace(cmd.LocalFlags().FlagUsages())))
	}

	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprint(buf, "\n")
		titleStyle.Fprint(buf, "Global Flags:")
		fmt.Fprint(buf, "\n")
		buf.Write(colorFlags(trimRightSpace(cmd.InheritedFlags().FlagUsages())))
	}

	writeSyntax(buf)

	if cmd.HasAvailableSubCommands() {
		fmt.Fprint(buf, "\n\n")
		tipStyle.Fprintf(buf, "Use \"%s [command] --help\" for more information about a command.", cmd.CommandPath())
	}

	fmt.Fprintln(buf)

	_, err := w.Write(buf.Bytes())
	return err
}

// PrintError reports a fatal error on w.
func PrintError(w io.Writer, err error) {
	errorStyle.Fprint(w, "error:")
	fmt.Fprintf(w, " %v\n", err)
}
