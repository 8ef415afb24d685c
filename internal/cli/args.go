package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Execute runs cmd with args after dropping every flag token it does not
// define. Only the unknown token itself is removed, so an unknown flag never
// swallows the positional file that follows it.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	if len(args) == 0 || (args[0] != cobra.ShellCompRequestCmd && args[0] != cobra.ShellCompNoDescRequestCmd) {
		args = stripUnknownFlags(cmd.Flags(), args)
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// stripUnknownFlags keeps positionals, known flags and the values of known
// flags, following pflag's rules for where a value comes from.
func stripUnknownFlags(flags *pflag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return append(out, args[i:]...)
		case strings.HasPrefix(arg, "--"):
			name, _, inline := strings.Cut(arg[2:], "=")
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			out = append(out, arg)
			if !inline && takesValue(flag) && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			kept, needsNext := stripUnknownShorthands(flags, arg[1:])
			if kept == "" {
				continue
			}
			out = append(out, "-"+kept)
			if needsNext && i+1 < len(args) {
				i++
				out = append(out, args[i])
			}
		default:
			out = append(out, arg)
		}
	}
	return out
}

// stripUnknownShorthands filters a shorthand cluster such as "-av". Once a
// shorthand that takes a value is reached the rest of the cluster is its
// value; needsNext reports that the value is the next argument instead.
func stripUnknownShorthands(flags *pflag.FlagSet, shorthands string) (kept string, needsNext bool) {
	var b strings.Builder
	for j := 0; j < len(shorthands); j++ {
		name := shorthands[j : j+1]
		flag := flags.ShorthandLookup(name)
		if flag == nil {
			continue
		}
		b.WriteString(name)
		if takesValue(flag) {
			rest := shorthands[j+1:]
			b.WriteString(rest)
			return b.String(), rest == ""
		}
	}
	return b.String(), false
}

func takesValue(flag *pflag.Flag) bool {
	return flag.NoOptDefVal == ""
}
