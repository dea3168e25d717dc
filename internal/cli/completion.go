package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// shellCompletion describes one supported shell: how to load the script
// for the current session and where to install it permanently.
type shellCompletion struct {
	name    string
	session string
	install string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shellCompletion{
	{
		name:    "bash",
		session: "source <(%[1]s completion bash)",
		install: "%[1]s completion bash > ~/.local/share/bash-completion/completions/%[1]s",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	},
	{
		name:    "zsh",
		session: "source <(%[1]s completion zsh)",
		install: `%[1]s completion zsh > "${fpath[1]}/_%[1]s"   # needs compinit in ~/.zshrc`,
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	},
	{
		name:    "fish",
		session: "%[1]s completion fish | source",
		install: "%[1]s completion fish > ~/.config/fish/completions/%[1]s.fish",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	},
	{
		name:    "powershell",
		session: "%[1]s completion powershell | Out-String | Invoke-Expression",
		install: "%[1]s completion powershell >> $PROFILE",
		gen:     func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
	},
}

func shellNames() []string {
	names := make([]string, len(shells))
	for i, s := range shells {
		names[i] = s.name
	}
	return names
}

// completionHelp lists per-shell setup and what the scripts complete.
func completionHelp() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate shell completion scripts for %s.\n\n", appName)
	b.WriteString("Besides commands and flags, the scripts complete chart keys for\n")
	fmt.Fprintf(&b, "\"%s charts show\", each annotated with the chart title.\n", appName)
	for _, s := range shells {
		fmt.Fprintf(&b, "\n%s:\n", s.name)
		fmt.Fprintf(&b, "  $ "+s.session+"\n", appName)
		fmt.Fprintf(&b, "  # every session:\n  $ "+s.install+"\n", appName)
	}
	return b.String()
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [" + strings.Join(shellNames(), "|") + "]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionHelp(),
		DisableFlagsInUseLine: true,
		ValidArgs:             shellNames(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range shells {
				if s.name == args[0] {
					return s.gen(cmd.Root(), cmd.OutOrStdout())
				}
			}
			return nil
		},
	}
}
