package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/ui"
)

// confirmFunc asks a yes/no question on the given streams.
type confirmFunc func(prompt string, in io.Reader, out io.Writer) (bool, error)

func askConfirm(prompt string, in io.Reader, out io.Writer) (bool, error) {
	return ui.AskConfirmIO(prompt, false, in, out)
}

func newCleanCmd(root *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove published JARs and clear the project's registrations",
		Long: `Removes every registered artifact file and clears the artifact entries of
redist.yaml, so the next jar run can register a main artifact again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var confirm confirmFunc
			if !yes {
				confirm = askConfirm
			}
			return root.clean(cmd, confirm)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// clean asks through confirm, when set, before taking the project lock, so
// a pending prompt never blocks other runs.
func (o *rootOptions) clean(cmd *cobra.Command, confirm confirmFunc) error {
	out := cmd.OutOrStdout()

	p, err := o.loadProject()
	if err != nil {
		return err
	}

	artifacts := p.Artifacts()
	if len(artifacts) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	if confirm != nil {
		confirmed, err := confirm(
			fmt.Sprintf("Remove %d registered artifacts?", len(artifacts)),
			cmd.InOrStdin(), out,
		)
		if err != nil && !errors.Is(err, ui.ErrCancelled) {
			return err
		}
		if !confirmed {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	return o.editProject(func(p *project.Project) error {
		return cleanProject(out, p)
	})
}

func cleanProject(out io.Writer, p *project.Project) error {
	for _, a := range p.Artifacts() {
		path := p.Path(a.File)
		fmt.Fprintf(out, "%s Removing %s...\n", ui.IconTrash, a.File)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
	}
	p.Reset()

	fmt.Fprintf(out, "%s Clean completed successfully\n", ui.IconSuccess)
	return nil
}
