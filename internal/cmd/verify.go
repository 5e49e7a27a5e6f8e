package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/ui"
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check registered artifacts against their recorded digests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.loadProject()
			if err != nil {
				return err
			}
			return verifyArtifacts(cmd, root, p)
		},
	}
}

func verifyArtifacts(cmd *cobra.Command, root *rootOptions, p *project.Project) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, a := range p.Artifacts() {
		if a.Digest == "" {
			fmt.Fprintf(out, "%s %s: no digest recorded\n", ui.IconWarning, a.File)
			continue
		}

		if err := project.Verify(p.Path(a.File), a.Digest); err != nil {
			root.logger.Debug("verification failed", "file", a.File, "err", err)
			fmt.Fprintf(out, "%s %s: %v\n", ui.IconError, a.File, err)
			failed++
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ui.IconSuccess, a.File)
	}

	if failed > 0 {
		return fmt.Errorf("verification failed for %d artifacts", failed)
	}
	return nil
}
