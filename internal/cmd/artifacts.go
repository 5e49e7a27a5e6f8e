package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/ui"
)

func newArtifactsCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts",
		Short: "List the artifacts registered on the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := root.loadProject()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.TitleStyle.Render(coordinates(p)))

			if p.Artifact == nil && len(p.AttachedArtifacts) == 0 {
				fmt.Fprintln(out, ui.HelpStyle.Render("  no artifacts registered"))
				return nil
			}

			if p.Artifact != nil {
				printArtifact(cmd, "main", *p.Artifact)
			}
			for _, a := range p.AttachedArtifacts {
				printArtifact(cmd, a.Type+":"+a.Classifier, a)
			}
			return nil
		},
	}
}

func coordinates(p *project.Project) string {
	if p.GroupID == "" {
		return fmt.Sprintf("%s:%s", p.ArtifactID, p.Version)
	}
	return fmt.Sprintf("%s:%s:%s", p.GroupID, p.ArtifactID, p.Version)
}

func printArtifact(cmd *cobra.Command, label string, a project.Artifact) {
	digest := a.Digest
	if digest == "" {
		digest = "-"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-16s %s  %s\n", label, ui.PathStyle.Render(a.File), ui.HelpStyle.Render(digest))
}
