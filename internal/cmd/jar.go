package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/onestone/redistjar/internal/config"
	"github.com/onestone/redistjar/internal/project"
	"github.com/onestone/redistjar/internal/publisher"
	"github.com/onestone/redistjar/internal/ui"
)

func newJarCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jar",
		Short: "Copy a pre-built JAR into the build directory and register it",
		Long: `Copies a pre-built JAR to <output-directory>/<final-name>[-<classifier>].jar,
replacing any existing file, and registers it on the project.

Without a classifier the JAR becomes the main artifact. Registering a second
main artifact fails; use a classifier to attach supplemental artifacts instead.

Examples:
  redistjar jar --jar-file dist/lib-1.0.jar
  redistjar jar --jar-file dist/lib-1.0-sources.jar --classifier sources
  redistjar jar --jar-file /tmp/lib.jar --output-directory out --final-name myapp-1.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := root.redistribute(cmd.Context(), cmd, root.jarParams(), false)
			return err
		},
	}

	addJarFlags(cmd)
	return cmd
}

func addJarFlags(cmd *cobra.Command) {
	cmd.Flags().String("jar-file", "", "Pre-built JAR file to redistribute, relative to the project root unless absolute (required)")
	cmd.Flags().String("output-directory", "", "Directory receiving the JAR (default: build.directory)")
	cmd.Flags().String("final-name", "", "Base name of the JAR (default: build.finalName)")
	cmd.Flags().String("classifier", "", "Attach the JAR as a supplemental artifact with this classifier")
	cmd.Flags().Bool("progress", false, "Show a progress bar while copying")
}

func (o *rootOptions) jarParams() config.Params {
	return config.Params{
		JarFile:         o.v.GetString("jar-file"),
		OutputDirectory: o.v.GetString("output-directory"),
		FinalName:       o.v.GetString("final-name"),
		Classifier:      o.v.GetString("classifier"),
	}
}

// redistribute publishes and registers the JAR described by params and
// returns the published file. With republish set, a target that is already
// registered on the project is copied again without registering it twice.
func (o *rootOptions) redistribute(ctx context.Context, cmd *cobra.Command, params config.Params, republish bool) (string, error) {
	out := cmd.OutOrStdout()

	var target string
	err := o.editProject(func(p *project.Project) error {
		req, err := config.NewResolver(p).Resolve(params)
		if err != nil {
			return err
		}

		if republish && registered(p, req) {
			target, err = o.publisher(cmd).Publish(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s Updated %s\n", ui.IconPackage, ui.PathStyle.Render(displayPath(p, target)))
			return p.RecordDigest(target)
		}

		target, err = o.publisher(cmd).Execute(ctx, p, req)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s Published %s → %s\n", ui.IconPackage,
			ui.PathStyle.Render(displayPath(p, req.JarFile)), ui.PathStyle.Render(displayPath(p, target)))
		if publisher.HasClassifier(req.Classifier) {
			fmt.Fprintf(out, "%s Attached as %s:%s\n", ui.IconLink, publisher.ArtifactTypeJar, req.Classifier)
		} else {
			fmt.Fprintf(out, "%s Registered as main artifact\n", ui.IconLink)
		}

		return p.RecordDigest(target)
	})
	if err != nil {
		return "", err
	}

	return target, nil
}

// registered reports whether the target of req is already registered in the
// slot req would register it in.
func registered(p *project.Project, req publisher.Request) bool {
	target, err := publisher.TargetPath(req.OutputDirectory, req.FinalName, req.Classifier)
	if err != nil {
		return false
	}
	if !publisher.HasClassifier(req.Classifier) {
		return p.ArtifactFile() == target
	}
	for _, a := range p.AttachedArtifacts {
		if p.Path(a.File) == target {
			return true
		}
	}
	return false
}

func (o *rootOptions) publisher(cmd *cobra.Command) *publisher.Publisher {
	opts := []publisher.Option{publisher.WithLogger(o.logger)}
	if o.v.GetBool("progress") {
		opts = append(opts, publisher.WithProgress(func(size int64) io.Writer {
			return progressbar.NewOptions64(size,
				progressbar.OptionSetDescription("Copying"),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionShowBytes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionThrottle(65*time.Millisecond),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprint(cmd.ErrOrStderr(), "\n")
				}),
			)
		}))
	}
	return publisher.New(opts...)
}
