package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/onestone/redistjar/internal/config"
	"github.com/onestone/redistjar/internal/ui"
	"github.com/onestone/redistjar/internal/watcher"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Redistribute the JAR and copy it again whenever it changes",
		Long: `Runs the jar goal once, then watches the JAR file and copies it to the same
target every time it is rewritten. A target that is already registered is not
registered again; only the file and its recorded digest are refreshed. Stop
with Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.watch(cmd.Context(), cmd, root.jarParams())
		},
	}

	addJarFlags(cmd)
	return cmd
}

func (o *rootOptions) watch(ctx context.Context, cmd *cobra.Command, params config.Params) error {
	if _, err := o.redistribute(ctx, cmd, params, true); err != nil {
		return err
	}

	p, err := o.loadProject()
	if err != nil {
		return err
	}
	jarFile, err := config.NewResolver(p).ResolveJarFile(params.JarFile)
	if err != nil {
		return err
	}

	w, err := watcher.New(watcher.ForFile(jarFile))
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("failed to watch %s: %w", jarFile, err)
	}
	defer w.Stop()

	fmt.Fprintf(cmd.OutOrStdout(), "%s Watching %s\n", ui.IconWatch, ui.PathStyle.Render(displayPath(p, jarFile)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-w.Errors():
			o.logger.Warn("watch error", "err", err)
		case event := <-w.Events():
			if event.Type != watcher.EventWritten {
				o.logger.Warn("jar file is gone, waiting for it to come back", "path", event.Path)
				continue
			}

			if _, err := o.redistribute(ctx, cmd, params, true); err != nil {
				// Keep watching; the next write may fix a half-written archive.
				o.logger.Error("failed to republish", "err", err)
			}
		}
	}
}
