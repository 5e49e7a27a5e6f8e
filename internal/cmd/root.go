package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "REDISTJAR"

// rootOptions carries the state shared by every command of one invocation.
type rootOptions struct {
	projectDir string
	logLevel   string
	verbose    bool

	v      *viper.Viper
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{v: newViper()}

	rootCmd := &cobra.Command{
		Use:   "redistjar",
		Short: "Redistribute pre-built JAR files as project artifacts",
		Long: `redistjar copies a pre-built JAR into the build output directory of a project
and registers it in the project descriptor (redist.yaml).

Without a classifier the JAR becomes the project's main artifact; with a
classifier it is attached as a supplemental artifact. Every flag can also be
set through the environment, e.g. REDISTJAR_CLASSIFIER=sources.`,
		Version:           "1.0.0",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.projectDir, "project-dir", "C", "", "Project root (default: nearest directory containing redist.yaml)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Shorthand for --log-level=debug")

	rootCmd.AddCommand(
		newJarCmd(opts),
		newWatchCmd(opts),
		newArtifactsCmd(opts),
		newVerifyCmd(opts),
		newValidateCmd(opts),
		newCleanCmd(opts),
	)

	return rootCmd
}

// Execute runs the CLI until it completes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// setup binds the flags of the running command to the environment and
// creates the logger.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	if err := o.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	level, err := log.ParseLevel(o.v.GetString("log-level"))
	if err != nil {
		return err
	}
	if o.v.GetBool("verbose") {
		level = log.DebugLevel
	}

	o.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "redistjar",
		Level:  level,
	})
	return nil
}
