package command

import (
	"errors"

	"github.com/shini4i/test-utils/internal/app"
	"github.com/spf13/cobra"
)

// Runner executes a single CLI operation.
type Runner interface {
	Temp(prefix string, create bool) error
	Write(path string, payload app.Payload) error
	Append(path string, payload app.Payload) error
	Read(path string, raw bool) error
	Cleanup(paths []string) error
	Sweep(pattern string) error
	Diff(src, dst string) error
	Fixture(manifestPath string) error
}

// Options describes the collaborators and defaults required to build the CLI.
type Options struct {
	Version     string
	TempDirBase string
	NewRunner   func(app.Config) (Runner, error)
	InitLogging func(debug bool)
}

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	debug   bool
	tempDir string
	seed    int64
}

// Execute builds and runs the Cobra command tree using the supplied options.
func Execute(opts Options, args []string) error {
	root := newRootCommand(opts)

	if args != nil {
		root.SetArgs(args)
	}

	return root.Execute()
}

// newRootCommand builds the root Cobra command with global flags and hooks.
func newRootCommand(opts Options) *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:          "test-utils",
		Short:        "Create, fill, inspect and remove temporary test files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.InitLogging != nil {
				opts.InitLogging(flags.debug)
			}
			return nil
		},
	}

	root.Version = opts.Version
	root.PersistentFlags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug mode")
	root.PersistentFlags().StringVar(&flags.tempDir, "tmp-dir", opts.TempDirBase, "Directory temporary files are created in")
	root.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Seed for generated names and random data (0 picks a time-based seed)")

	runner := func() (Runner, error) {
		if opts.NewRunner == nil {
			return nil, errors.New("no runner factory provided")
		}
		return opts.NewRunner(app.NewConfig(
			app.WithTempDirBase(flags.tempDir),
			app.WithSeed(flags.seed),
			app.WithDebug(flags.debug),
			app.WithVersion(opts.Version),
		))
	}

	root.AddCommand(
		newTempCommand(runner),
		newPayloadCommand("write", "Replace the contents of a file", runner, Runner.Write),
		newPayloadCommand("append", "Append to a file, creating it when missing", runner, Runner.Append),
		newReadCommand(runner),
		newCleanupCommand(runner),
		newSweepCommand(runner),
		newDiffCommand(runner),
		newFixtureCommand(runner),
	)

	return root
}

func newTempCommand(runner func() (Runner, error)) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:   "temp <prefix>",
		Short: "Print a new temporary path named <prefix>-<random suffix>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Temp(args[0], create)
		},
	}

	cmd.Flags().BoolVarP(&create, "create", "c", false, "Create an empty file at the path")

	return cmd
}

func newPayloadCommand(use, short string, runner func() (Runner, error), run func(Runner, string, app.Payload) error) *cobra.Command {
	var payload app.Payload

	cmd := &cobra.Command{
		Use:   use + " <path>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Random < 0 {
				return errors.New("--random must not be negative")
			}
			r, err := runner()
			if err != nil {
				return err
			}
			return run(r, args[0], payload)
		},
	}

	cmd.Flags().StringVar(&payload.Data, "data", "", "Literal data to write")
	cmd.Flags().IntVar(&payload.Random, "random", 0, "Write this many random bytes instead of --data")
	cmd.MarkFlagsMutuallyExclusive("data", "random")

	return cmd
}

func newReadCommand(runner func() (Runner, error)) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "read <path>",
		Short: "Print the size and SHA-256 of a file, or its raw contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Read(args[0], raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the file contents instead of a summary")

	return cmd
}

func newCleanupCommand(runner func() (Runner, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup <path>...",
		Short: "Remove files, ignoring ones that are already gone",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Cleanup(args)
		},
	}
}

func newSweepCommand(runner func() (Runner, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep <glob>",
		Short: "Remove every file matching a glob (supports **)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Sweep(args[0])
		},
	}
}

func newDiffCommand(runner func() (Runner, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <src> <dst>",
		Short: "Print a unified diff between two files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Diff(args[0], args[1])
		},
	}
}

func newFixtureCommand(runner func() (Runner, error)) *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Create the temporary files described by a YAML manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := runner()
			if err != nil {
				return err
			}
			return r.Fixture(manifest)
		},
	}

	cmd.Flags().StringVarP(&manifest, "file", "f", "", "Path to the fixture manifest")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
