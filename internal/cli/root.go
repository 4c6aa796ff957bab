// Package cli is the seqmatch command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqmatch-core/alphabet"
	"seqmatch/internal/appcore"
	"seqmatch/internal/cmdutil"
	"seqmatch/internal/config"
	"seqmatch/internal/pipeline"
	"seqmatch/internal/version"
	"seqmatch/internal/writers"
)

// exitError carries the exit code of a failure that is not a usage error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func runtimeError(err error) error {
	if errors.Is(err, context.Canceled) {
		return &exitError{code: appcore.ExitCancelled, err: err}
	}
	return &exitError{code: appcore.ExitRuntime, err: err}
}

// runEnv is the state of one invocation. Every Execute builds a fresh one,
// so nothing leaks between runs.
type runEnv struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	alpha   *alphabet.Alphabet
	stdout  io.Writer
	stderr  io.Writer
	code    int
}

// Execute runs seqmatch with argv and returns the process exit code:
// 0 success, 1 (configurable) nothing found, 2 usage error, 3 runtime or
// output error, 130 cancelled.
func Execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	env := &runEnv{v: viper.New(), stdout: stdout, stderr: stderr}
	root := newRootCmd(env)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return env.code
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.code != appcore.ExitCancelled {
			fmt.Fprintln(stderr, "error:", err)
		}
		return ee.code
	}
	fmt.Fprintln(stderr, "error:", err)
	fmt.Fprintln(stderr, "Run 'seqmatch --help' for usage.")
	return appcore.ExitUsage
}

func newRootCmd(env *runEnv) *cobra.Command {
	root := &cobra.Command{
		Use:   "seqmatch",
		Short: "Exact pattern matching and common-substructure search over biological sequences",
		Long: `seqmatch finds exact structure in FASTA sequences:

  prefix   failure (prefix-function) arrays
  locate   every occurrence of one or more motifs, overlaps included
  shared   the longest substring common to all records
  lcs      a longest common subsequence of two records
  revp     reverse palindromes such as restriction sites

Settings come from flags, SEQMATCH_* environment variables and an optional
seqmatch.yaml in the working directory or the user config directory.`,
		Version:           version.Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: env.setup,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return err })

	fs := root.PersistentFlags()
	fs.StringVar(&env.cfgFile, "config", "", "config file (default ./seqmatch.yaml, then <user config dir>/seqmatch/seqmatch.yaml)")
	fs.StringP("alphabet", "a", defString("alphabet"), "sequence alphabet: "+strings.Join(alphabet.Names(), ", "))
	fs.StringP("output", "o", defString("output"), "output format: "+strings.Join(writers.Formats(), ", "))
	fs.Bool("one-based", false, "report positions counting from 1")
	fs.Bool("no-header", false, "omit the header line of text and tsv output")
	fs.IntP("threads", "t", 0, "worker goroutines (0 = all CPUs)")
	fs.String("log-level", defString("log-level"), "log level: debug, info, warn or error")
	fs.String("log-format", defString("log-format"), "log format: text or json")
	fs.BoolP("quiet", "q", false, "log errors only")
	fs.Int("no-match-exit-code", 1, "exit code when nothing is found (0..255)")
	for _, name := range []string{
		"alphabet", "output", "one-based", "no-header", "threads",
		"log-level", "log-format", "quiet", "no-match-exit-code",
	} {
		env.bind(name, fs.Lookup(name))
	}

	root.AddCommand(
		newPrefixCmd(env),
		newLocateCmd(env),
		newSharedCmd(env),
		newLCSCmd(env),
		newRevpCmd(env),
		newVersionCmd(env),
	)
	return root
}

func defString(key string) string { return config.Defaults[key].(string) }

func (e *runEnv) bind(key string, f *pflag.Flag) {
	if err := e.v.BindPFlag(key, f); err != nil {
		panic(fmt.Sprintf("bind %s: %v", key, err))
	}
}

func configSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "seqmatch"))
	}
	return paths
}

// setup loads the configuration and installs the logger. It runs before
// every subcommand.
func (e *runEnv) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(e.v, e.cfgFile, configSearchPaths()...)
	if err != nil {
		return err
	}
	if !writers.Known(cfg.Output) {
		return fmt.Errorf("%w: unknown output format %q (want one of %s)",
			config.ErrInvalid, cfg.Output, strings.Join(writers.Formats(), ", "))
	}
	alpha, err := alphabet.Lookup(cfg.Alphabet)
	if err != nil {
		return err
	}
	ctx, err := cmdutil.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Quiet:  cfg.Quiet,
	}.WithLogger(cmd.Context(), e.stderr)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	e.cfg, e.alpha = cfg, alpha
	return nil
}

func (e *runEnv) pipeline() pipeline.Config {
	return pipeline.Config{Threads: e.cfg.Threads}
}

// pos converts a 0-based offset to the reported coordinate.
func (e *runEnv) pos(p int) int {
	if e.cfg.OneBased {
		return p + 1
	}
	return p
}

// stream writes the rows of produce and records the resulting exit code.
func (e *runEnv) stream(cmd *cobra.Command, header []string, produce appcore.Producer) {
	e.code = appcore.Run(cmd.Context(), e.stdout, e.stderr, appcore.Options{
		Format:          e.cfg.Output,
		Table:           writers.Table{Header: header, NoHeader: e.cfg.NoHeader},
		BufSize:         64,
		NoMatchExitCode: e.cfg.NoMatchExitCode,
	}, produce)
}
