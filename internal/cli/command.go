package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"polyglot/internal/config"
	"polyglot/internal/middleware"

	"github.com/spf13/cobra"
)

type runner struct {
	flags *Flags
	in    io.Reader
	out   io.Writer
	app   *App
}

// CreateRootCommand creates and configures the root cobra command.
// Commands read answers from in and write results to out.
func CreateRootCommand(flags *Flags, in io.Reader, out io.Writer) *cobra.Command {
	r := &runner{flags: flags, in: in, out: out}

	rootCmd := &cobra.Command{
		Use:   "polyglot",
		Short: "Bilingual dictionary translator",
		Long: `polyglot translates words and phrases with plain-text bilingual dictionaries.

Each language pair lives in its own file in the dictionary directory.
Without a command an interactive shell is started.

Examples:
  polyglot                          # Start the interactive shell
  polyglot translate hello world    # Translate a phrase
  polyglot add cat кошка            # Add a translation and save
  polyglot --pair English-French show`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: r.setup,
		PersistentPostRun: r.teardown,
		RunE:              r.runShell,
	}
	rootCmd.SetOut(out)

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		r.translateCommand(),
		r.advancedCommand(),
		r.contextCommand(),
		r.addCommand(),
		r.removeCommand(),
		r.pairsCommand(),
		r.showCommand(),
		r.reviewCommand(),
		r.shellCommand(),
	)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVarP(&flags.Dir, "dir", "d", "", "Dictionary directory (default $POLYGLOT_DIR or languages)")
	cmd.PersistentFlags().StringVarP(&flags.Pair, "pair", "p", "", "Language pair to use (default $POLYGLOT_PAIR or the first loaded)")
	cmd.PersistentFlags().StringVar(&flags.Forms, "forms", "", "Word forms table for advanced translation (form:lemma[:pl] per line)")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.NoSample, "no-sample", false, "Do not use sample dictionaries when the directory is empty")
}

func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	r.flags.Apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	zapCfg, err := cfg.LoggerConfig()
	if err != nil {
		return err
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app, err := NewApp(cfg, r.in, r.out, logger)
	if err != nil {
		_ = logger.Sync()
		return err
	}
	r.app = app
	return nil
}

func (r *runner) teardown(_ *cobra.Command, _ []string) {
	if r.app != nil {
		_ = r.app.Logger.Sync()
	}
}

func (r *runner) translateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "translate <word or phrase>",
		Aliases: []string{"t"},
		Short:   "Translate a word or phrase with the current dictionary",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.app.Handler.Translate(strings.Join(args, " "))
			return nil
		},
	}
}

func (r *runner) advancedCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "advanced <word or phrase>",
		Aliases: []string{"a"},
		Short:   "Translate using base forms of the words",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r.app.Handler.Advanced(strings.Join(args, " "))
			return nil
		},
	}
}

func (r *runner) contextCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "context <phrase>",
		Aliases: []string{"c"},
		Short:   "Translate and choose between ambiguous translations",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Handler.Context(cmd.Context(), strings.Join(args, " "))
		},
	}
}

func (r *runner) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <word> <translation>",
		Short: "Add or update a translation and save",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Handler.Add(args[0], strings.Join(args[1:], " ")); err != nil {
				return err
			}
			return r.app.Handler.Save()
		},
	}
}

func (r *runner) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <word>",
		Aliases: []string{"rm"},
		Short:   "Remove a word and save",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.app.Handler.Remove(args[0]); err != nil {
				return err
			}
			return r.app.Handler.Save()
		},
	}
}

func (r *runner) pairsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs",
		Short: "List language pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r.app.Handler.Pairs()
			return nil
		},
	}
}

func (r *runner) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "show",
		Aliases: []string{"ls"},
		Short:   "Show the current dictionary",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.app.Handler.Show()
		},
	}
}

func (r *runner) reviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review [word]",
		Short: "Check a translation and correct it; without a word a random one is picked",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var word string
			if len(args) > 0 {
				word = args[0]
			}
			if err := r.app.Handler.Review(cmd.Context(), word); err != nil {
				return err
			}
			return r.app.Handler.Save()
		},
	}
}

func (r *runner) shellCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell",
		Args:  cobra.NoArgs,
		RunE:  r.runShell,
	}
}

// runShell reads commands until quit, end of input or interrupt, then saves
func (r *runner) runShell(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app := r.app

	handle := middleware.Chain(
		app.Handler.HandleLine,
		middleware.Recover(app.Logger),
		middleware.Logging(app.Logger),
	)

	fmt.Fprintf(r.out, "Current pair: %s. Type help for commands, quit to exit.\n", app.DB.CurrentPair())
	for {
		line, err := app.Prompter.ReadLine(ctx, "> ")
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(r.out)
			break
		}
		if err != nil {
			return err
		}
		if !handle(ctx, line) {
			break
		}
	}

	return app.Handler.Save()
}
