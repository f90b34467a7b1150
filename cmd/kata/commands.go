package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pet-kata/internal/domain/people"
	"pet-kata/internal/domain/petstats"
	"pet-kata/internal/platform/config"
	"pet-kata/internal/platform/logger"
)

// app junta el estado compartido por los subcomandos.
type app struct {
	configPath string
	server     string
	verbose    bool
	timeout    time.Duration

	cfg     *config.Config
	logger  *zap.Logger
	querier Querier
}

// noQuerier marca comandos que no consultan el roster.
const noQuerier = "no-querier"

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "kata",
		Short: "Consultas del pet kata sobre el roster",
		Long: `kata ejecuta las consultas del pet kata sobre el roster de personas y mascotas.

Por defecto usa el roster local en memoria. Con --server (o KATA_SERVER_URL)
consulta el API HTTP de cmd/api y devuelve los mismos valores.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (optional)")
	root.PersistentFlags().StringVar(&a.server, "server", "", "pet-kata API base URL (default: local roster)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 30*time.Second, "Operation timeout")

	root.AddCommand(
		a.peopleCmd(),
		a.namesCmd(),
		a.petsCmd(),
		a.agesCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.server != "" {
		cfg.Client.BaseURL = a.server
	}
	a.cfg = cfg

	level := logger.ParseLevel(cfg.Logging.Level)
	if a.verbose {
		level = zapcore.DebugLevel
	}
	a.logger, err = logger.New(logger.Options{
		Level:  level,
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.App,
		Output: []string{"stderr"},
	})
	if err != nil {
		return err
	}

	if _, skip := cmd.Annotations[noQuerier]; skip {
		return nil
	}
	if a.querier == nil {
		a.querier, err = newQuerier(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("init querier: %w", err)
		}
	}
	a.logger.Debug("querier ready",
		zap.String("command", cmd.CommandPath()),
		zap.Bool("remote", cfg.Client.BaseURL != ""),
	)
	return nil
}

func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *app) peopleCmd() *cobra.Command {
	var with, without string

	cmd := &cobra.Command{
		Use:   "people",
		Short: "List first names, optionally filtered by pet type",
		Example: `  kata people
  kata people --with cat
  kata people --without cat`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			var (
				names []string
				err   error
			)
			switch {
			case with != "" && without != "":
				return fmt.Errorf("%w: use only one of --with/--without", petstats.ErrInvalidInput)
			case with != "":
				t, perr := people.ParsePetType(with)
				if perr != nil {
					return perr
				}
				names, err = a.querier.PeopleWithPet(ctx, t)
			case without != "":
				t, perr := people.ParsePetType(without)
				if perr != nil {
					return perr
				}
				names, err = a.querier.PeopleWithoutPet(ctx, t)
			default:
				names, err = a.querier.FirstNames(ctx)
			}
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), names)
		},
	}
	cmd.Flags().StringVar(&with, "with", "", "only people owning this pet type")
	cmd.Flags().StringVar(&without, "without", "", "only people not owning this pet type")
	return cmd
}

func (a *app) namesCmd() *cobra.Command {
	var sep string

	cmd := &cobra.Command{
		Use:     "names <full name>",
		Short:   "Join the pet names of a person",
		Example: `  kata names Bob Smith --sep " & "`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			names, err := a.querier.PetNamesOf(ctx, strings.Join(args, " "), sep)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), names)
			return err
		},
	}
	cmd.Flags().StringVar(&sep, "sep", petstats.DefaultSeparator, "separator between pet names")
	return cmd
}

func (a *app) petsCmd() *cobra.Command {
	pets := &cobra.Command{
		Use:   "pets",
		Short: "Pet type frequency queries",
	}

	var byEmoji bool
	counts := &cobra.Command{
		Use:   "counts",
		Short: "Count pets by type (first-seen order) or by emoji",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			if byEmoji {
				m, err := a.querier.PetCountsByEmoji(ctx)
				if err != nil {
					return err
				}
				keys := lo.Keys(m)
				slices.Sort(keys)
				return printLines(cmd.OutOrStdout(), lo.Map(keys, func(k string, _ int) string {
					return fmt.Sprintf("%s %d", k, m[k])
				}))
			}

			tc, err := a.querier.PetTypeCounts(ctx)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), lo.Map(tc, formatTypeCount))
		},
	}
	counts.Flags().BoolVar(&byEmoji, "emoji", false, "group by emoji instead of type")

	var n int
	top := &cobra.Command{
		Use:   "top",
		Short: "Most frequent pet types (ties by first appearance)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			tc, err := a.querier.TopPetTypes(ctx, n)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), lo.Map(tc, formatTypeCount))
		},
	}
	top.Flags().IntVarP(&n, "count", "n", 3, "how many pet types")

	pets.AddCommand(counts, top)
	return pets
}

func (a *app) agesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ages",
		Short: "Pet age statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.context(cmd)
			defer cancel()

			r, err := a.querier.AgeReport(ctx)
			if err != nil {
				return err
			}
			return printLines(cmd.OutOrStdout(), []string{
				fmt.Sprintf("count:   %d", r.Count),
				fmt.Sprintf("sum:     %d", r.Sum),
				fmt.Sprintf("min:     %d", r.Min),
				fmt.Sprintf("max:     %d", r.Max),
				fmt.Sprintf("average: %.2f", r.Average),
				fmt.Sprintf("median:  %.1f", r.Median),
				fmt.Sprintf("unique:  %v", r.Unique),
			})
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Config file helpers",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:         "init [path]",
		Short:       "Write the effective config (defaults + file + env + flags) as YAML",
		Example:     `  kata config init kata.yaml --server http://localhost:8080`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{noQuerier: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = "kata.yaml"
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := a.cfg.Save(path); err != nil {
				return err
			}
			a.logger.Debug("config written", zap.String("path", path))
			_, err := fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}

func formatTypeCount(tc petstats.TypeCount, _ int) string {
	return fmt.Sprintf("%s %-8s %d", tc.Emoji, tc.Type, tc.Count)
}

func printLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}
