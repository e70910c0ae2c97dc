package main

import (
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/23skdu/bitwise/bitwise"
	"github.com/23skdu/bitwise/internal/logging"
	"github.com/23skdu/bitwise/internal/ops"
	"github.com/23skdu/bitwise/internal/verify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	envFile     string
	dumpMetrics bool

	cfg    Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bitwise",
		Short:         "Evaluate and cross-check fixed-width bit operations",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.dumpMetrics {
				return nil
			}
			return writeMetrics(cmd.OutOrStdout(), prometheus.DefaultGatherer)
		},
	}
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading BITWISE_* variables")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics after the command")

	root.AddCommand(
		a.opsCmd(),
		a.evalCmd(),
		a.renderCmd(),
		a.verifyCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.envFile)
	if err != nil {
		return err
	}
	logger, err := logging.NewLogger(logging.Config{
		Format: cfg.LogFormat,
		Level:  cfg.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

func (a *app) opsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tARGS\tWIDTH\tFAMILY\tDESCRIPTION")
			for _, op := range ops.List() {
				params := strings.Join(op.Params, " ")
				if op.Variadic {
					params += "..."
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", op.Name, params, op.Width, op.Family, op.Doc)
			}
			return w.Flush()
		},
	}
}

func (a *app) evalCmd() *cobra.Command {
	var binary bool
	cmd := &cobra.Command{
		Use:   "eval <op> [args...]",
		Short: "Evaluate one operation",
		Long: "Evaluate one operation. Numbers may be decimal or carry a 0b, 0o or 0x prefix.\n" +
			"An operation without a value (index out of range, zero has no highest bit) prints \"none\".",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args[1:])
			if err != nil {
				return err
			}
			res, err := ops.NewEvaluator(a.logger).Eval(args[0], nums...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			switch {
			case !res.Present:
				_, err = fmt.Fprintln(out, "none")
			case binary:
				if err = bitwise.WriteBinaryRepresentation(out, res.Value); err == nil {
					_, err = fmt.Fprintln(out)
				}
			default:
				_, err = fmt.Fprintln(out, res.Value)
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&binary, "binary", "b", false, "print the result in binary")
	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <number>",
		Short: "Print the binary representation of a 32-bit number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseNumbers(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := bitwise.WriteBinaryRepresentation(out, nums[0]); err != nil {
				return err
			}
			_, err = fmt.Fprintln(out)
			return err
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	var from, to string
	var workers, chunk int
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check every algorithm variant over a range of inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bounds, err := parseNumbers([]string{from, to})
			if err != nil {
				return err
			}
			cfg := verify.DefaultConfig()
			cfg.From, cfg.To = bounds[0], bounds[1]
			cfg.Workers = a.cfg.VerifyWorkers
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			cfg.ChunkSize = a.cfg.VerifyChunk
			if cmd.Flags().Changed("chunk") {
				cfg.ChunkSize = chunk
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := verify.Run(ctx, a.logger, cfg)
			if report.RunID != "" {
				printReport(cmd.OutOrStdout(), report)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", "0", "first input")
	cmd.Flags().StringVar(&to, "to", "0xffff", "last input")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default BITWISE_VERIFY_WORKERS)")
	cmd.Flags().IntVar(&chunk, "chunk", 0, "inputs per work unit (default BITWISE_VERIFY_CHUNK)")
	return cmd
}

func printReport(w io.Writer, r verify.Report) {
	fmt.Fprintf(w, "run %s: checked %d inputs across %s in %s\n",
		r.RunID, r.Checked, strings.Join(verify.Families(), ","), r.Duration)
	for _, m := range r.Mismatches {
		fmt.Fprintf(w, "  %s %d: %s\n", m.Family, m.Input, m.Detail)
	}
	if r.Dropped > 0 {
		fmt.Fprintf(w, "  ... %d more\n", r.Dropped)
	}
}

// parseNumbers accepts decimal and 0b/0o/0x prefixed 32-bit numbers.
func parseNumbers(args []string) ([]uint32, error) {
	out := make([]uint32, len(args))
	for i, s := range args {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

