package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bradleyjkemp/plugfuzz/bytefuzz"
	"github.com/bradleyjkemp/plugfuzz/corpus"
	"github.com/bradleyjkemp/plugfuzz/fuzz"
	"github.com/bradleyjkemp/plugfuzz/target"
	"github.com/bradleyjkemp/plugfuzz/trace"
)

type runConfig struct {
	Target      []string `yaml:"target"`
	Workdir     string   `yaml:"workdir"`
	Parallelism int      `yaml:"parallelism"`
	Seed        int64    `yaml:"seed"`
	Timeout     string   `yaml:"timeout"`
	MetricsAddr string   `yaml:"metrics_addr"`
	Dict        []string `yaml:"dict"`
}

func newRunCommand() *cobra.Command {
	cfg := runConfig{Workdir: "."}

	cmd := &cobra.Command{
		Use:   "run [flags] -- <target command>",
		Short: "Fuzz an external command",
		Long: `Run the fuzzing loop against an external command.

The command is executed once per input. An "@@" argument is replaced with
the path of a file holding the input; without it the input arrives on
stdin. A target that writes raw coverage to the file named by the
PLUGFUZZ_COVER_FILE environment variable gets coverage-guided exploration;
one that does not still gets blind fuzzing. Non-zero exits and timeouts
are recorded as crashers under <workdir>/crashers.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				data, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("read config: %w", err)
				}
				if err := yaml.Unmarshal(data, &cfg); err != nil {
					return fmt.Errorf("parse config: %w", err)
				}
			}
			if len(args) > 0 {
				cfg.Target = args
			}
			return runFuzzer(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Workdir, "workdir", "w", cfg.Workdir, "dir with persistent work data")
	cmd.Flags().IntVarP(&cfg.Parallelism, "parallelism", "p", 1, "max concurrent entries (0 = unbounded)")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&cfg.Timeout, "timeout", "10s", "per-run target timeout")
	cmd.Flags().StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

func runFuzzer(cmd *cobra.Command, cfg runConfig) error {
	if len(cfg.Target) == 0 {
		return fmt.Errorf("no target command given")
	}
	timeout, err := time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("bad timeout: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	store, err := corpus.Open(cfg.Workdir)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log.Info().
		Str("run_id", runID).
		Strs("target", cfg.Target).
		Int64("seed", cfg.Seed).
		Int("parallelism", cfg.Parallelism).
		Msg("starting fuzzer")

	tracers := []fuzz.Tracer[[]byte, []byte]{
		&trace.Log[[]byte, []byte]{Logger: log.Logger, RunID: runID},
		&corpus.Saver[[]byte]{Store: store, Log: log.Logger},
	}
	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		tracers = append(tracers, trace.NewMetrics[[]byte, []byte](reg))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
	}

	var dict [][]byte
	for _, lit := range cfg.Dict {
		dict = append(dict, []byte(lit))
	}

	f, err := fuzz.New(fuzz.Config[[]byte, []byte, uint64]{
		Executor:    &target.Subprocess{Command: cfg.Target, Timeout: timeout},
		Coverage:    target.CoverFileReader{},
		Compressor:  bytefuzz.Compressor{},
		Detector:    target.ExitDetector{},
		Minimizer:   bytefuzz.Minimizer{},
		Mutator:     &bytefuzz.Mutator{Dict: dict},
		Tracer:      trace.Multi(tracers...),
		Parallelism: cfg.Parallelism,
		Seed:        cfg.Seed,
	})
	if err != nil {
		return err
	}

	seeds := store.Inputs()
	if len(seeds) == 0 {
		seeds = [][]byte{{}}
	}
	f.EnqueueRange(seeds)

	f.Run(cmd.Context())
	log.Info().
		Str("run_id", runID).
		Int("coverage", f.SeenCoverage()).
		Msg("run cancelled")
	return nil
}
