package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/google/shlex"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/itohio/ohmmeter/config"
	"github.com/itohio/ohmmeter/dev"
	"github.com/itohio/ohmmeter/internal/cliconfig"
	"github.com/itohio/ohmmeter/internal/sim"
	"github.com/itohio/ohmmeter/logging"
	"github.com/itohio/ohmmeter/ui"
)

const longHelp = `Run the ohmmeter firmware's measurement loop against a simulated
voltage divider.

The simulated ADC reads the junction of the known reference resistor and the
resistor under test, adds gaussian noise and feeds the same averaging,
E24 matching and colour decoding the device runs. Readings are logged and,
with --render, the 128x64 screen is drawn in the terminal.

Configuration is read from $HOME/.ohmsim/config.toml (or --config), then
OHMSIM_* environment variables, then flags. OHMSIM_ARGS is split like a
shell command line and prepended to the arguments.`

var exampleUsage = strings.TrimSpace(`
  ohmsim --resistor 4k7
  ohmsim --resistor 220 --noise 10 --lang pt --render
  ohmsim --config ./bench.toml --watch
  ohmsim --resistor open --iterations 1`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath  string
		resistor string
		known    string
	)

	root := &cobra.Command{
		Use:           "ohmsim",
		Short:         "Simulate the resistor colour code ohmmeter",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if changed["resistor"] {
				v, err := cliconfig.ParseOhms(resistor)
				if err != nil {
					return fmt.Errorf("resistor: %w", err)
				}
				cfg.Resistor = v
			}
			if changed["known"] {
				v, err := cliconfig.ParseOhms(known)
				if err != nil {
					return fmt.Errorf("known: %w", err)
				}
				cfg.Reference = v
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			log := logging.NewZerolog(os.Stderr, level)
			log.Info("configuration",
				logging.String("resistor", cliconfig.FormatOhms(cfg.Resistor)),
				logging.String("known", cliconfig.FormatOhms(cfg.Reference)),
				logging.Int("samples", cfg.Samples),
				logging.Duration("interval", cfg.Interval),
				logging.Float64("noise", cfg.Noise),
				logging.String("lang", cfg.Lang),
				logging.Bool("render", cfg.Render),
				logging.Bool("watch", cfg.Watch),
			)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, &cfg, cfgFile, changed, log)
		},
	}

	f := root.Flags()
	f.StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.ohmsim/config.toml)")
	f.StringVar(&resistor, "resistor", cliconfig.FormatOhms(cfg.Resistor), "simulated resistor under test (470, 4k7, 1M, open, short)")
	f.StringVar(&known, "known", cliconfig.FormatOhms(cfg.Reference), "known reference resistor")
	f.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "ADC resolution in bits")
	f.Float64Var(&cfg.VRef, "vref", cfg.VRef, "ADC reference voltage")
	f.IntVar(&cfg.Samples, "samples", cfg.Samples, "ADC reads averaged per reading")
	f.DurationVar(&cfg.SampleInterval, "sample-interval", cfg.SampleInterval, "delay between ADC reads")
	f.DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between readings")
	f.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "stop after this many readings (0 = run until interrupted)")
	f.Float64Var(&cfg.Noise, "noise", cfg.Noise, "gaussian ADC noise in counts")
	f.Int64Var(&cfg.Seed, "seed", cfg.Seed, "noise seed")
	f.Float64Var(&cfg.Gain, "gain", cfg.Gain, "ADC calibration gain")
	f.Float64Var(&cfg.Offset, "offset", cfg.Offset, "ADC calibration offset in counts")
	f.StringVar(&cfg.Lang, "lang", cfg.Lang, "colour names: en or pt")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	f.BoolVar(&cfg.Render, "render", cfg.Render, "draw the display in the terminal")
	f.BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload resistor and noise when the config file changes")

	if extra := os.Getenv("OHMSIM_ARGS"); extra != "" {
		args, err := shlex.Split(extra)
		if err != nil {
			fmt.Fprintf(os.Stderr, "OHMSIM_ARGS: %v\n", err)
			os.Exit(2)
		}
		root.SetArgs(append(args, os.Args[1:]...))
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ohmsim: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *cliconfig.Config, cfgFile string, changed map[string]bool, log logging.Logger) error {
	lang, err := cfg.Language()
	if err != nil {
		return err
	}
	resolution := uint8(cfg.Resolution)

	adc := sim.NewDividerADC(cfg.Reference, cfg.Resistor, resolution, cfg.Noise, seed(cfg.Seed))
	sampler, err := dev.NewSampler(adc, resolution, cfg.Samples, cfg.SampleInterval)
	if err != nil {
		return err
	}
	sampler.SetCalibration(dev.NewLinearCalibration(cfg.Gain, cfg.Offset))

	divider, err := dev.NewDivider(cfg.Reference, resolution, cfg.VRef)
	if err != nil {
		return err
	}

	var flush func(*ui.Buffer) error
	if cfg.Render {
		flush = sim.TerminalFlush(os.Stdout)
	}
	panel := ui.NewPanel(ui.NewBuffer(config.DisplayWidth, config.DisplayHeight, flush), lang)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	n := 0
	sink := dev.SinkFunc(func(r dev.Reading) error {
		err := panel.Show(r)
		if !cfg.Render {
			t := panel.Text()
			log.Info("reading",
				logging.String("real", t.Real),
				logging.String("e24", t.E24),
				logging.String("band1", t.Bands[0]),
				logging.String("band2", t.Bands[1]),
				logging.String("mult", t.Bands[2]),
			)
		}
		n++
		if cfg.Iterations > 0 && n >= cfg.Iterations {
			cancel()
		}
		return err
	})

	meter, err := dev.NewOhmmeter(sampler, divider, sink, cfg.Interval)
	if err != nil {
		return err
	}
	meter.SetLogger(log)

	if cfg.Watch && cfgFile != "" {
		w := sim.NewWatcher(cfgFile, 100*time.Millisecond, func() {
			reload(cfg, cfgFile, changed, adc, meter, log)
		}, log)
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Error("config watcher", logging.Err(err))
			}
		}()
	}

	if err := meter.Run(ctx); err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}
	return nil
}

// reload re-reads the config file, layers the environment and the flags in
// changed on top of it and applies the resistor, the noise, the known
// resistor and vref. Other settings need a restart.
func reload(cfg *cliconfig.Config, path string, changed map[string]bool, adc *sim.DividerADC, meter *dev.Ohmmeter, log logging.Logger) {
	fc, err := cliconfig.LoadFileConfig(path)
	if err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}
	next := *cfg
	if err := cliconfig.ApplyFileConfig(&next, fc, changed); err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}
	if err := cliconfig.ApplyEnvConfig(&next, changed); err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}
	if err := next.Validate(); err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}

	// the sampler keeps its resolution
	divider, err := dev.NewDivider(next.Reference, uint8(cfg.Resolution), next.VRef)
	if err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}
	if err := meter.SetDivider(divider); err != nil {
		log.Warn("reload config", logging.Err(err))
		return
	}
	adc.SetReference(next.Reference)
	adc.Set(next.Resistor, next.Noise)
	log.Info("reloaded",
		logging.String("resistor", cliconfig.FormatOhms(next.Resistor)),
		logging.String("known", cliconfig.FormatOhms(next.Reference)),
		logging.Float64("noise", next.Noise),
	)
}

func seed(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}
