package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	logAdapter "github.com/bft-labs/paralogmask/internal/adapters/log"
	"github.com/bft-labs/paralogmask/internal/adapters/stdio"
	"github.com/bft-labs/paralogmask/internal/cliconfig"
	"github.com/bft-labs/paralogmask/internal/domain"
	"github.com/bft-labs/paralogmask/internal/ports"
	"github.com/bft-labs/paralogmask/pkg/paralogmask"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

const longHelp = `Pipe in a MAF file. Blocks preceded by a line reading '# Paralog=1'
are commented out: every line of the block, the flag line included, gets a
'# ' prefix. The blank line ending the block is left untouched.

Input is read from standard input and written to standard output.
Positional arguments are ignored.`

var exampleUsage = strings.TrimSpace(`
  paralogmask < alignment.maf > masked.maf
  zcat alignment.maf.gz | paralogmask --log-level info | gzip > masked.maf.gz
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	if args == nil {
		// cobra reads os.Args when given nil.
		args = []string{}
	}
	cmd := newRootCommand(&cfg, &cfgPath, stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrUsage), errors.Is(err, domain.ErrInvalidConfig):
		fmt.Fprintln(stderr, "paralogmask:", err)
		fmt.Fprintln(stderr, cmd.UsageString())
		return exitUsage
	case stdio.IsBrokenPipe(err):
		return exitIO
	default:
		logger := logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger(cfg, stderr))
		logger.Error("paralogmask", ports.Err(err))
		return exitIO
	}
}

func newRootCommand(cfg *cliconfig.Config, cfgPath *string, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	// Arguments are never consumed: unknown flags are ignored like positionals.
	root := &cobra.Command{
		Use:                "paralogmask",
		Short:              "Comment out paralog blocks in a MAF stream",
		Long:               longHelp,
		Example:            exampleUsage,
		Version:            fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if err := loadConfig(cfg, *cfgPath, changed); err != nil {
				return err
			}

			logger := logAdapter.NewZerologAdapterWithLogger(cliconfig.Logger(*cfg, stderr))
			logger.Debug("configuration", ports.Any("config", cfg))
			if len(args) > 0 {
				logger.Debug("ignoring positional arguments",
					ports.Int("count", len(args)),
					ports.String("args", strings.Join(args, " ")))
			}

			in := stdio.OpenInput(stdin, cfg.MMap)
			defer in.Close()

			stats, err := paralogmask.Mask(in, stdout,
				paralogmask.WithChunkSize(cfg.ChunkSize),
				paralogmask.WithLogger(logger),
			)
			if err != nil {
				return err
			}

			logger.Info("run complete",
				ports.Bool("mapped", in.Mapped),
				ports.Int64("chunks", stats.Chunks),
				ports.Int64("lines", stats.Lines),
				ports.Int64("blocks", stats.Blocks),
				ports.Int64("commented", stats.Commented),
				ports.Bool("unclosed", stats.Unclosed),
			)
			return nil
		},
	}

	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", domain.ErrUsage, err)
	})

	root.Flags().StringVar(cfgPath, "config", "", "path to config file (default: $HOME/.paralogmask/config.toml)")
	root.Flags().IntVar(&cfg.ChunkSize, "chunk-size", cfg.ChunkSize, "largest number of bytes read at once; longer lines are read in pieces")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "stderr log level (debug, info, warn, error, disabled)")
	root.Flags().StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "stderr log format (console, json)")
	root.Flags().BoolVar(&cfg.MMap, "mmap", cfg.MMap, "memory-map standard input when it is a regular file")

	return root
}

// loadConfig layers the config file and PARALOGMASK_* variables under the
// flags that were set explicitly, then validates the result.
func loadConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	if cfgFile != "" && (cfgPath != "" || cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidConfig) {
				return err
			}
			return fmt.Errorf("%w: load config: %v", domain.ErrUsage, err)
		}
		cliconfig.ApplyFileConfig(cfg, fc, changed)
	}

	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
