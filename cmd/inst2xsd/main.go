package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"

	"github.com/jacoelho/inst2xsd"
	xsderrors "github.com/jacoelho/inst2xsd/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("inst2xsd", flag.ContinueOnError)
	fs.SetOutput(stderr)
	flags := defaultSettings()
	flags.bind(fs)
	configPath := fs.String("config", "", "YAML file with default settings; flags override it")
	verbose := fs.Bool("v", false, "log progress to stderr")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s [options] <instance.xml>...\n\n", fs.Name()),
			writeln(stderr, "Infers XML Schema documents from sample instance documents."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		if err := writeln(stderr, "error: at least one XML file argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	s := flags
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			_ = writef(stderr, "error: %v\n", err)
			return 2
		}
		s = loaded
		s.override(fs, flags)
	}
	opts, err := s.options()
	if err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 2
	}
	if *verbose {
		opts = opts.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			_ = writef(stderr, "error starting CPU profile: %v\n", err)
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	res, err := inst2xsd.InferFiles(ctx, paths, opts)
	if err != nil {
		if diags, ok := xsderrors.AsDiagnostics(err); ok {
			for _, d := range diags {
				_ = writeln(stderr, d.Error())
			}
		}
		_ = writef(stderr, "error inferring schemas: %v\n", err)
		return 1
	}
	if err := res.WriteDir(s.OutDir); err != nil {
		_ = writef(stderr, "error: %v\n", err)
		return 1
	}

	var revalidation []xsderrors.Diagnostic
	if s.Verify {
		if err := res.Verify(); err != nil {
			diags, ok := xsderrors.AsDiagnostics(err)
			if !ok {
				_ = writef(stderr, "error verifying: %v\n", err)
				return 1
			}
			revalidation = diags
		}
	}

	rep := newReport(s, res, revalidation)
	if s.Report == "json" {
		err = rep.writeJSON(stdout)
	} else {
		err = rep.writeText(stdout, stderr)
	}
	if err != nil {
		return 1
	}
	if len(revalidation) > 0 {
		return 1
	}
	return 0
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
