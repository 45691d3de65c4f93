package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/insomniacslk/autowrap/pkg/autowrap"
	"github.com/insomniacslk/autowrap/pkg/config"
	"github.com/insomniacslk/autowrap/pkg/subtitle"

	"github.com/coredhcp/coredhcp/logger"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

// Version information. Will be populated with the git revision and branch
// information when running `make`.
var (
	ProgramName        = "autowrap"
	Version     string = "unknown (please build with `make`)"
)

var (
	flagConfig  = flag.StringP("config", "c", "", "Path to a TOML configuration file")
	flagMaxCPL  = flag.IntP("max-cpl", "w", config.DefaultMaxCharactersPerLine, "Maximum number of characters per line. Overrides the configuration file")
	flagMode    = flag.StringP("mode", "m", config.DefaultMode.String(), fmt.Sprintf("Wrap mode. One of %v. Overrides the configuration file", autowrap.ModeNames()))
	flagFormat  = flag.StringP("format", "f", "", "Input format, 'srt' or 'text'. If unspecified, it is guessed from the file extension")
	flagSelect  = flag.StringP("select", "s", "", "Cues or paragraphs to wrap, e.g. '1,3-5'. If unspecified, wrap everything")
	flagOutput  = flag.StringP("output", "o", "", "Write the result to this file instead of stdout")
	flagInPlace = flag.BoolP("in-place", "i", false, "Overwrite the input file with the result")
	flagWorkers = flag.IntP("workers", "j", 0, "Number of blocks wrapped concurrently. If 0, use one per CPU. Overrides the configuration file")
	logLevel    = flag.StringP("loglevel", "L", "info", fmt.Sprintf("Log level. One of %v", getLogLevels()))
	flagVersion = flag.BoolP("version", "v", false, "Print version and exit")
)

var log = logger.GetLogger("main")

var logLevels = map[string]func(*logrus.Logger){
	"none":    func(l *logrus.Logger) { l.SetOutput(io.Discard) },
	"debug":   func(l *logrus.Logger) { l.SetLevel(logrus.DebugLevel) },
	"info":    func(l *logrus.Logger) { l.SetLevel(logrus.InfoLevel) },
	"warning": func(l *logrus.Logger) { l.SetLevel(logrus.WarnLevel) },
	"error":   func(l *logrus.Logger) { l.SetLevel(logrus.ErrorLevel) },
	"fatal":   func(l *logrus.Logger) { l.SetLevel(logrus.FatalLevel) },
}

func getLogLevels() []string {
	var levels []string
	for k := range logLevels {
		levels = append(levels, k)
	}
	return levels
}

func usage() {
	fmt.Fprintf(os.Stderr, "%s: reflow subtitle or paragraph text into lines of limited length.\n\n", ProgramName)
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] [file]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "If no file is specified, the text is read from stdin.\n\n")
	flag.PrintDefaults()
}

// loadConfig reads the configuration file and applies the command line
// overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		return nil, err
	}
	if flag.CommandLine.Changed("max-cpl") {
		cfg.Timing.MaxCharactersPerLine = *flagMaxCPL
	}
	if flag.CommandLine.Changed("mode") {
		mode, err := autowrap.ParseMode(*flagMode)
		if err != nil {
			return nil, err
		}
		cfg.Wrap.Mode = mode
	}
	if flag.CommandLine.Changed("workers") {
		cfg.Wrap.Workers = *flagWorkers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func inputFormat(path string) (subtitle.Format, error) {
	if *flagFormat != "" {
		return subtitle.ParseFormat(*flagFormat)
	}
	return subtitle.FormatFromPath(path), nil
}

// writeOutput writes the document to path, or to stdout if path is empty.
// Files are written to a temporary file in the same directory first and
// renamed into place, keeping the permissions of the file being replaced.
func writeOutput(doc *subtitle.Document, path string) error {
	if path == "" {
		return doc.Write(os.Stdout)
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(path); err == nil {
		mode = fi.Mode().Perm()
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	fd, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := fd.Name()
	if err := doc.Write(fd); err != nil {
		fd.Close()
		os.Remove(tmp)
		return err
	}
	if err := fd.Chmod(mode); err != nil {
		fd.Close()
		os.Remove(tmp)
		return err
	}
	if err := fd.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if *flagVersion {
		fmt.Printf("%s version %s\n", ProgramName, Version)
		os.Exit(0)
	}

	fn, ok := logLevels[*logLevel]
	if !ok {
		log.Fatalf("Invalid log level '%s'. Valid log levels are %v", *logLevel, getLogLevels())
	}
	fn(log.Logger)
	log.Debugf("Setting log level to '%s'", *logLevel)

	if flag.NArg() > 1 {
		usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)
	if inputPath == "" && term.IsTerminal(int(os.Stdin.Fd())) {
		// nothing is piped in, there is nothing to wrap
		usage()
		os.Exit(1)
	}
	outputPath := *flagOutput
	if *flagInPlace {
		if inputPath == "" || outputPath != "" {
			log.Fatalf("--in-place requires an input file and cannot be used with --output")
		}
		outputPath = inputPath
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	format, err := inputFormat(inputPath)
	if err != nil {
		log.Fatal(err)
	}
	sel, err := subtitle.ParseSelection(*flagSelect)
	if err != nil {
		log.Fatal(err)
	}

	in, err := openInput(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	doc, err := subtitle.Parse(in, format)
	in.Close()
	if err != nil {
		log.Fatalf("Failed to parse input: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	n, err := doc.Wrap(ctx, sel, cfg.Options())
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Wrapped %d blocks into lines of at most %d characters (mode %s)", n, cfg.Timing.MaxCharactersPerLine, cfg.Wrap.Mode)

	if err := writeOutput(doc, outputPath); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}
