package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"
	"github.com/storacha/go-bytecodec/core/result/failure"
)

const appName = "bytecodec"

type CLI struct {
	LogLevel  string `help:"Log level (debug, info, warn, error)." default:"info" env:"BYTECODEC_LOG_LEVEL"`
	LogFormat string `help:"Log format." enum:"text,json" default:"text" env:"BYTECODEC_LOG_FORMAT"`

	FromUint FromUintCmd `cmd:"" help:"Encode an unsigned integer as a little-endian byte array."`
	ToUint   ToUintCmd   `cmd:"" help:"Decode a little-endian byte array to an unsigned integer."`
	FromStr  FromStrCmd  `cmd:"" help:"Convert a Latin-1 string to a byte array."`
	ToStr    ToStrCmd    `cmd:"" help:"Convert a byte array to a Latin-1 string."`
	FromHex  FromHexCmd  `cmd:"" help:"Decode a hex string to a byte array."`
	ToHex    ToHexCmd    `cmd:"" help:"Encode a byte array as lowercase hex."`
	Reverse  ReverseCmd  `cmd:"" help:"Reverse a byte array."`
	Hash     HashCmd     `cmd:"" help:"Hash strings or byte arrays."`
	Algs     AlgsCmd     `cmd:"" help:"List supported hash functions."`
}

type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Convert between byte arrays, unsigned integers, hex and strings."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, err := parseLogLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	logger := newLogger(stderr, level, cli.LogFormat)
	logger.Debug("running", "command", ctx.Command())

	if err := ctx.Run(&Context{Out: stdout, Logger: logger}); err != nil {
		var f failure.Failure
		if errors.As(err, &f) {
			if werr := writeFailure(stderr, f); werr != nil {
				fmt.Fprintln(stderr, err)
			}
			if st, ok := f.(failure.WithStackTrace); ok {
				logger.Debug("failure stack", "name", f.Name(), "stack", st.Stack())
			}
		} else {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}
	return 0
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q (allowed: debug, info, warn, error)", s)
	}
}

func newLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == "json" {
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
		return slog.New(h).With("app", appName)
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}
