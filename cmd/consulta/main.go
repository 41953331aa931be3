package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
	trace "go.opentelemetry.io/otel/trace"
	zap "go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// HTTP server and client
	HTTP struct {
		Addr    string        `name:"addr" env:"CONSULTA_ADDR" default:"localhost:8084" help:"Server listen address, or the address of the server to call"`
		Prefix  string        `name:"prefix" default:"/api" help:"Path prefix for the API"`
		Origin  string        `name:"origin" default:"" help:"Allowed cross-origin requests, or empty for same-origin only"`
		Timeout time.Duration `name:"timeout" default:"${timeout}" help:"Timeout for outbound requests"`
	} `embed:"" prefix:"http."`

	// Tracing
	OTel struct {
		Endpoint string `name:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OTLP/HTTP endpoint for traces, or empty to disable"`
	} `embed:"" prefix:"otel."`

	// Private fields
	ctx      context.Context
	execName string
	logger   *zap.Logger
	tracer   trace.Tracer
}

type CLI struct {
	Globals
	ServerCommands
	ConsultaCommands
	VersionCommands
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Parse the command line
	cli := new(CLI)
	cmd := kong.Parse(cli,
		kong.Name(execName()),
		kong.Description("Relay queries to the Gemini API over HTTP"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{
			"model":   google.DefaultModel,
			"timeout": google.DefaultTimeout.String(),
		},
	)

	// Create a context which is cancelled on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Logger
	logger, err := newLogger(cli.Debug, cli.Verbose)
	cmd.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()
	cli.Globals.logger = logger

	// Tracer
	tracer, shutdown, err := newTracer(ctx, cli.Globals.execName, cli.OTel.Endpoint)
	cmd.FatalIfErrorf(err)
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown", zap.Error(err))
		}
	}()
	cli.Globals.tracer = tracer

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}

// newLogger logs JSON at info level, or human-readable output at debug level
func newLogger(debug, verbose bool) (*zap.Logger, error) {
	if debug || verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
