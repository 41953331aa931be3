package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	uuid "github.com/google/uuid"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	consulta "github.com/mutablelogic/go-consulta"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ConsultaCommands struct {
	Ask      AskCommand      `cmd:"" name:"ask" help:"Send a query to a running server." group:"CONSULTA"`
	Generate GenerateCommand `cmd:"" name:"generate" help:"Send a query to the model without a server." group:"CONSULTA"`
}

type QueryFlags struct {
	Text []string `arg:"" optional:"" help:"Query text, read from standard input when omitted"`
	JSON bool     `name:"json" help:"Print the response as JSON"`
}

type AskCommand struct {
	QueryFlags `embed:""`
}

type GenerateCommand struct {
	QueryFlags  `embed:""`
	GeminiFlags `embed:""`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *AskCommand) Run(ctx *Globals) (err error) {
	text, err := cmd.Query(os.Stdin)
	if err != nil {
		return err
	}
	client, err := ctx.Client()
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "AskCommand")
	defer func() { endSpan(err) }()

	// Send request
	response, err := client.Consulta(parent, text)
	if err != nil {
		return err
	}
	return writeResponse(os.Stdout, response, cmd.JSON)
}

func (cmd *GenerateCommand) Run(ctx *Globals) (err error) {
	text, err := cmd.Query(os.Stdin)
	if err != nil {
		return err
	}
	manager, err := cmd.Manager(ctx)
	if err != nil {
		return err
	}

	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, consulta.WithRequestID(ctx.ctx, uuid.NewString()), "GenerateCommand")
	defer func() { endSpan(err) }()

	// Call the model
	response, err := manager.Consulta(parent, schema.ConsultaRequest{Consulta: text})
	if err != nil {
		// Show the upstream reply when debugging
		if ctx.Debug {
			writeUpstreamBody(os.Stderr, err)
		}
		return err
	}
	return writeResponse(os.Stdout, response, cmd.JSON)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Query returns the arguments joined by spaces, or standard input when there
// are no arguments and it is not a terminal
func (cmd *QueryFlags) Query(stdin *os.File) (string, error) {
	if len(cmd.Text) > 0 {
		return strings.Join(cmd.Text, " "), nil
	}
	if term.IsTerminal(int(stdin.Fd())) {
		return "", consulta.ErrInvalidInput.With("missing query text")
	}
	return readQuery(stdin)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func readQuery(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", consulta.ErrInvalidInput.With("missing query text")
	}
	return text, nil
}

// writeUpstreamBody writes the upstream reply carried by err, if there is one
func writeUpstreamBody(w io.Writer, err error) {
	var uerr *consulta.UpstreamError
	if errors.As(err, &uerr) && len(uerr.Body) > 0 {
		fmt.Fprintln(w, string(uerr.Body))
	}
}
