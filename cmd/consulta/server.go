package main

import (
	"crypto/tls"
	"fmt"
	"os"

	// Packages
	httphandler "github.com/mutablelogic/go-consulta/pkg/httphandler"
	manager "github.com/mutablelogic/go-consulta/pkg/manager"
	version "github.com/mutablelogic/go-consulta/pkg/version"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	httpserver "github.com/mutablelogic/go-server/pkg/httpserver"
	openapihttphandler "github.com/mutablelogic/go-server/pkg/openapi/httphandler"
	zap "go.uber.org/zap"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type ServerCommands struct {
	RunServer RunServer `cmd:"" name:"run" help:"Run server." group:"SERVER"`
}

type RunServer struct {
	GeminiFlags `embed:""`
	OpenAPI     bool `name:"openapi" default:"true" negatable:"" help:"Serve the OpenAPI document under the path prefix"`

	// TLS server options
	TLS struct {
		ServerName string `name:"name" help:"TLS server name"`
		CertFile   string `name:"cert" type:"existingfile" help:"TLS certificate file"`
		KeyFile    string `name:"key" type:"existingfile" help:"TLS key file"`
	} `embed:"" prefix:"tls."`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunServer) Run(ctx *Globals) error {
	manager, err := cmd.Manager(ctx)
	if err != nil {
		return err
	}
	return cmd.Serve(ctx, manager, version.Version())
}

// Serve registers the handlers and blocks until the context is cancelled
func (cmd *RunServer) Serve(ctx *Globals, manager *manager.Manager, versionTag string) error {
	tlsConfig, err := cmd.tlsConfig()
	if err != nil {
		return err
	}

	// Create the server
	srv, err := httpserver.New(ctx.HTTP.Addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("httpserver: %w", err)
	}

	// Create the router, which logs every request it serves
	middleware := []httprouter.HTTPMiddlewareFunc{
		httphandler.LogMiddleware(ctx.logger),
	}
	router, err := httprouter.NewRouter(ctx.ctx, srv.Router(), ctx.HTTP.Prefix, ctx.HTTP.Origin, "Consulta Server", versionTag, middleware...)
	if err != nil {
		return fmt.Errorf("router: %w", err)
	}

	// Register the handlers, the OpenAPI document and catch-all 404 handlers
	if err := httphandler.RegisterHandlers(manager, router); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if cmd.OpenAPI {
		if err := openapihttphandler.RegisterHandler(router); err != nil {
			return fmt.Errorf("openapi: %w", err)
		}
	}
	for _, path := range []string{"/", router.Prefix()} {
		if err := router.RegisterCatchAll(path, false); err != nil {
			return fmt.Errorf("catchall: %w", err)
		}
	}

	// Bind to the address before reporting that the server has started
	if err := srv.Listen(); err != nil {
		return err
	}

	// Run the server
	ctx.logger.Info("started", zap.String("name", ctx.execName), zap.String("version", versionTag), zap.String("addr", srv.Addr()), zap.String("model", cmd.Model))
	if err := srv.Run(ctx.ctx); err != nil {
		return err
	}

	// Return success
	ctx.logger.Info("stopped", zap.String("name", ctx.execName), zap.String("version", versionTag))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// tlsConfig returns nil when no certificate or key is set
func (cmd *RunServer) tlsConfig() (*tls.Config, error) {
	if cmd.TLS.CertFile == "" && cmd.TLS.KeyFile == "" {
		return nil, nil
	}
	var pemData [][]byte
	for _, path := range []string{cmd.TLS.CertFile, cmd.TLS.KeyFile} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %w", path, err)
		}
		pemData = append(pemData, data)
	}
	tlsConfig, err := httpserver.TLSConfig(cmd.TLS.ServerName, false, pemData...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TLS config: %w", err)
	}
	return tlsConfig, nil
}
