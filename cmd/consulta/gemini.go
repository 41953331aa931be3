package main

import (
	// Packages
	consulta "github.com/mutablelogic/go-consulta"
	config "github.com/mutablelogic/go-consulta/pkg/config"
	manager "github.com/mutablelogic/go-consulta/pkg/manager"
	google "github.com/mutablelogic/go-consulta/pkg/provider/google"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// GeminiFlags configure the upstream model and where its key comes from
type GeminiFlags struct {
	Config       string `name:"config" type:"path" default:"config.yaml" help:"YAML file with the Gemini apiKey, read on every request"`
	GeminiAPIKey string `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Google Gemini API key, used instead of the configuration file"`
	Model        string `name:"model" default:"${model}" help:"Gemini model name"`
	Endpoint     string `name:"endpoint" help:"Gemini API endpoint, when not the public API"`
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Manager returns a manager configured from the flags and globals
func (f *GeminiFlags) Manager(ctx *Globals) (*manager.Manager, error) {
	// Key source
	var keys consulta.KeySource
	if f.GeminiAPIKey != "" {
		keys = config.NewStatic(f.GeminiAPIKey)
	} else {
		keys = config.NewFile(f.Config)
	}

	// Upstream client options
	clientOpts := []google.Opt{google.WithModel(f.Model)}
	if f.Endpoint != "" {
		clientOpts = append(clientOpts, google.WithEndpoint(f.Endpoint))
	}
	if ctx.HTTP.Timeout > 0 {
		clientOpts = append(clientOpts, google.WithTimeout(ctx.HTTP.Timeout))
	}

	// Create the manager
	opts := []manager.Opt{
		manager.WithKeySource(keys),
		manager.WithClientOpts(clientOpts...),
		manager.WithLogger(ctx.logger),
		manager.WithTracer(ctx.tracer),
	}
	if ctx.HTTP.Timeout > 0 {
		opts = append(opts, manager.WithTimeout(ctx.HTTP.Timeout))
	}
	return manager.New(opts...)
}
