package main

import (
	"fmt"
	"os"

	// Packages
	table "github.com/mutablelogic/go-consulta/pkg/ui/table"
	version "github.com/mutablelogic/go-consulta/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommands struct {
	Version VersionCommand `cmd:"" name:"version" help:"Print version information." group:"MISC"`
}

type VersionCommand struct {
	JSON bool `name:"json" help:"Print as JSON"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	if cmd.JSON {
		_, err := fmt.Fprintln(os.Stdout, string(version.JSON(ctx.execName)))
		return err
	}
	_, err := fmt.Fprintln(os.Stdout, table.Render(version.Info(ctx.execName)))
	return err
}
