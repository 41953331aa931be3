package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	schema "github.com/mutablelogic/go-consulta/pkg/schema"
	wordwrap "github.com/muesli/reflow/wordwrap"
	termenv "github.com/muesli/termenv"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultWidth = 80
	maxWidth     = 120
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// writeResponse prints the reply as JSON, as markdown on a terminal, or as
// wrapped plain text otherwise
func writeResponse(w io.Writer, response *schema.ConsultaResponse, asJSON bool) error {
	if asJSON {
		data, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// Plain text unless writing to a terminal
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := fmt.Fprintln(w, wrapText(response.Mensaje, defaultWidth))
		return err
	}

	// Markdown sized to the terminal
	width := defaultWidth
	if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
		width = min(tw, maxWidth)
	}
	text, err := renderMarkdown(response.Mensaje, width, stylePath())
	if err != nil {
		text = wrapText(response.Mensaje, width)
	}
	_, err = fmt.Fprint(w, text)
	return err
}

func wrapText(text string, width int) string {
	return strings.TrimRight(wordwrap.String(text, width), "\n")
}

func renderMarkdown(text string, width int, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(text)
}

func stylePath() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
