package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
)

// wordWrap is the terminal width used to render markdown.
const wordWrap = 120

// printMarkdown prints md to stdout, rendered for the terminal unless -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		log.Debug().Err(err).Msg("markdown renderer unavailable, printing raw markdown")
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not render markdown: %v\n", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
