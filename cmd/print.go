package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown prints markdown on stdout, rendered for the terminal unless plain.
func printMarkdown(md string, plain bool) {
	if plain {
		fmt.Println(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		log.Printf("cannot render markdown, printing it raw: %v", err)
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.Printf("cannot render markdown, printing it raw: %v", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
