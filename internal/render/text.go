package render

import (
	"bufio"
	"fmt"
	"io"
)

// WriteText writes v as plain text, one block per card.
func WriteText(w io.Writer, v View) error {
	bw := bufio.NewWriter(w)
	if v.Message != nil {
		fmt.Fprintf(bw, "[%s] %s\n", v.Message.Kind, v.Message.Text)
		return bw.Flush()
	}
	for i, card := range v.Cards {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintln(bw, card.Title)
		fmt.Fprintln(bw, card.Body)
		fmt.Fprintln(bw, card.FoundedLine())
		for _, example := range card.Examples {
			fmt.Fprintf(bw, "  - %s\n", example)
		}
		if card.Link != nil {
			fmt.Fprintf(bw, "%s: %s\n", card.Link.Text, card.Link.URL)
		}
	}
	return bw.Flush()
}
