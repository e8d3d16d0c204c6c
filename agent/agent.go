// Package agent provides an interactive market analyst on top of the Gemini
// API, seeded with the day's watchlist report.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const prompt = "analyst> "

// Run starts an interactive session with the analyst about the given
// rendered report. It returns on EOF or when the user types 'bye'.
func Run(ctx context.Context, client *genai.Client, report string, w io.Writer, r io.Reader) error {
	analyst, err := NewAnalyst(ctx, client, report)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Ask the analyst about today's report. Type 'bye' to exit.")
	in := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		input, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, answer)
	}
}
