// Command lineedit-demo is a small REPL exercising the editor end to end:
// history persisted across runs, Tab-completion over a fixed word list, and
// an inline hint completing the first word of that list the line is a
// prefix of.
//
// Flags:
//   - -keycodes: run the key-codes diagnostic mode instead of the REPL.
//   - -multiline: use the multi-line renderer instead of single-line scroll.
//   - -mask: render input as '*' (password entry).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quillline/lineedit/api"
)

var words = []string{"help", "history", "exit", "quit", "clear", "version"}

func completions(line string) []string {
	var out []string
	for _, w := range words {
		if strings.HasPrefix(w, line) && w != line {
			out = append(out, w)
		}
	}
	return out
}

func hints(line string) (string, int, bool) {
	if line == "" {
		return "", 0, false
	}
	for _, w := range words {
		if strings.HasPrefix(w, line) && w != line {
			return w[len(line):], 4, false // blue, not bold
		}
	}
	return "", 0, false
}

func main() {
	keycodes := flag.Bool("keycodes", false, "print decoded key events instead of running the REPL")
	multiline := flag.Bool("multiline", false, "use the multi-line renderer")
	mask := flag.Bool("mask", false, "mask input as '*' (password entry)")
	flag.Parse()

	opts := []api.Option{
		api.WithCompletion(completions),
		api.WithHints(hints),
		api.WithMultiLine(*multiline),
		api.WithMask(*mask),
		api.WithDebugKeyCodes(*keycodes),
	}
	editor := api.New(os.Stdin, os.Stdout, opts...)
	defer editor.Destroy()

	histPath := historyPath()
	if err := editor.LoadHistory(histPath); err != nil {
		fmt.Fprintf(os.Stderr, "lineedit-demo: loading history: %v\n", err)
	}

	if *keycodes {
		if _, err := editor.Read(""); err != nil {
			fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for {
		line, err := editor.Read("lineedit> ")
		if err != nil {
			if err := editor.SaveHistory(histPath); err != nil {
				fmt.Fprintf(os.Stderr, "lineedit-demo: saving history: %v\n", err)
			}
			if err == api.ErrEOF || err == api.ErrInterrupted {
				return
			}
			fmt.Fprintf(os.Stderr, "lineedit-demo: %v\n", err)
			os.Exit(1)
		}

		switch strings.TrimSpace(line) {
		case "exit", "quit":
			_ = editor.SaveHistory(histPath)
			return
		case "":
			continue
		default:
			fmt.Printf("you said: %s\n", line)
		}
	}
}

func historyPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ".lineedit_history"
	}
	return filepath.Join(dir, ".lineedit_history")
}
