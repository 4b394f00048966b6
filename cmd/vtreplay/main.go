// vtreplay feeds a captured terminal output stream through the vtscreen
// engine and dumps the resulting screen, for debugging emulation behavior
// offline.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/termloom/vtscreen"
)

var (
	cols    int
	rows    int
	chunk   int
	plain   bool
	history bool
	verbose bool
)

func main() {
	root := &cobra.Command{
		Use:   "vtreplay [file]",
		Short: "Replay captured terminal output and print the final screen",
		Long: `vtreplay feeds a byte stream (a file, or stdin when no file is given)
through the vtscreen terminal emulation engine and prints the resulting
grid. Use --chunk to exercise streaming behavior by splitting the input
into small pieces.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	root.Flags().IntVar(&cols, "cols", 80, "screen width in columns")
	root.Flags().IntVar(&rows, "rows", 24, "screen height in rows")
	root.Flags().IntVar(&chunk, "chunk", 0, "feed input in chunks of this many bytes (0 = all at once)")
	root.Flags().BoolVar(&plain, "plain", false, "print plain text instead of ANSI-styled output")
	root.Flags().BoolVar(&history, "history", false, "include scrollback in the dump")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "log ignored sequences to stderr")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var opts []vtscreen.Option
	if verbose {
		logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
		opts = append(opts, vtscreen.WithLogger(logger))
	}

	scr := vtscreen.New(cols, rows, opts...)
	if chunk <= 0 {
		scr.Process(data)
	} else {
		for len(data) > 0 {
			n := chunk
			if n > len(data) {
				n = len(data)
			}
			scr.Process(data[:n])
			data = data[n:]
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case plain:
		for _, row := range dumpLines(scr) {
			fmt.Fprintln(out, vtscreen.LineString(row))
		}
	case history:
		fmt.Fprintln(out, scr.RenderHistory())
	default:
		fmt.Fprintln(out, scr.Render())
	}

	if title := scr.Title(); title != "" {
		fmt.Fprintf(os.Stderr, "title: %s\n", title)
	}
	row, col := scr.CursorPosition()
	fmt.Fprintf(os.Stderr, "cursor: row %d col %d visible %v\n", row, col, scr.CursorVisible())
	return nil
}

func dumpLines(scr *vtscreen.Screen) [][]vtscreen.Cell {
	if history {
		return scr.AllLines()
	}
	return scr.VisibleLines()
}
