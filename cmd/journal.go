package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var journalActionFilter string

var journalCmd = &cobra.Command{
	Use:   "journal <path>",
	Short: "Pretty-print a blight journal file",
	Long: `Pretty-print a blight journal file.

Each line of a journal is one JSON object, keyed by action name, written
by the dispatcher after running record/benchmark/find_inputs/find_outputs
(or any other action that returns a result) for a single tool invocation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("blight: %w", err)
		}
		defer f.Close()
		return printJournal(cmd.OutOrStdout(), f, journalActionFilter)
	},
}

func init() { //nolint:gochecknoinits
	journalCmd.Flags().StringVar(&journalActionFilter, "action", "", "only print entries containing this action's results")
	rootCmd.AddCommand(journalCmd)
}

func printJournal(w io.Writer, r io.Reader, filter string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry map[string]json.RawMessage
		if err := json.Unmarshal(line, &entry); err != nil {
			fmt.Fprintf(w, "%d: invalid journal line: %v\n", lineNo, err)
			continue
		}
		if filter != "" {
			if _, ok := entry[filter]; !ok {
				continue
			}
		}
		pretty, err := json.MarshalIndent(entry, "", "  ")
		if err != nil {
			return fmt.Errorf("blight: %w", err)
		}
		fmt.Fprintf(w, "--- entry %d ---\n%s\n", lineNo, pretty)
	}
	return scanner.Err()
}
