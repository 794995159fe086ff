package cmd

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

//go:embed actions_registry.yaml
var actionsRegistryYAML []byte

type actionMeta struct {
	Name        string   `yaml:"name"`
	Kinds       []string `yaml:"kinds"`
	Description string   `yaml:"description"`
}

func loadActionsRegistry() ([]actionMeta, error) {
	var metas []actionMeta
	dec := yaml.NewDecoder(strings.NewReader(string(actionsRegistryYAML)))
	dec.KnownFields(true)
	if err := dec.Decode(&metas); err != nil {
		return nil, fmt.Errorf("blight: embedded action registry: %w", err)
	}
	return metas, nil
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List blight's built-in actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		metas, err := loadActionsRegistry()
		if err != nil {
			return err
		}
		printActionsTable(cmd.OutOrStdout(), metas)
		return nil
	},
}

func init() { //nolint:gochecknoinits
	rootCmd.AddCommand(actionsCmd)
}

func printActionsTable(w io.Writer, metas []actionMeta) {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	nameWidth := 0
	for _, m := range metas {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}
	for _, m := range metas {
		kinds := strings.Join(m.Kinds, ",")
		if isTTY {
			fmt.Fprintf(w, "%-*s  %-28s  %s\n", nameWidth, m.Name, kinds, m.Description)
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, kinds, m.Description)
		}
	}
}
