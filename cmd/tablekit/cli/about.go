package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

const aboutMarkdown = `# tablekit

Static, sectioned list screens built from plain data.

- **Contents** hold ordered **sections**
- sections hold ordered **action items**
- a **controller** runs an item's action when its row is selected

Press **enter** to select, **esc** to go back and **/** to filter.
`

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Describe tablekit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := renderMarkdown(aboutMarkdown)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func renderMarkdown(md string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(72),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(md)
}
