package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

// topicColumnWidth is the display width of the Topic column.
const topicColumnWidth = 30

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List catalog topics with their question counts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadActiveCatalog(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%4s  %s  %9s\n", "ID", padCell("Topic", topicColumnWidth), "Questions")
		fmt.Fprintln(out, strings.Repeat("─", 47))
		for _, t := range cat.Topics() {
			fmt.Fprintf(out, "%4d  %s  %9d\n", t.ID, padCell(t.Name, topicColumnWidth), len(cat.QuestionsForTopic(t.ID)))
		}

		topics, questions := cat.Len()
		fmt.Fprintf(out, "\n%d topics, %d questions\n", topics, questions)
		return nil
	},
}

// padCell fits s into width terminal columns, truncating wide text with an
// ellipsis. CJK runes count as two columns.
func padCell(s string, width int) string {
	s = ansi.Truncate(s, width, "...")
	return s + strings.Repeat(" ", max(width-ansi.StringWidth(s), 0))
}
