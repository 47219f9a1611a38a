package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
	"github.com/kokorohq/kokoro/internal/gemini"
	"github.com/kokorohq/kokoro/internal/view"
)

func init() {
	cmd := &cobra.Command{
		Use:   "occasions [name or id]",
		Short: "Suggest annual occasions worth tracking",
		Long:  "Ask the assistant for annual occasions worth tracking for a person. Use --add N to schedule suggestion N (1-based) at its next occurrence.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runOccasions,
	}

	cmd.Flags().Int("add", 0, "Schedule suggestion N as a recurring date")

	RootCmd.AddCommand(cmd)
}

func runOccasions(cmd *cobra.Command, args []string) {
	addIdx, _ := cmd.Flags().GetInt("add")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	client := gemini.NewFromEnv(newLogger())
	suggestions := client.SuggestOccasions(cmd.Context(), *person)

	if addIdx > 0 {
		if addIdx > len(suggestions) {
			exitErr("occasions", fmt.Errorf("no suggestion %d (got %d)", addIdx, len(suggestions)))
		}
		sg := suggestions[addIdx-1]
		month, day, err := parseMonthDay(sg.Date)
		if err != nil {
			exitErr("occasions", err)
		}
		d, err := c.AddDate(cmd.Context(), person.ID, circle.DateParams{
			Label:     sg.Label,
			Date:      view.NextOccurrenceString(time.Now(), month, day),
			Recurring: true,
			LeadDays:  7,
		})
		if err != nil {
			exitErr("occasions", err)
		}
		b, _ := json.Marshal(d)
		fmt.Println(string(b))
		return
	}

	b, _ := json.MarshalIndent(suggestions, "", "  ")
	fmt.Println(string(b))
}

// parseMonthDay parses the assistant's MM-DD date form.
func parseMonthDay(s string) (time.Month, int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad MM-DD date %q", s)
	}
	m, err1 := strconv.Atoi(parts[0])
	d, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, fmt.Errorf("bad MM-DD date %q", s)
	}
	return time.Month(m), d, nil
}
