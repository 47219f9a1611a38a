package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/view"
)

func init() {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of occasions, bucketed by day",
		Run:   runCalendar,
	}

	now := time.Now()
	cmd.Flags().IntP("month", "m", int(now.Month()), "Month (1-12)")
	cmd.Flags().IntP("year", "y", now.Year(), "Year")

	RootCmd.AddCommand(cmd)
}

func runCalendar(cmd *cobra.Command, args []string) {
	month, _ := cmd.Flags().GetInt("month")
	year, _ := cmd.Flags().GetInt("year")

	if month < 1 || month > 12 {
		exitErr("calendar", fmt.Errorf("month must be 1-12, got %d", month))
	}

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	buckets := view.CalendarBuckets(c.People(), year, time.Month(month))

	b, _ := json.MarshalIndent(buckets, "", "  ")
	fmt.Println(string(b))
}
