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
		Use:   "upcoming",
		Short: "Show upcoming occasions",
		Run:   runUpcoming,
	}

	cmd.Flags().IntP("limit", "l", 5, "Max results")

	RootCmd.AddCommand(cmd)
}

func runUpcoming(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	events := view.UpcomingEvents(c.People(), time.Now(), limit)
	if events == nil {
		events = []view.Event{}
	}

	b, _ := json.MarshalIndent(events, "", "  ")
	fmt.Println(string(b))
}
