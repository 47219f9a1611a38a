package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people in your circle",
		Run:   runList,
	}

	cmd.Flags().Bool("pinned", false, "Only pinned people")
	cmd.Flags().Bool("names-only", false, "Only output names")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	pinnedOnly, _ := cmd.Flags().GetBool("pinned")
	namesOnly, _ := cmd.Flags().GetBool("names-only")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	people := append([]model.Person{}, c.People()...)

	if pinnedOnly {
		var pinned []model.Person
		for _, p := range people {
			if p.Pinned {
				pinned = append(pinned, p)
			}
		}
		people = pinned
	}

	// Pinned first, insertion order within each group.
	sort.SliceStable(people, func(i, j int) bool {
		return people[i].Pinned && !people[j].Pinned
	})

	if namesOnly {
		for _, p := range people {
			fmt.Println(p.Name)
		}
		return
	}

	b, _ := json.MarshalIndent(people, "", "  ")
	fmt.Println(string(b))
}
