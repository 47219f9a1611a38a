package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/gemini"
)

func init() {
	cmd := &cobra.Command{
		Use:   "insight [name or id]",
		Short: "A structured read on the bond with a person",
		Args:  cobra.MinimumNArgs(1),
		Run:   runInsight,
	}

	RootCmd.AddCommand(cmd)
}

func runInsight(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	client := gemini.NewFromEnv(newLogger())
	insight := client.BondInsight(cmd.Context(), *person)
	if insight == nil {
		fmt.Println("{}")
		return
	}

	b, _ := json.MarshalIndent(insight, "", "  ")
	fmt.Println(string(b))
}
