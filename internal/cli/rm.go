package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rm [name or id]",
		Short: "Remove a person from your circle",
		Args:  cobra.MinimumNArgs(1),
		Run:   runRm,
	}

	RootCmd.AddCommand(cmd)
}

func runRm(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	if err := c.DeletePerson(cmd.Context(), person.ID); err != nil {
		exitErr("rm", err)
	}

	fmt.Printf(`{"ok":true,"removed":%q}`+"\n", person.Name)
}
