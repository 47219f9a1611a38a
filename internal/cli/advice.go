package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/gemini"
)

func init() {
	cmd := &cobra.Command{
		Use:   "advice [name or id]",
		Short: "Gesture and gift ideas for a person",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdvice,
	}

	RootCmd.AddCommand(cmd)
}

func runAdvice(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	client := gemini.NewFromEnv(newLogger())
	fmt.Println(client.RelationshipAdvice(cmd.Context(), *person))
}
