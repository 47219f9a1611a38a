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
		Use:   "products [name or id]",
		Short: "Web-grounded gift recommendations for a person",
		Args:  cobra.MinimumNArgs(1),
		Run:   runProducts,
	}

	RootCmd.AddCommand(cmd)
}

func runProducts(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	client := gemini.NewFromEnv(newLogger())
	products := client.ProductRecommendations(cmd.Context(), *person)

	b, _ := json.MarshalIndent(products, "", "  ")
	fmt.Println(string(b))
}
