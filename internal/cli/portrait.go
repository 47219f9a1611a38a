package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/gemini"
)

func init() {
	cmd := &cobra.Command{
		Use:   "portrait [name or id]",
		Short: "Generate an abstract soul portrait as a PNG",
		Args:  cobra.MinimumNArgs(1),
		Run:   runPortrait,
	}

	cmd.Flags().StringP("out", "o", "", "Output file (default: <name>_portrait.png)")

	RootCmd.AddCommand(cmd)
}

func runPortrait(cmd *cobra.Command, args []string) {
	out, _ := cmd.Flags().GetString("out")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	client := gemini.NewFromEnv(newLogger())
	img := client.SoulPortrait(cmd.Context(), *person)
	if img == nil {
		exitErr("portrait", fmt.Errorf("no portrait could be generated right now"))
	}

	if out == "" {
		out = strings.ToLower(strings.ReplaceAll(person.Name, " ", "_")) + "_portrait.png"
	}
	if err := os.WriteFile(out, img, 0o644); err != nil {
		exitErr("portrait", err)
	}

	fmt.Printf(`{"ok":true,"file":%q}`+"\n", out)
}
