package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "theme [name]",
		Short: "Get or set the UI theme",
		Long:  "Get or set the UI theme. Themes: earthy, pastel, dark, bay.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runTheme,
	}

	RootCmd.AddCommand(cmd)
}

func runTheme(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	if len(args) == 0 {
		fmt.Println(s.LoadTheme(cmd.Context()))
		return
	}

	if err := s.SaveTheme(cmd.Context(), args[0]); err != nil {
		exitErr("theme", err)
	}
	fmt.Printf(`{"ok":true,"theme":%q}`+"\n", args[0])
}
