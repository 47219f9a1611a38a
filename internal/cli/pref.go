package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
	"github.com/kokorohq/kokoro/internal/model"
)

func init() {
	prefCmd := &cobra.Command{
		Use:   "pref",
		Short: "Manage a person's preferences and nuances",
	}

	addCmd := &cobra.Command{
		Use:   "add [name or id] [content]",
		Short: "Add a preference",
		Args:  cobra.MinimumNArgs(2),
		Run:   runPrefAdd,
	}
	addCmd.Flags().StringP("category", "c", "fact", "Category: like, dislike, fact, ritual")

	rmCmd := &cobra.Command{
		Use:   "rm [name or id] [pref id]",
		Short: "Remove a preference",
		Args:  cobra.ExactArgs(2),
		Run:   runPrefRm,
	}

	prefCmd.AddCommand(addCmd, rmCmd)
	RootCmd.AddCommand(prefCmd)
}

func runPrefAdd(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, args[0])

	pref, err := c.AddPreference(cmd.Context(), person.ID, circle.PreferenceParams{
		Category: category,
		Content:  strings.Join(args[1:], " "),
	})
	if err != nil {
		exitErr("pref add", err)
	}

	b, _ := json.Marshal(pref)
	fmt.Println(string(b))
}

func runPrefRm(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, args[0])

	var prefs []model.Preference
	found := false
	for _, p := range person.Preferences {
		if p.ID == args[1] {
			found = true
			continue
		}
		prefs = append(prefs, p)
	}
	if !found {
		exitErr("pref rm", fmt.Errorf("no preference %q on %s", args[1], person.Name))
	}
	if prefs == nil {
		prefs = []model.Preference{}
	}

	if err := c.UpdatePerson(cmd.Context(), person.ID, circle.Patch{Preferences: &prefs}); err != nil {
		exitErr("pref rm", err)
	}

	fmt.Printf(`{"ok":true,"removed":%q}`+"\n", args[1])
}
