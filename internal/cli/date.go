package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
	"github.com/kokorohq/kokoro/internal/model"
)

// TypicalOccasions are common labels offered in help text.
var TypicalOccasions = []string{
	"Birthday", "Anniversary", "Valentine's Day", "Christmas",
	"Mother's Day", "Father's Day", "Graduation", "Milestone", "Housewarming",
}

func init() {
	dateCmd := &cobra.Command{
		Use:   "date",
		Short: "Manage a person's important dates",
	}

	addCmd := &cobra.Command{
		Use:   "add [name or id]",
		Short: "Add an important date",
		Long:  "Add an important date. Typical labels: " + strings.Join(TypicalOccasions, ", ") + ".",
		Args:  cobra.MinimumNArgs(1),
		Run:   runDateAdd,
	}
	addCmd.Flags().StringP("label", "l", "Special Occasion", "Occasion label")
	addCmd.Flags().String("date", "", "Calendar date, YYYY-MM-DD (default: today)")
	addCmd.Flags().Bool("once", false, "Non-recurring occasion")
	addCmd.Flags().Int("lead", 7, "Reminder lead time in days")
	addCmd.Flags().String("notes", "", "Notes")

	rmCmd := &cobra.Command{
		Use:   "rm [name or id] [date id]",
		Short: "Remove an important date",
		Args:  cobra.ExactArgs(2),
		Run:   runDateRm,
	}

	statusCmd := &cobra.Command{
		Use:   "status [name or id] [date id] [PLANNED|ORDERED|SENT|DELETED]",
		Short: "Set a date's status",
		Args:  cobra.ExactArgs(3),
		Run:   runDateStatus,
	}

	dateCmd.AddCommand(addCmd, rmCmd, statusCmd)
	RootCmd.AddCommand(dateCmd)
}

func runDateAdd(cmd *cobra.Command, args []string) {
	label, _ := cmd.Flags().GetString("label")
	date, _ := cmd.Flags().GetString("date")
	once, _ := cmd.Flags().GetBool("once")
	lead, _ := cmd.Flags().GetInt("lead")
	notes, _ := cmd.Flags().GetString("notes")

	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, strings.Join(args, " "))

	d, err := c.AddDate(cmd.Context(), person.ID, circle.DateParams{
		Label:     label,
		Date:      date,
		Recurring: !once,
		LeadDays:  lead,
		Notes:     notes,
	})
	if err != nil {
		exitErr("date add", err)
	}

	b, _ := json.Marshal(d)
	fmt.Println(string(b))
}

func runDateRm(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, args[0])

	var dates []model.ImportantDate
	found := false
	for _, d := range person.Dates {
		if d.ID == args[1] {
			found = true
			continue
		}
		dates = append(dates, d)
	}
	if !found {
		exitErr("date rm", fmt.Errorf("no date %q on %s", args[1], person.Name))
	}
	if dates == nil {
		dates = []model.ImportantDate{}
	}

	if err := c.UpdatePerson(cmd.Context(), person.ID, circle.Patch{Dates: &dates}); err != nil {
		exitErr("date rm", err)
	}

	fmt.Printf(`{"ok":true,"removed":%q}`+"\n", args[1])
}

func runDateStatus(cmd *cobra.Command, args []string) {
	status := model.CardStatus(strings.ToUpper(args[2]))
	if !model.ValidStatuses[status] {
		exitErr("date status", fmt.Errorf("unknown status %q", args[2]))
	}

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, args[0])

	dates := append([]model.ImportantDate{}, person.Dates...)
	found := false
	for i := range dates {
		if dates[i].ID == args[1] {
			dates[i].Status = status
			found = true
			break
		}
	}
	if !found {
		exitErr("date status", fmt.Errorf("no date %q on %s", args[1], person.Name))
	}

	if err := c.UpdatePerson(cmd.Context(), person.ID, circle.Patch{Dates: &dates}); err != nil {
		exitErr("date status", err)
	}

	fmt.Printf(`{"ok":true,"status":%q}`+"\n", status)
}
