package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
	"github.com/kokorohq/kokoro/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update [name or id]",
		Short: "Update a person's fields",
		Long:  "Update a person's fields. Only the flags you pass are changed.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runUpdate,
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("nickname", "", "Nickname")
	cmd.Flags().StringP("relationship", "r", "", "Relationship label")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().Bool("pin", false, "Pin the person")
	cmd.Flags().Bool("unpin", false, "Unpin the person")
	cmd.Flags().Bool("touch", false, "Record an interaction now")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person := resolvePerson(c, args[0])

	var patch circle.Patch
	strFlag := func(name string) *string {
		if !cmd.Flags().Changed(name) {
			return nil
		}
		v, _ := cmd.Flags().GetString(name)
		return &v
	}
	patch.Name = strFlag("name")
	patch.Nickname = strFlag("nickname")
	patch.Relationship = strFlag("relationship")
	patch.Phone = strFlag("phone")
	patch.Email = strFlag("email")
	patch.Address = strFlag("address")
	patch.Notes = strFlag("notes")

	if pin, _ := cmd.Flags().GetBool("pin"); pin {
		t := true
		patch.Pinned = &t
	}
	if unpin, _ := cmd.Flags().GetBool("unpin"); unpin {
		f := false
		patch.Pinned = &f
	}
	if touch, _ := cmd.Flags().GetBool("touch"); touch {
		now := model.Millis(time.Now())
		patch.LastInteraction = &now
	}

	if err := c.UpdatePerson(cmd.Context(), person.ID, patch); err != nil {
		exitErr("update", err)
	}

	b, _ := json.MarshalIndent(c.Find(person.ID), "", "  ")
	fmt.Println(string(b))
}
