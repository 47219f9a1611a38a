package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kokorohq/kokoro/internal/circle"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a person to your circle",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("relationship", "r", "", "Relationship label (default: Friend)")
	cmd.Flags().String("nickname", "", "Nickname")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("address", "", "Postal address")
	cmd.Flags().String("notes", "", "Free-form notes")
	cmd.Flags().Bool("pinned", false, "Pin the person")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	relationship, _ := cmd.Flags().GetString("relationship")
	nickname, _ := cmd.Flags().GetString("nickname")
	phone, _ := cmd.Flags().GetString("phone")
	email, _ := cmd.Flags().GetString("email")
	address, _ := cmd.Flags().GetString("address")
	notes, _ := cmd.Flags().GetString("notes")
	pinned, _ := cmd.Flags().GetBool("pinned")

	c, s, err := openCircle(cmd)
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	person, err := c.CreatePerson(cmd.Context(), circle.CreateParams{
		Name:         strings.Join(args, " "),
		Nickname:     nickname,
		Relationship: relationship,
		Phone:        phone,
		Email:        email,
		Address:      address,
		Notes:        notes,
		Pinned:       pinned,
	})
	if err != nil {
		exitErr("add", err)
	}

	b, _ := json.Marshal(person)
	fmt.Println(string(b))
}
