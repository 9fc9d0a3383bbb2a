package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/zoo/pkg/types"
)

// dutyResult is the JSON form of a performed duty.
type dutyResult struct {
	Staff   string `json:"staff"`
	Animal  string `json:"animal"`
	Message string `json:"message"`
}

func newFeedCmd(e *env) *cobra.Command {
	return newDutyCmd(e, types.KindZooKeeper, &cobra.Command{
		Use:   "feed <keeper> <animal>",
		Short: "Have a zoo keeper feed an animal",
	})
}

func newHealCmd(e *env) *cobra.Command {
	return newDutyCmd(e, types.KindVeterinarian, &cobra.Command{
		Use:   "heal <veterinarian> <animal>",
		Short: "Have a veterinarian heal an animal",
	})
}

// newDutyCmd completes cmd so that it looks up the named staff member, who
// must be of kind role, and the named animal, then prints the duty.
func newDutyCmd(e *env, role types.StaffKind, cmd *cobra.Command) *cobra.Command {
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = func(cmd *cobra.Command, args []string) (err error) {
		reg, err := e.attach()
		if err != nil {
			return err
		}
		defer detach(reg, &err)

		member, err := findStaff(reg, args[0])
		if err != nil {
			return err
		}
		if member.Kind() != role {
			return userError(fmt.Errorf("%w: %s is a %s, not a %s", errWrongRole, member.Name(), member.Kind(), role))
		}
		animal, err := findAnimal(reg, args[1])
		if err != nil {
			return err
		}

		msg := member.Duty(animal)
		out := cmd.OutOrStdout()
		if e.flags.jsonMode {
			return writeJSON(out, dutyResult{Staff: member.Name(), Animal: animal.Name(), Message: msg})
		}
		fmt.Fprintln(out, msg)
		return nil
	}
	return cmd
}
