package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/zoo/internal/document"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

func newStaffCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Manage zoo staff",
	}
	cmd.AddCommand(newStaffAddCmd(e))
	cmd.AddCommand(newStaffListCmd(e))
	return cmd
}

func newStaffAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <name> <age>",
		Short: "Add a staff member",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			kind, err := parseStaffKind(args[0])
			if err != nil {
				return err
			}
			age, err := parseAge(args[2])
			if err != nil {
				return err
			}
			member, err := types.NewStaff(kind, args[1], age)
			if err != nil {
				return userError(err)
			}

			reg, err := e.attach()
			if err != nil {
				return err
			}
			defer detach(reg, &err)

			if err := reg.AddStaff(member); err != nil {
				return classify(fmt.Errorf("add staff: %w", err))
			}

			out := cmd.OutOrStdout()
			if e.flags.jsonMode {
				return writeStaff(out, []types.Staff{member})
			}
			fmt.Fprintf(out, "Added %s %s\n", member.Kind(), member.Name())
			return nil
		},
	}
}

func newStaffListCmd(e *env) *cobra.Command {
	var kindFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List staff in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var filter types.StaffFilter
			if kindFlag != "" {
				if filter.Kind, err = parseStaffKind(kindFlag); err != nil {
					return err
				}
			}

			reg, err := e.attach()
			if err != nil {
				return err
			}
			defer detach(reg, &err)

			staff, err := reg.StaffMembers(filter)
			if err != nil {
				return classify(err)
			}

			out := cmd.OutOrStdout()
			if e.flags.jsonMode {
				return writeStaff(out, staff)
			}
			for _, s := range staff {
				fmt.Fprintf(out, "%s\t%s\t%d\n", s.Kind(), s.Name(), s.Age())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kindFlag, "kind", "", "only list staff of this kind ("+kindList(types.StaffKinds)+")")
	return cmd
}

func parseStaffKind(s string) (types.StaffKind, error) {
	kind, ok := types.ParseStaffKind(s)
	if !ok {
		return "", userError(fmt.Errorf("%w %q (valid: %s)", types.ErrUnknownKind, s, kindList(types.StaffKinds)))
	}
	return kind, nil
}

func writeStaff(w io.Writer, staff []types.Staff) error {
	if err := document.WriteStaff(w, staff); err != nil {
		return sysError(err)
	}
	return nil
}
