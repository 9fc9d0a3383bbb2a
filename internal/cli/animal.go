package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/zoo/internal/document"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// attributeParsers turn the command-line attribute into the variant's own
// attribute.
var attributeParsers = map[types.AnimalKind]func(string) (types.Attributes, error){
	types.KindBird: func(s string) (types.Attributes, error) {
		span, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return types.Attributes{}, fmt.Errorf("wing span %q is not a number", s)
		}
		attrs := types.Attributes{WingSpan: &span}
		if err := types.ValidateAttributes(attrs); err != nil {
			return types.Attributes{}, err
		}
		return attrs, nil
	},
	types.KindMammal: func(s string) (types.Attributes, error) {
		return types.Attributes{FurColor: &s}, nil
	},
	types.KindReptile: func(s string) (types.Attributes, error) {
		return types.Attributes{ScaleType: &s}, nil
	},
}

func newAnimalCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "animal",
		Short: "Manage animals",
	}
	cmd.AddCommand(newAnimalAddCmd(e))
	cmd.AddCommand(newAnimalListCmd(e))
	return cmd
}

func newAnimalAddCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <name> <age> <attribute>",
		Short: "Add an animal",
		Long: "Add an animal. The attribute is the wing span of a Bird, the fur color\n" +
			"of a Mammal or the scale type of a Reptile.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			kind, err := parseAnimalKind(args[0])
			if err != nil {
				return err
			}
			age, err := parseAge(args[2])
			if err != nil {
				return err
			}
			attrs, err := attributeParsers[kind](args[3])
			if err != nil {
				return userError(err)
			}
			animal, err := types.NewAnimal(kind, args[1], age, attrs)
			if err != nil {
				return userError(err)
			}

			reg, err := e.attach()
			if err != nil {
				return err
			}
			defer detach(reg, &err)

			if err := reg.AddAnimal(animal); err != nil {
				return classify(fmt.Errorf("add animal: %w", err))
			}

			out := cmd.OutOrStdout()
			if e.flags.jsonMode {
				return writeAnimals(out, []types.Animal{animal})
			}
			fmt.Fprintf(out, "Added %s %s\n", animal.Kind(), animal.Name())
			return nil
		},
	}
}

func newAnimalListCmd(e *env) *cobra.Command {
	var kindFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals in insertion order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			var filter types.AnimalFilter
			if kindFlag != "" {
				if filter.Kind, err = parseAnimalKind(kindFlag); err != nil {
					return err
				}
			}

			reg, err := e.attach()
			if err != nil {
				return err
			}
			defer detach(reg, &err)

			animals, err := reg.Animals(filter)
			if err != nil {
				return classify(err)
			}

			out := cmd.OutOrStdout()
			if e.flags.jsonMode {
				return writeAnimals(out, animals)
			}
			for _, a := range animals {
				fmt.Fprintf(out, "%s\t%s\t%d\t%s\n", a.Kind(), a.Name(), a.Age(), describeAttributes(a.Attributes()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kindFlag, "kind", "", "only list animals of this kind ("+kindList(types.AnimalKinds)+")")
	return cmd
}

func parseAnimalKind(s string) (types.AnimalKind, error) {
	kind, ok := types.ParseAnimalKind(s)
	if !ok {
		return "", userError(fmt.Errorf("%w %q (valid: %s)", types.ErrUnknownKind, s, kindList(types.AnimalKinds)))
	}
	return kind, nil
}

func writeAnimals(w io.Writer, animals []types.Animal) error {
	if err := document.WriteAnimals(w, animals); err != nil {
		return sysError(err)
	}
	return nil
}

// describeAttributes renders the attribute that is set as key=value.
func describeAttributes(attrs types.Attributes) string {
	switch {
	case attrs.WingSpan != nil:
		return "wing_span=" + strconv.FormatFloat(*attrs.WingSpan, 'g', -1, 64)
	case attrs.FurColor != nil:
		return "fur_color=" + *attrs.FurColor
	case attrs.ScaleType != nil:
		return "scale_type=" + *attrs.ScaleType
	default:
		return ""
	}
}
