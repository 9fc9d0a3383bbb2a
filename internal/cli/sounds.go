package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/zoo/internal/demo"
	"github.com/mesh-intelligence/zoo/internal/sound"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

func newSoundsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "sounds",
		Short: "Make every animal in the zoo sound off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			player, err := e.player()
			if err != nil {
				return err
			}

			reg, err := e.attach()
			if err != nil {
				return err
			}
			defer detach(reg, &err)

			animals, err := reg.Animals(types.AnimalFilter{})
			if err != nil {
				return classify(err)
			}
			if err := demo.Chorus(cmd.OutOrStdout(), animals, player, e.logger); err != nil {
				return sysError(err)
			}
			return nil
		},
	}
}

// player builds the configured sound player.
func (e *env) player() (types.SoundPlayer, error) {
	p, err := sound.New(soundConfig(e.cfg), e.logger)
	if err != nil {
		return nil, userError(fmt.Errorf("sound player: %w", err))
	}
	return p, nil
}
