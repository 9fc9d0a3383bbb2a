// Package demo runs the sample zoo walkthrough: sounds, a save and reload
// through the document format, the staff roster and their daily duties.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/zoo/internal/document"
	"github.com/mesh-intelligence/zoo/pkg/types"
)

// Sample holds the sample zoo together with direct handles to its members.
type Sample struct {
	Zoo *types.Zoo

	Parrot *types.Bird
	Lion   *types.Mammal
	Snake  *types.Reptile

	Keepers [2]*types.ZooKeeper
	Vets    [2]*types.Veterinarian
}

// NewSample builds the sample zoo.
func NewSample() *Sample {
	s := &Sample{
		Zoo:    types.NewZoo(),
		Parrot: types.NewBird("Попугай", 2, 30),
		Lion:   types.NewMammal("Лев", 5, "Golden"),
		Snake:  types.NewReptile("Змея", 3, "Scaly"),
		Keepers: [2]*types.ZooKeeper{
			types.NewZooKeeper("Иван Змеевский", 30),
			types.NewZooKeeper("Сергей Коровин", 25),
		},
		Vets: [2]*types.Veterinarian{
			types.NewVeterinarian("Доктор Айболит", 45),
			types.NewVeterinarian("Ветеринар Маша Иванова", 26),
		},
	}
	s.Zoo.AddAnimal(s.Parrot)
	s.Zoo.AddAnimal(s.Lion)
	s.Zoo.AddAnimal(s.Snake)
	for _, k := range s.Keepers {
		s.Zoo.AddStaff(k)
	}
	for _, v := range s.Vets {
		s.Zoo.AddStaff(v)
	}
	return s
}

// SampleZoo returns the sample zoo without the member handles.
func SampleZoo() *types.Zoo {
	return NewSample().Zoo
}

// Chorus writes the sound of every animal to w, playing each clip on p.
// Playback failures are logged and do not stop the chorus.
func Chorus(w io.Writer, animals []types.Animal, p types.SoundPlayer, logger *slog.Logger) error {
	for _, a := range animals {
		desc, err := types.MakeSound(a, p)
		if err != nil {
			logger.Warn("sound playback failed", "animal", a.Name(), "err", err)
		}
		if _, err := fmt.Fprintln(w, desc); err != nil {
			return err
		}
	}
	return nil
}

// Run performs the walkthrough, saving the sample zoo to path and reading it
// back before listing the staff.
func Run(w io.Writer, p types.SoundPlayer, path string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	s := NewSample()

	if err := Chorus(w, s.Zoo.Animals, p, logger); err != nil {
		return err
	}

	if err := document.Save(path, s.Zoo); err != nil {
		return fmt.Errorf("save zoo: %w", err)
	}
	loaded, err := document.Load(path, logger)
	if err != nil {
		return fmt.Errorf("load zoo: %w", err)
	}

	fmt.Fprintln(w, "\nЗвуки животных после загрузки из файла:")
	if err := Chorus(w, loaded.Animals, p, logger); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nИнформация о сотрудниках:")
	for _, st := range loaded.Staff {
		fmt.Fprintf(w, "%s, возраст: %d\n", st.Name(), st.Age())
	}

	duties := []string{
		s.Keepers[0].Feed(s.Parrot),
		s.Keepers[1].Feed(s.Lion),
		s.Keepers[1].Feed(s.Snake),
		s.Vets[1].Heal(s.Parrot),
		s.Vets[0].Heal(s.Lion),
		s.Vets[0].Heal(s.Snake),
	}
	for _, d := range duties {
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}
