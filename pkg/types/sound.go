package types

// SoundPlayer plays an audio clip. Implementations live outside the entity
// model; see MakeSound.
type SoundPlayer interface {
	Play(path string) error
}
