package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundHit
	SoundCatch
	SoundBounce
	SoundMenuSelect
)
