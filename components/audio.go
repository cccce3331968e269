package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/dodgebox/dodgebox/config"
)

// AudioData queues sound effects raised by gameplay systems; the audio
// system drains the queue once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
