package systems

import (
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/dodgebox/dodgebox/components"
	cfg "github.com/dodgebox/dodgebox/config"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	sfxPCM             map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// blip describes one synthesized square-wave effect.
type blip struct {
	freq float64 // Hz
	dur  float64 // seconds
	vol  float64 // 0..1, pre-envelope
}

var blips = map[cfg.SoundID]blip{
	cfg.SoundHit:        {freq: 180, dur: 0.12, vol: 1.0},
	cfg.SoundCatch:      {freq: 660, dur: 0.18, vol: 0.9},
	cfg.SoundBounce:     {freq: 330, dur: 0.06, vol: 0.6},
	cfg.SoundMenuSelect: {freq: 520, dur: 0.08, vol: 0.7},
}

// initGlobalAudio initializes the audio context and synthesizes all effects
// (called once).
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		sfxPCM = make(map[cfg.SoundID][]byte, len(blips))
		for id, b := range blips {
			sfxPCM[id] = synthSquare(b)
		}
	})
}

// synthSquare renders a square wave with a linear decay envelope as 16-bit
// little-endian stereo PCM, the format NewPlayerFromBytes expects.
func synthSquare(b blip) []byte {
	rate := float64(cfg.Audio.SampleRate)
	frames := int(rate * b.dur)
	out := make([]byte, frames*4)
	period := rate / b.freq

	for i := 0; i < frames; i++ {
		envelope := 1 - float64(i)/float64(frames)
		sample := b.vol * envelope
		if math.Mod(float64(i), period) >= period/2 {
			sample = -sample
		}
		v := int16(sample * 0.5 * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}

// QueueSFX queues a sound effect; the audio system plays it this frame.
func QueueSFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := getOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// UpdateAudio drains the pending SFX queue and plays each effect.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	mute := GetOrCreateSettings(e).Mute

	for _, soundID := range audioData.PendingSFX {
		if mute {
			continue
		}
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	pcm, ok := sfxPCM[soundID]
	if !ok {
		return
	}
	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}
