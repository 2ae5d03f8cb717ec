// Package sound plays the game's effects and menu music through ebiten's audio package.
package sound

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/golangdaddy/racinggame/pkg/app"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// SampleRate of the audio context
const SampleRate = 44100

// MusicFile is the looping menu music under the sounds directory
const MusicFile = "music.ogg"

// Player implements app.SoundPlayer
type Player struct {
	ctx     *audio.Context
	effects map[app.Sound][]byte
	music   *audio.Player

	soundVolume float64
	musicVolume float64
}

// Load decodes every effect in dir concurrently plus the menu music.
// Missing files are skipped with a warning and play as silence.
func Load(dir string, soundVolume, musicVolume float64) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	p := &Player{
		ctx:         ctx,
		effects:     make(map[app.Sound][]byte, len(app.SoundFiles)),
		soundVolume: soundVolume,
		musicVolume: musicVolume,
	}

	var mu sync.Mutex
	var g errgroup.Group
	for s, name := range app.SoundFiles {
		path := filepath.Join(dir, name)
		g.Go(func() error {
			pcm, err := decodeWav(path)
			if errors.Is(err, fs.ErrNotExist) {
				log.Warn().Str("file", path).Msg("Sound missing")
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			p.effects[s] = pcm
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	music, err := p.loadMusic(filepath.Join(dir, MusicFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("file", MusicFile).Msg("Music missing")
	case err != nil:
		return nil, err
	default:
		p.music = music
	}
	p.SetVolumes(soundVolume, musicVolume)

	log.Info().Int("effects", len(p.effects)).Bool("music", p.music != nil).Msg("Sounds loaded")
	return p, nil
}

func decodeWav(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := wav.DecodeWithSampleRate(SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return pcm, nil
}

func (p *Player) loadMusic(path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return p.ctx.NewPlayer(loop)
}

// Play starts a one-shot effect
func (p *Player) Play(s app.Sound) {
	pcm, ok := p.effects[s]
	if !ok || p.soundVolume == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.soundVolume)
	player.Play()
}

// PlayMusic starts the menu music if it is not already playing
func (p *Player) PlayMusic() {
	if p.music == nil || p.music.IsPlaying() {
		return
	}
	p.music.Play()
}

// StopMusic pauses the menu music and rewinds it
func (p *Player) StopMusic() {
	if p.music == nil {
		return
	}
	p.music.Pause()
	if err := p.music.Rewind(); err != nil {
		log.Warn().Err(err).Msg("Failed to rewind music")
	}
}

// SetVolumes applies the options screen's volume settings
func (p *Player) SetVolumes(sound, music float64) {
	p.soundVolume = sound
	p.musicVolume = music
	if p.music != nil {
		p.music.SetVolume(music)
	}
}
