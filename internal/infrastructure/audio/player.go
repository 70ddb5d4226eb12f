package audio

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"

	"github.com/younwookim/catfight/internal/domain/entity"
	"github.com/younwookim/catfight/internal/infrastructure/config"
)

// Player plays pre-rendered clips for sound events
type Player struct {
	ctx    *audio.Context
	clips  map[entity.Sound][]byte
	volume float64
	logger *zap.Logger
}

// NewPlayer renders every voice and binds to the process audio context,
// creating it on first use
func NewPlayer(cfg config.AudioConfig, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	clips := make(map[entity.Sound][]byte, len(Voices))
	for s, v := range Voices {
		clips[s] = Render(v, SampleRate)
	}

	return &Player{
		ctx:    ctx,
		clips:  clips,
		volume: cfg.Volume,
		logger: logger,
	}
}

// Play starts the clip for s. Overlapping plays mix.
func (p *Player) Play(s entity.Sound) {
	clip, ok := p.clips[s]
	if !ok {
		p.logger.Warn("no clip for sound", zap.Stringer("sound", s))
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.SetVolume(p.volume)
	player.Play()
}

// Nop discards every sound; used when audio is disabled
type Nop struct{}

// Play does nothing
func (Nop) Play(entity.Sound) {}
