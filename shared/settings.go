package shared

import "sync/atomic"

// ISettings holds the display switches that the host can flip at runtime.
// Renderers read them on every call; nothing caches them.
type ISettings interface {
	NoMedia() bool
	AutoPlay() bool
	SetNoMedia(val bool)
	SetAutoPlay(val bool)
}

type settings struct {
	noMedia  atomic.Bool
	autoPlay atomic.Bool
}

func NewSettings(cfg *Config) ISettings {
	res := settings{}
	res.noMedia.Store(cfg.NoMedia)
	res.autoPlay.Store(cfg.AutoPlay)
	return &res
}

func (s *settings) NoMedia() bool {
	return s.noMedia.Load()
}

func (s *settings) AutoPlay() bool {
	return s.autoPlay.Load()
}

func (s *settings) SetNoMedia(val bool) {
	s.noMedia.Store(val)
}

func (s *settings) SetAutoPlay(val bool) {
	s.autoPlay.Store(val)
}
