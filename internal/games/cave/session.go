package cave

import "github.com/vovakirdan/grapplecore/internal/config"

// Session is everything that belongs to one life: the world, the player, the
// hazards and the amber purse. It is never partially reset; a restart builds
// a new Session from the config.
type Session struct {
	World   *World
	Player  Player
	Hazards *Registry

	Amber           int
	GameOver        bool
	WaitingForInput bool
	Turns           int

	timing config.TimingConfig
}

// NewSession builds a fresh life from the config. The player starts at the
// spawn cell and does not fall until the first move.
func NewSession(cfg config.CaveConfig) *Session {
	return &Session{
		World:           NewWorld(cfg.Grid, cfg.Level),
		Player:          NewPlayer(fromConfig(cfg.Level.Spawn)),
		Hazards:         NewRegistry(cfg.Hazards, cfg.Level.Exit),
		WaitingForInput: true,
		timing:          cfg.Timing,
	}
}

// AcceptsInput reports whether the controller is idle and waiting for the
// next intent.
func (s *Session) AcceptsInput() bool {
	return s.WaitingForInput && !s.GameOver && s.Player.IsIdle()
}
