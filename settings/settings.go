package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/oomph-ac/ghostplay/game"
	"github.com/oomph-ac/ghostplay/ghost"
	"github.com/oomph-ac/ghostplay/playback"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for ghost playback. Every value may be overridden
// by the environment variable named in its env tag.
type Settings struct {
	Ghost struct {
		// BodyGroup selects the model variant, from 0 to 14.
		BodyGroup int `env:"GHOST_BODY_GROUP"`
		// Colour is the tint of the ghost, formatted as RRGGBB.
		Colour string `env:"GHOST_COLOUR"`
		// Alpha is the transparency of the ghost, from 0 to 255.
		Alpha uint8 `env:"GHOST_ALPHA"`
	}
	Playback struct {
		// Speed is the playback speed multiplier.
		Speed float64 `env:"GHOST_PLAYBACK_SPEED"`
		// ScrubMode is the direction a paused ghost moves in: none, backward or forward.
		ScrubMode string `env:"GHOST_SCRUB_MODE"`
		// MaxVelocity is the per-axis velocity above which a frame delta is treated as a teleport.
		MaxVelocity float64 `env:"GHOST_MAX_VELOCITY"`
		// TickInterval is the live tick interval, in seconds.
		TickInterval float64 `env:"GHOST_TICK_INTERVAL"`
	}
	Archive struct {
		// Path is the path of the recording archive database.
		Path string `env:"GHOST_ARCHIVE_PATH"`
		// Recording is the name of the recording to play.
		Recording string `env:"GHOST_RECORDING"`
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Ghost.BodyGroup = game.DefaultBodyGroup
	s.Ghost.Colour = ghost.HexColour(ghost.DefaultAppearance().Colour)
	s.Ghost.Alpha = game.DefaultGhostAlpha

	s.Playback.Speed = 1
	s.Playback.ScrubMode = playback.ScrubNone.String()
	s.Playback.MaxVelocity = float64(game.DefaultMaxVelocity)
	s.Playback.TickInterval = 0.015

	s.Archive.Path = "recordings.db"
	return s
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %w", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %w", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file and apply environment overrides on top of them. An
// error is returned if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = env.Parse(&settings); err != nil {
		return Settings{}, fmt.Errorf("error reading environment: %w", err)
	}
	return settings, nil
}

// Scrub returns the parsed scrub mode.
func (s Settings) Scrub() (playback.ScrubDirection, error) {
	return playback.ParseScrubDirection(s.Playback.ScrubMode)
}

// LiveTickInterval ...
func (s Settings) LiveTickInterval() float32 {
	return float32(s.Playback.TickInterval)
}

// Apply applies the appearance and playback settings to the ghost given. Invalid body groups and colours
// are ignored by the ghost; an unknown scrub mode is returned as an error and leaves the scrub mode as is.
func (s Settings) Apply(g *ghost.Ghost) error {
	g.SetBodyGroup(s.Ghost.BodyGroup)
	g.SetColourHex(s.Ghost.Colour)
	g.SetAlpha(s.Ghost.Alpha)
	g.SetSpeed(float32(s.Playback.Speed))
	g.SetMaxVelocity(float32(s.Playback.MaxVelocity))

	dir, err := s.Scrub()
	if err != nil {
		return err
	}
	g.SetScrub(dir)
	return nil
}
