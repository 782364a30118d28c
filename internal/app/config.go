package app

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/pkg/errors"

	"lifeboard/internal/board"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size     int   `json:"size"`
	CellSize int   `json:"cell_size"`
	Offset   int   `json:"offset"`
	TPS      int   `json:"tps"`
	Seed     int64 `json:"seed"`

	EnableRandom      bool `json:"enable_random"`
	EnableResetButton bool `json:"enable_reset_button"`

	ConfigPath string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Size:              board.DefaultSize,
		CellSize:          board.DefaultCellSize,
		Offset:            board.DefaultOffset,
		TPS:               60,
		EnableRandom:      true,
		EnableResetButton: true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "cells along each side of the board")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "pixel size of a cell")
	fs.IntVar(&c.Offset, "offset", c.Offset, "pixel margin around the board")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random fill (0 seeds from the clock)")
	fs.BoolVar(&c.EnableRandom, "random", c.EnableRandom, "enable the random fill key")
	fs.BoolVar(&c.EnableResetButton, "reset-button", c.EnableResetButton, "show the reset button")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "optional JSON config file")
}

// Parse binds c to fs, parses args and, when -config is given, layers the
// file between the defaults and any flags set explicitly on the command line.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "parse flags")
	}
	if c.ConfigPath != "" {
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		if err := c.LoadFile(c.ConfigPath); err != nil {
			return err
		}
		for name, value := range explicit {
			if err := fs.Set(name, value); err != nil {
				return errors.Wrapf(err, "reapply flag -%s", name)
			}
		}
	}
	return c.Validate()
}

// LoadFile overlays the JSON document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "decode config %s", path)
	}
	return nil
}

// Validate rejects settings the board or window cannot be built from.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Errorf("size must be positive, got %d", c.Size)
	case c.CellSize <= 0:
		return errors.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.Offset < 0:
		return errors.Errorf("offset must not be negative, got %d", c.Offset)
	case c.TPS <= 0:
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// NewBoard builds an empty board with the configured geometry.
func (c *Config) NewBoard() *board.Board {
	return board.New(c.Size, board.WithCellSize(c.CellSize), board.WithOffset(c.Offset))
}
