package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/fruitbox/constants"
	"github.com/lixenwraith/fruitbox/engine"
	"github.com/lixenwraith/fruitbox/vmath"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// MinTileCells is the smallest tile side, in screen cells
const MinTileCells = 2

// Environment variables that override file values
const (
	EnvColumns    = "FRUITBOX_COLUMNS"
	EnvRows       = "FRUITBOX_ROWS"
	EnvTileWidth  = "FRUITBOX_TILE_WIDTH"
	EnvTileHeight = "FRUITBOX_TILE_HEIGHT"
	EnvSeed       = "FRUITBOX_SEED"
	EnvDebug      = "FRUITBOX_DEBUG"
)

// Config is the board layout and run options
type Config struct {
	Grid struct {
		Columns int `yaml:"columns"`
		Rows    int `yaml:"rows"`
	} `yaml:"grid"`
	Tile struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"tile"`

	// Seed fixes the board RNG; 0 picks a random seed
	Seed  uint64 `yaml:"seed"`
	Debug bool   `yaml:"debug"`
}

// Default returns the standard 17x10 board of 4x2 cell tiles
func Default() *Config {
	c := &Config{}
	c.Grid.Columns = constants.DefaultColumns
	c.Grid.Rows = constants.DefaultRows
	c.Tile.Width = constants.DefaultTileWidth
	c.Tile.Height = constants.DefaultTileHeight
	return c
}

// LoadDotEnv loads the given .env files into the process environment
// Missing files are not an error
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return nil
}

// Load builds a config from defaults, the optional YAML file at path, and environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	ints := []struct {
		key string
		dst *int
	}{
		{EnvColumns, &c.Grid.Columns},
		{EnvRows, &c.Grid.Rows},
		{EnvTileWidth, &c.Tile.Width},
		{EnvTileHeight, &c.Tile.Height},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, e.key, v)
		}
		*e.dst = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a seed", ErrInvalid, EnvSeed, v)
		}
		c.Seed = n
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a bool", ErrInvalid, EnvDebug, v)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks the grid and tile dimensions
func (c *Config) Validate() error {
	if c.Grid.Columns < 1 || c.Grid.Rows < 1 {
		return fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", ErrInvalid, c.Grid.Columns, c.Grid.Rows)
	}
	// Pointer positions map to cell centers, so a one-cell tile has its center
	// on every reachable rectangle edge and could never be strictly enclosed
	if c.Tile.Width < MinTileCells || c.Tile.Height < MinTileCells {
		return fmt.Errorf("%w: tile must be at least %dx%d cells, got %dx%d",
			ErrInvalid, MinTileCells, MinTileCells, c.Tile.Width, c.Tile.Height)
	}
	return nil
}

// Engine converts the layout to game settings
func (c *Config) Engine() engine.Config {
	return engine.Config{
		Columns: c.Grid.Columns,
		Rows:    c.Grid.Rows,
		Cell:    vmath.Size{W: float64(c.Tile.Width), H: float64(c.Tile.Height)},
	}
}
