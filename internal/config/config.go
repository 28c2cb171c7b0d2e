package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Colors holds color values for every UI style.
// Values can be xterm-256 codes (0-255) or hex colors (#rrggbb).
type Colors struct {
	Title      string `toml:"title"`
	Text       string `toml:"text"`
	Dim        string `toml:"dim"`
	Border     string `toml:"border"`
	Selected   string `toml:"selected"`
	Search     string `toml:"search"`
	Chip       string `toml:"chip"`
	ChipActive string `toml:"chip_active"`
	Done       string `toml:"done"`
	Testing    string `toml:"testing"`
	InProgress string `toml:"in_progress"`
	Todo       string `toml:"todo"`
	Cost       string `toml:"cost"`
	High       string `toml:"high"`
	Medium     string `toml:"medium"`
	Low        string `toml:"low"`
	Badge      string `toml:"badge"`
	Blocker    string `toml:"blocker"`
	Waiting    string `toml:"waiting"`
	Validation string `toml:"validation"`
	Link       string `toml:"link"`
	Error      string `toml:"error"`
	Overlay    string `toml:"overlay"`
	Help       string `toml:"help"`
	HelpActive string `toml:"help_active"`

	// Categories maps a category name to its badge color. Categories not
	// listed use Badge.
	Categories map[string]string `toml:"categories"`
}

// Layout holds terminal layout thresholds.
type Layout struct {
	NarrowWidth    int `toml:"narrow_width"`
	MaxColumnWidth int `toml:"max_column_width"`
}

// Data locates the board document.
type Data struct {
	Path string `toml:"path"`
}

// Server configures the HTML surface.
type Server struct {
	Addr string `toml:"addr"`
}

// Stats selects which figures the summary row shows.
type Stats struct {
	CostTier string `toml:"cost_tier"`
}

// Config is the top-level configuration.
type Config struct {
	Colors Colors `toml:"colors"`
	Layout Layout `toml:"layout"`
	Data   Data   `toml:"data"`
	Server Server `toml:"server"`
	Stats  Stats  `toml:"stats"`
}

// Default returns a Config populated with the built-in defaults.
func Default() Config {
	return Config{
		Colors: Colors{
			Title:      "#cba6f7", // Mauve
			Text:       "#cdd6f4", // Text
			Dim:        "#7f849c", // Overlay 1
			Border:     "#585b70", // Surface 2
			Selected:   "#cba6f7", // Mauve
			Search:     "#89b4fa", // Blue
			Chip:       "#a6adc8", // Subtext 0
			ChipActive: "#89b4fa", // Blue
			Done:       "#a6e3a1", // Green
			Testing:    "#f9e2af", // Yellow
			InProgress: "#fab387", // Peach
			Todo:       "#89b4fa", // Blue
			Cost:       "#94e2d5", // Teal
			High:       "#f38ba8", // Red
			Medium:     "#f9e2af", // Yellow
			Low:        "#7f849c", // Overlay 1
			Badge:      "#b4befe", // Lavender
			Blocker:    "#f38ba8", // Red
			Waiting:    "#f9e2af", // Yellow
			Validation: "#74c7ec", // Sapphire
			Link:       "#89dceb", // Sky
			Error:      "#f38ba8", // Red
			Overlay:    "#313244", // Surface 0
			Help:       "#7f849c", // Overlay 1
			HelpActive: "#bac2de", // Subtext 1
		},
		Layout: Layout{
			NarrowWidth:    100,
			MaxColumnWidth: 50,
		},
		Data: Data{
			Path: "data.json",
		},
		Server: Server{
			Addr: "127.0.0.1:8080",
		},
		Stats: Stats{
			CostTier: "commander",
		},
	}
}

// Path returns the config file path, respecting XDG_CONFIG_HOME.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "commandcenter", "commandcenter.conf")
}

// Load reads the config file at Path.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path and returns a Config. Omitted
// fields keep their default values. If the file does not exist, defaults
// are returned with no error.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

const defaultFileContent = `# Command Center configuration
# Uncomment and modify values to customize. All values are optional.
# Colors can be hex (#rrggbb) or xterm-256 codes (0-255).
# Defaults use the Catppuccin Mocha palette.

[colors]
# title       = "#cba6f7"  # Mauve
# text        = "#cdd6f4"  # Text
# dim         = "#7f849c"  # Overlay 1
# border      = "#585b70"  # Surface 2
# selected    = "#cba6f7"  # Mauve
# search      = "#89b4fa"  # Blue
# chip        = "#a6adc8"  # Subtext 0
# chip_active = "#89b4fa"  # Blue
# done        = "#a6e3a1"  # Green
# testing     = "#f9e2af"  # Yellow
# in_progress = "#fab387"  # Peach
# todo        = "#89b4fa"  # Blue
# cost        = "#94e2d5"  # Teal
# high        = "#f38ba8"  # Red
# medium      = "#f9e2af"  # Yellow
# low         = "#7f849c"  # Overlay 1
# badge       = "#b4befe"  # Lavender
# blocker     = "#f38ba8"  # Red
# waiting     = "#f9e2af"  # Yellow
# validation  = "#74c7ec"  # Sapphire
# link        = "#89dceb"  # Sky
# error       = "#f38ba8"  # Red
# overlay     = "#313244"  # Surface 0
# help        = "#7f849c"  # Overlay 1
# help_active = "#bac2de"  # Subtext 1

# [colors.categories]
# infra    = "#fab387"
# frontend = "#f5c2e7"

[layout]
# narrow_width     = 100  # below this terminal width only one bucket is shown
# max_column_width = 50

[data]
# path = "data.json"      # board document (.json, .yaml or .yml)

[server]
# addr = "127.0.0.1:8080"

[stats]
# cost_tier = "commander" # deployment tier shown in the summary row
`

// WriteDefault writes the default config file with all values commented out.
// It no-ops if the file already exists. Parent directories are created as needed.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // file already exists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultFileContent), 0o644)
}
