package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
)

type Config struct {
	QuitTimes      int    `json:"quit_times"`
	MessageTimeout int    `json:"message_timeout"`  // seconds a message bar entry stays visible
	PollInterval   int    `json:"poll_interval_ms"` // bounded wait for the next key event
	Theme          string `json:"theme"`
	WatchFile      bool   `json:"watch_file"`

	RememberPosition bool `json:"remember_position"` // restore the cursor of a file reopened later
}

// MessageTTL returns the message bar lifetime as a duration.
func (c *Config) MessageTTL() time.Duration {
	if c.MessageTimeout <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.MessageTimeout) * time.Second
}

// KeyPollInterval returns the key wait timeout as a duration.
func (c *Config) KeyPollInterval() time.Duration {
	if c.PollInterval <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(c.PollInterval) * time.Millisecond
}

// ColorScheme assigns a foreground color to every non-keyword highlight tag.
// Keyword colors belong to the language tables themselves.
type ColorScheme struct {
	Name        string
	Normal      tcell.Color
	Number      tcell.Color
	String      tcell.Color
	CharLiteral tcell.Color
	Comment     tcell.Color
	SearchMatch tcell.Color
	Keyword     tcell.Color // used by lexers that carry no keyword table
}

var Themes = map[string]*ColorScheme{
	"default": {
		Name:        "Default",
		Normal:      tcell.ColorReset,
		Number:      tcell.ColorTeal,
		String:      tcell.ColorGreen,
		CharLiteral: tcell.ColorOlive,
		Comment:     tcell.ColorGray,
		SearchMatch: tcell.ColorBlue,
		Keyword:     tcell.ColorMaroon,
	},
	"monokai": {
		Name:        "Monokai",
		Normal:      tcell.NewRGBColor(248, 248, 242),
		Number:      tcell.NewRGBColor(174, 129, 255),
		String:      tcell.NewRGBColor(230, 219, 116),
		CharLiteral: tcell.NewRGBColor(230, 219, 116),
		Comment:     tcell.NewRGBColor(117, 113, 94),
		SearchMatch: tcell.NewRGBColor(102, 217, 239),
		Keyword:     tcell.NewRGBColor(249, 38, 114),
	},
	"solarized-dark": {
		Name:        "Solarized Dark",
		Normal:      tcell.NewRGBColor(131, 148, 150),
		Number:      tcell.NewRGBColor(211, 54, 130),
		String:      tcell.NewRGBColor(42, 161, 152),
		CharLiteral: tcell.NewRGBColor(42, 161, 152),
		Comment:     tcell.NewRGBColor(88, 110, 117),
		SearchMatch: tcell.NewRGBColor(38, 139, 210),
		Keyword:     tcell.NewRGBColor(133, 153, 0),
	},
}

func Default() *Config {
	return &Config{
		QuitTimes:      3,
		MessageTimeout: 5,
		PollInterval:   500,
		Theme:          "default",
		WatchFile:      true,

		RememberPosition: true,
	}
}

func (c *Config) GetTheme() *ColorScheme {
	theme, ok := Themes[c.Theme]
	if !ok {
		return Themes["default"]
	}
	return theme
}

func ConfigPath() string {
	if p := os.Getenv("POUND_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pound", "settings.json")
}

func Load() (*Config, error) {
	path := ConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.QuitTimes < 0 {
		cfg.QuitTimes = 0
	}
	return cfg, nil
}

// LoadOrCreate loads the settings file, writing the defaults out first
// when there is none yet.
func LoadOrCreate() (*Config, error) {
	path := ConfigPath()
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := cfg.Save(); err != nil {
			return cfg, fmt.Errorf("writing default settings: %w", err)
		}
		return cfg, nil
	}
	return Load()
}

func (c *Config) Save() error {
	path := ConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
