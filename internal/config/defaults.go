package config

import "strings"

const (
	defaultSearchLanguage = "en-US"
	defaultOutputFormat   = "table"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Search: Search{
			Language: defaultSearchLanguage,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// normalize trims whitespace and lowercases the values that are compared
// against fixed sets, filling untouched fields from defaults.
func (c *Config) normalize() {
	c.Search.Language = strings.TrimSpace(c.Search.Language)
	if c.Search.Language == "" {
		c.Search.Language = defaultSearchLanguage
	}

	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
