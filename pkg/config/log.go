package config

import "strings"

var logLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

type LogConfig struct {
	Level string `koanf:"level"`
}

func (c *LogConfig) String() string {
	return newSection("Log").add("level", c.Level).String()
}

// Validate normalises the level to lower case; empty means info.
func (c *LogConfig) Validate() error {
	c.Level = strings.ToLower(strings.TrimSpace(c.Level))
	if !logLevels[c.Level] {
		return invalid("log.level", "unknown level %q", c.Level)
	}
	if c.Level == "" {
		c.Level = "info"
	}
	return nil
}
