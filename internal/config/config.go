// ===== internal/config/config.go =====
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/ini.v1"
)

// Output formats understood by the export package
var Formats = []string{"hosts", "json", "yaml", "zone"}

// Config holds all application configuration
type Config struct {
	// File paths
	HostsFile string

	// Network settings
	HTTPListen string

	// Output
	Format  string
	ZoneTTL uint32

	// Feature flags
	SkipBadEncoding bool
	Watch           bool
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		HostsFile:       "/etc/hosts",
		HTTPListen:      "127.0.0.1:8068",
		Format:          "hosts",
		ZoneTTL:         3600,
		SkipBadEncoding: false,
		Watch:           true,
	}
}

// LoadFromFile loads configuration from INI file
func (c *Config) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true}, filename)
	if err != nil {
		log.Printf("Skipping config file %s: %s", filename, err)
		return err
	}

	section := cfg.Section("")
	c.HostsFile = section.Key("hostsfile").MustString(c.HostsFile)
	c.HTTPListen = section.Key("httplisten").MustString(c.HTTPListen)
	c.Format = section.Key("format").MustString(c.Format)
	c.ZoneTTL = uint32(section.Key("zonettl").MustUint(uint(c.ZoneTTL)))
	c.SkipBadEncoding = section.Key("skipbadencoding").MustBool(c.SkipBadEncoding)
	c.Watch = section.Key("watch").MustBool(c.Watch)

	return nil
}

// LoadFromEnv loads configuration from environment variables
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("HOSTSFILE"); v != "" {
		c.HostsFile = v
	}
	if v := os.Getenv("HTTPLISTEN"); v != "" {
		c.HTTPListen = v
	}
	if v := os.Getenv("HOSTSFORMAT"); v != "" {
		c.Format = v
	}
	if v := os.Getenv("ZONETTL"); v != "" {
		if ttl, err := strconv.ParseUint(v, 10, 32); err == nil {
			c.ZoneTTL = uint32(ttl)
		} else {
			log.Printf("Warning: ignoring ZONETTL=%q: %v", v, err)
		}
	}
	if v := os.Getenv("SKIPBADENCODING"); v != "" {
		c.SkipBadEncoding, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("WATCH"); v != "" {
		c.Watch, _ = strconv.ParseBool(v)
	}
}

// Validate checks the settings that have no usable fallback
func (c *Config) Validate() error {
	if c.HostsFile == "" {
		return fmt.Errorf("hosts file path is required")
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q", c.Format)
}

// New creates a new configuration instance
func New(configFile string) (*Config, error) {
	cfg := DefaultConfig()

	// Load from file first; a missing file is not an error
	if configFile != "" {
		cfg.LoadFromFile(configFile)
	}

	// Override with environment variables
	cfg.LoadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
