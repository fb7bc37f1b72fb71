// Package config loads uuidgen settings from an optional file, UUIDGEN_*
// environment variables and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"net"
	"path"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/NutshellEngineering/uuid"
	"github.com/NutshellEngineering/uuid/internal/log"
)

// EnvPrefix prefixes every environment variable, e.g. UUIDGEN_LOG_LEVEL.
const EnvPrefix = "UUIDGEN"

// ErrInvalid is wrapped by every error returned from Validate.
var ErrInvalid = errors.New("config: invalid")

// Formats lists the accepted output formats.
var Formats = []string{"canonical", "urn", "binary", "hex", "base64"}

// Config holds every setting the command line understands.
type Config struct {
	Version   int    `mapstructure:"version"`
	Count     int    `mapstructure:"count"`
	Format    string `mapstructure:"format"`
	Namespace string `mapstructure:"namespace"`
	Name      string `mapstructure:"name"`
	Workers   int    `mapstructure:"workers"`
	Node      string `mapstructure:"node"`
	JSON      bool   `mapstructure:"json"`

	Log   Log   `mapstructure:"log"`
	MySQL MySQL `mapstructure:"mysql"`
}

// Log configures the diagnostic logger.
type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// MySQL locates the table generated UUIDs are stored in.
type MySQL struct {
	DSN   string `mapstructure:"dsn"`
	Table string `mapstructure:"table"`
}

var defaults = map[string]any{
	"version":     int(uuid.VersionTimeSorted),
	"count":       1,
	"format":      "canonical",
	"namespace":   "",
	"name":        "",
	"workers":     1,
	"node":        "",
	"json":        false,
	"log.level":   "warn",
	"log.format":  "text",
	"mysql.dsn":   "",
	"mysql.table": "uuids",
}

// flagKeys maps flag names to configuration keys where they differ.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"dsn":        "mysql.dsn",
	"table":      "mysql.table",
}

// Load reads the configuration. pathFile may be empty, in which case only
// defaults, environment and flags apply; otherwise its type is inferred from
// the extension. Flags that were not set on the command line do not override
// the file or the environment.
func Load(pathFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if pathFile != "" {
		filename := path.Base(pathFile)
		v.AddConfigPath(path.Dir(pathFile))
		v.SetConfigName(filename[:len(filename)-len(path.Ext(filename))])
		if ext := path.Ext(filename); ext != "" {
			v.SetConfigType(ext[1:])
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", pathFile, err)
		}
	}

	if flags != nil {
		var err error
		flags.VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if !ok {
				key = f.Name
			}
			if _, known := defaults[key]; !known || err != nil {
				return
			}
			err = v.BindPFlag(key, f)
		})
		if err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	return &c, nil
}

// UUIDVersion returns Version as a uuid.Version.
func (c *Config) UUIDVersion() uuid.Version {
	return uuid.Version(c.Version)
}

// NameBased reports whether the configured version hashes a name.
func (c *Config) NameBased() bool {
	v := c.UUIDVersion()
	return v == uuid.VersionNameBasedMD5 || v == uuid.VersionNameBasedSHA1
}

// ResolveNamespace parses Namespace as a well-known name or a UUID.
func (c *Config) ResolveNamespace() (uuid.Namespace, error) {
	ns, err := uuid.ParseNamespace(c.Namespace)
	if err != nil {
		return nil, fmt.Errorf("%w: namespace %q: %w", ErrInvalid, c.Namespace, err)
	}
	return ns, nil
}

// ResolveNode parses Node as a colon-separated 48-bit address. ok is false
// when no node is configured.
func (c *Config) ResolveNode() (node [6]byte, ok bool, err error) {
	if c.Node == "" {
		return node, false, nil
	}
	mac, err := net.ParseMAC(c.Node)
	if err != nil || len(mac) != len(node) {
		return node, false, fmt.Errorf("%w: node %q is not a 48-bit address", ErrInvalid, c.Node)
	}
	copy(node[:], mac)
	return node, true, nil
}

// Validate checks the generation and logging settings. The MySQL settings
// are checked when a store is opened.
func (c *Config) Validate() error {
	switch v := c.UUIDVersion(); {
	case c.Version < 0 || c.Version > int(uuid.VersionMax):
		return fmt.Errorf("%w: version %d out of range", ErrInvalid, c.Version)
	case v == uuid.VersionDCESecurity || (v > uuid.VersionCustom && v < uuid.VersionMax):
		return fmt.Errorf("%w: %w: %s", ErrInvalid, uuid.ErrUnsupportedVersion, v)
	}

	if c.Count < 1 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalid, c.Count)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("%w: format %q, want one of %s", ErrInvalid, c.Format, strings.Join(Formats, ", "))
	}

	if c.NameBased() {
		if c.Name == "" {
			return fmt.Errorf("%w: %s requires a name", ErrInvalid, c.UUIDVersion())
		}
		if c.Namespace == "" {
			return fmt.Errorf("%w: %s requires a namespace", ErrInvalid, c.UUIDVersion())
		}
		if _, err := c.ResolveNamespace(); err != nil {
			return err
		}
	}

	if _, _, err := c.ResolveNode(); err != nil {
		return err
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := log.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
