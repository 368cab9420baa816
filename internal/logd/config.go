package logd

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/rtlog/sink"
)

// Config is the daemon configuration, loaded from YAML and overridable by
// CLI flags.
type Config struct {
	// PacketSocket is the seqpacket address clients log to, one record
	// per datagram. Empty disables the listener.
	PacketSocket string `yaml:"packet_socket"`
	// StreamSocket accepts length-prefixed record streams. Empty
	// disables the listener.
	StreamSocket string `yaml:"stream_socket"`
	// Output controls how received records are rendered.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig contains rendering settings for received records.
type OutputConfig struct {
	Color      bool `yaml:"color"`
	Timestamps bool `yaml:"timestamps"`
	ShowThread bool `yaml:"show_thread"`
}

// DefaultStreamSocket is the well-known stream listener address.
const DefaultStreamSocket = "/tmp/logd-stream.sock"

// DefaultConfig returns the configuration used when no file is given.
// The daemon aggregates records from many processes, so timestamps and the
// tgid/tid column are on by default.
func DefaultConfig() Config {
	return Config{
		PacketSocket: sink.DefaultLogdSocket,
		StreamSocket: DefaultStreamSocket,
		Output: OutputConfig{
			Timestamps: true,
			ShowThread: true,
		},
	}
}

// LoadConfig reads and parses a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (c Config) Validate() error {
	if c.PacketSocket == "" && c.StreamSocket == "" {
		return errors.New("config: at least one listener socket is required")
	}
	if c.PacketSocket != "" && c.PacketSocket == c.StreamSocket {
		return errors.New("config: packet and stream sockets must differ")
	}
	return nil
}
