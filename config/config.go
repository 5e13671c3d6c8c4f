package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/chainx-org/NftBridge/chains/locator"
)

const (
	DefaultConfigPath  = "./config.toml"
	DefaultPort        = 8545
	DefaultMetricsPort = 9090
)

// JunctionConfig is the TOML form of one path junction.
type JunctionConfig struct {
	Type  string `toml:"type"`
	Value uint64 `toml:"value"`
	Key   string `toml:"key"`
}

func (jc JunctionConfig) Junction() (locator.Junction, error) {
	switch strings.ToLower(jc.Type) {
	case "network":
		return locator.GlobalConsensus(locator.NetworkId(jc.Value)), nil
	case "parachain":
		return locator.Parachain(uint32(jc.Value)), nil
	case "pallet":
		return locator.PalletInstance(uint8(jc.Value)), nil
	case "index":
		return locator.GeneralIndex(jc.Value), nil
	case "key":
		data, err := hex.DecodeString(strings.TrimPrefix(jc.Key, "0x"))
		if err != nil {
			return locator.Junction{}, fmt.Errorf("junction key is not hex: %w", err)
		}
		if len(data) > 32 {
			return locator.Junction{}, fmt.Errorf("junction key longer than 32 bytes")
		}
		return locator.GeneralKey(data), nil
	default:
		return locator.Junction{}, fmt.Errorf("unrecognized junction type %q", jc.Type)
	}
}

// Config is the bridge service configuration.
type Config struct {
	Port        int  `toml:"port"`
	Metrics     bool `toml:"metrics"`
	MetricsPort int  `toml:"metrics_port"`

	// UniversalLocation is this system's interior location from the root
	// of the addressing tree.
	UniversalLocation []JunctionConfig `toml:"universal_location"`

	// CollectionsLocation is the interior prefix under which local NFT
	// classes are addressed, e.g. the NFT pallet instance.
	CollectionsLocation []JunctionConfig `toml:"collections_location"`

	// VaultAccount is the hex-encoded 32-byte system custody account.
	VaultAccount string `toml:"vault_account"`

	// StashOnWithdraw selects the engine's withdrawal policy.
	StashOnWithdraw bool `toml:"stash_on_withdraw"`
}

func junctions(configs []JunctionConfig) ([]locator.Junction, error) {
	out := make([]locator.Junction, 0, len(configs))
	for _, jc := range configs {
		j, err := jc.Junction()
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, nil
}

// Universal parses the configured universal location.
func (c *Config) Universal() ([]locator.Junction, error) {
	return junctions(c.UniversalLocation)
}

// Collections parses the configured local collections prefix.
func (c *Config) Collections() ([]locator.Junction, error) {
	return junctions(c.CollectionsLocation)
}

// Vault parses the configured vault account.
func (c *Config) Vault() ([32]byte, error) {
	var out [32]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(c.VaultAccount, "0x"))
	if err != nil {
		return out, fmt.Errorf("vault account is not hex: %w", err)
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("vault account must be 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// GetConfig loads the TOML file named by the config flag and applies
// command-line overrides.
func GetConfig(ctx *cli.Context) (*Config, error) {
	cfg := &Config{
		Port:        DefaultPort,
		MetricsPort: DefaultMetricsPort,
	}

	path := ctx.String(ConfigFileFlag.Name)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if ctx.IsSet(PortFlag.Name) {
		cfg.Port = ctx.Int(PortFlag.Name)
	}
	if ctx.IsSet(MetricsFlag.Name) {
		cfg.Metrics = ctx.Bool(MetricsFlag.Name)
	}
	if ctx.IsSet(MetricsPortFlag.Name) {
		cfg.MetricsPort = ctx.Int(MetricsPortFlag.Name)
	}

	return cfg, nil
}
