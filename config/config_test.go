package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/chainx-org/NftBridge/chains/locator"
)

const sampleConfig = `
port = 9000
metrics = true
metrics_port = 9191
vault_account = "0x` + "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff" + `"
stash_on_withdraw = true

[[universal_location]]
type = "network"
value = 1

[[universal_location]]
type = "parachain"
value = 5

[[collections_location]]
type = "pallet"
value = 7
`

func loadSample(t *testing.T) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o600))

	cfg := &Config{Port: DefaultPort, MetricsPort: DefaultMetricsPort}
	_, err := toml.DecodeFile(path, cfg)
	require.NoError(t, err)
	return cfg
}

func TestLoadConfig(t *testing.T) {
	cfg := loadSample(t)

	require.Equal(t, 9000, cfg.Port)
	require.True(t, cfg.Metrics)
	require.Equal(t, 9191, cfg.MetricsPort)
	require.True(t, cfg.StashOnWithdraw)

	universal, err := cfg.Universal()
	require.NoError(t, err)
	require.Equal(t, []locator.Junction{locator.GlobalConsensus(1), locator.Parachain(5)}, universal)

	collections, err := cfg.Collections()
	require.NoError(t, err)
	require.Equal(t, []locator.Junction{locator.PalletInstance(7)}, collections)

	vault, err := cfg.Vault()
	require.NoError(t, err)
	require.Equal(t, byte(0xFF), vault[0])
	require.Equal(t, byte(0xFF), vault[31])
}

func TestJunctionParsing(t *testing.T) {
	j, err := JunctionConfig{Type: "index", Value: 42}.Junction()
	require.NoError(t, err)
	require.True(t, j.Equal(locator.GeneralIndex(42)))

	j, err = JunctionConfig{Type: "key", Key: "0x010203"}.Junction()
	require.NoError(t, err)
	require.True(t, j.Equal(locator.GeneralKey([]byte{1, 2, 3})))

	_, err = JunctionConfig{Type: "key", Key: "zz"}.Junction()
	require.Error(t, err)

	_, err = JunctionConfig{Type: "planet", Value: 3}.Junction()
	require.Error(t, err)
}

func TestVaultValidation(t *testing.T) {
	cfg := &Config{VaultAccount: "0x0102"}
	_, err := cfg.Vault()
	require.Error(t, err)

	cfg.VaultAccount = "not hex"
	_, err = cfg.Vault()
	require.Error(t, err)
}
