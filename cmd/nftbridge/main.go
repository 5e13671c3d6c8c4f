/*
Provides the command-line interface for the nftbridge service.
*/
package main

import (
	"fmt"
	"os"

	log "github.com/ChainSafe/log15"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"

	"github.com/chainx-org/NftBridge/chains/engine"
	"github.com/chainx-org/NftBridge/chains/xnft"
	"github.com/chainx-org/NftBridge/config"
	"github.com/chainx-org/NftBridge/metrics"
	"github.com/chainx-org/NftBridge/shared/storage"
)

var app = cli.NewApp()

var cliFlags = []cli.Flag{
	config.ConfigFileFlag,
	config.VerbosityFlag,
	config.PortFlag,
	config.MetricsFlag,
	config.MetricsPortFlag,
}

var (
	Version = "0.1.0"
)

// init initializes CLI
func init() {
	app.Action = run
	app.Name = "nftbridge"
	app.Usage = "NFT derivative bridge service"
	app.Version = Version
	app.EnableBashCompletion = true
	app.Flags = append(app.Flags, cliFlags...)
}

func main() {
	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func startLogger(ctx *cli.Context) error {
	logger := log.Root()
	handler := logger.GetHandler()

	lvl, err := log.LvlFromString(ctx.String(config.VerbosityFlag.Name))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, handler))

	return nil
}

func run(ctx *cli.Context) error {
	err := startLogger(ctx)
	if err != nil {
		return err
	}

	log.Info("Starting nftbridge...")

	cfg, err := config.GetConfig(ctx)
	if err != nil {
		return err
	}

	universal, err := cfg.Universal()
	if err != nil {
		return err
	}
	collections, err := cfg.Collections()
	if err != nil {
		return err
	}
	vault, err := cfg.Vault()
	if err != nil {
		return err
	}

	policy := engine.BurnOnWithdraw
	if cfg.StashOnWithdraw {
		policy = engine.StashOnWithdraw
	}
	nftEngine := engine.NewStandalone(log.Root().New("engine", "standalone"), policy)

	var m *metrics.BridgeMetrics
	if cfg.Metrics {
		m = metrics.NewBridgeMetrics()
		m.Register(prometheus.DefaultRegisterer)
	}

	recorder := &xnft.EventRecorder{}
	events := xnft.MultiSink{
		xnft.LogSink{Log: log.Root().New("pallet", "xnft")},
		recorder,
	}

	bridge := xnft.NewBridge(xnft.BridgeConfig{
		Log:             log.Root().New("pallet", "xnft"),
		Universal:       universal,
		Vault:           vault,
		Engine:          nftEngine,
		Store:           storage.NewKV(),
		ClassConvert:    xnft.PrefixedGeneralIndex{Prefix: collections},
		InstanceConvert: xnft.IndexInstanceConvert{},
		AccountConvert:  xnft.AccountId32Convert{},
		RegisterOrigin:  xnft.EnsureRoot{},
		Errors:          []xnft.DispatchErrorConvert{engine.ErrorConvert{}},
		Events:          events,
		Metrics:         m,
	})

	srv := newServer(bridge, recorder, log.Root().New("api", "http"))

	if cfg.Metrics {
		go srv.serveMetrics(cfg.MetricsPort)
	}

	log.Info("Serving bridge API", "port", cfg.Port)
	return srv.serve(fmt.Sprintf(":%d", cfg.Port))
}
