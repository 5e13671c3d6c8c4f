package config

import (
	"github.com/urfave/cli/v2"
)

var (
	ConfigFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
		Value: DefaultConfigPath,
	}

	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "supports levels crit (silent) to trce (trace)",
		Value: "info",
	}

	PortFlag = &cli.IntFlag{
		Name:  "port",
		Usage: "port for the bridge API",
		Value: DefaultPort,
	}

	MetricsFlag = &cli.BoolFlag{
		Name:  "metrics",
		Usage: "enable metrics and health endpoints",
	}

	MetricsPortFlag = &cli.IntFlag{
		Name:  "metricsPort",
		Usage: "port for the metrics and health endpoints",
		Value: DefaultMetricsPort,
	}
)
