package main

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaultRPC := os.Getenv("FRACTION_RPC")
	if defaultRPC == "" {
		defaultRPC = fmt.Sprintf("http://127.0.0.1:%d", config.DefaultRPCPort)
	}

	app := cli.NewApp()
	app.Name = "fraction"
	app.Usage = "Exact rational arithmetic on 64-bit numerators and denominators."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "node",
			Aliases: []string{"n"},
			Value:   defaultRPC,
			Usage:   "the RPC endpoint, and the default value is read from environment variable FRACTION_RPC",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Usage:   "the log level, overrides the configuration",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:   "demo",
			Usage:  "Read two fractions from the console and print every operation",
			Action: demoCmd,
		},
		{
			Name:   "calc",
			Usage:  "Evaluate one operation on two fractions",
			Action: calcCmd,
			Flags: append(fractionFlags(),
				&cli.StringFlag{
					Name:    "op",
					Aliases: []string{"o"},
					Value:   "add",
					Usage:   "the operation name or symbol, add sub mul div neg eq ne lt le gt ge",
				},
				&cli.BoolFlag{
					Name:  "strict",
					Usage: "report overflow and division by a zero fraction as errors",
				},
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the history data directory, nothing is recorded when empty",
				},
			),
		},
		{
			Name:   "compare",
			Usage:  "Print all comparisons between two fractions",
			Action: compareCmd,
			Flags:  fractionFlags(),
		},
		{
			Name:   "history",
			Usage:  "List the recorded evaluations",
			Action: historyCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "dir",
					Aliases:  []string{"d"},
					Usage:    "the history data directory",
					Required: true,
				},
				&cli.Uint64Flag{
					Name:  "offset",
					Value: 0,
					Usage: "the first sequence to list",
				},
				&cli.Uint64Flag{
					Name:  "count",
					Value: 100,
					Usage: "the maximum records to list",
				},
			},
		},
		{
			Name:   "rpc",
			Usage:  "Start the calculator RPC server",
			Action: rpcCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "port",
					Aliases: []string{"p"},
					Usage:   "the port to listen, overrides the configuration",
				},
				&cli.StringFlag{
					Name:    "dir",
					Aliases: []string{"d"},
					Usage:   "the history data directory, overrides the configuration",
				},
			},
		},
		{
			Name:   "call",
			Usage:  "Call a method of the calculator RPC server",
			Action: callCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "method",
					Aliases: []string{"m"},
					Usage:   "the RPC method, getinfo evaluate report listhistory gethistory",
				},
				&cli.StringFlag{
					Name:    "params",
					Aliases: []string{"p"},
					Value:   "[]",
					Usage:   "the RPC params as a JSON array",
				},
			},
		},
	}
	app.Before = func(c *cli.Context) error {
		custom, err := loadConfig(c)
		if err != nil {
			return err
		}
		return logger.Configure(custom)
	}
	return app
}

func fractionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:  "an",
			Usage: "the numerator of the first fraction",
		},
		&cli.Int64Flag{
			Name:  "ad",
			Value: 1,
			Usage: "the denominator of the first fraction",
		},
		&cli.Int64Flag{
			Name:  "bn",
			Usage: "the numerator of the second fraction",
		},
		&cli.Int64Flag{
			Name:  "bd",
			Value: 1,
			Usage: "the denominator of the second fraction",
		},
	}
}
