// seedutil derives, resizes and combines BIP-39 seeds and prints extended keys.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/Klingon-tech/seed-utils/config"
	"github.com/Klingon-tech/seed-utils/internal/log"
	"github.com/urfave/cli"
	"golang.org/x/term"
)

const configKey = "config"

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fatal("%v", err)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "seedutil"
	app.Usage = "derive, resize and combine BIP-39 seeds"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Metadata = map[string]interface{}{}
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Value: config.DefaultConfigFile(),
			Usage: "path to the configuration file",
		},
		cli.StringFlag{
			Name:  "network",
			Usage: "mainnet or testnet",
		},
		cli.IntFlag{
			Name:  "workers",
			Usage: "parallel derivation workers (0 = number of CPUs)",
		},
		cli.StringFlag{
			Name:  "loglevel",
			Usage: "debug, info, warn or error",
		},
		cli.BoolFlag{
			Name:  "logjson",
			Usage: "write logs as JSON",
		},
		cli.StringFlag{
			Name:  "logfile",
			Usage: "also append JSON logs to this file",
		},
	}
	app.Before = func(c *cli.Context) error {
		cfg, err := config.Load(c.GlobalString("config"), &config.Flags{
			Network:    c.GlobalString("network"),
			Workers:    c.GlobalInt("workers"),
			LogLevel:   c.GlobalString("loglevel"),
			LogFile:    c.GlobalString("logfile"),
			LogJSON:    c.GlobalBool("logjson"),
			SetWorkers: c.GlobalIsSet("workers"),
			SetLogJSON: c.GlobalIsSet("logjson"),
		})
		if err != nil {
			return cli.NewExitError(fmt.Sprintf("config: %v", err), 1)
		}
		if err := log.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
			return cli.NewExitError(fmt.Sprintf("log: %v", err), 1)
		}
		c.App.Metadata[configKey] = cfg
		log.CLI.Debug().
			Str("network", string(cfg.Network)).
			Int("workers", cfg.Workers).
			Msg("Configuration loaded")
		return nil
	}
	// Errors are reported by main, so tests can run the app in-process.
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Commands = []cli.Command{
		childCommand,
		extendCommand,
		truncateCommand,
		xorCommand,
		xpubCommand,
		xprvCommand,
		convertCommand,
	}
	return app
}

// loadedConfig returns the configuration stored by the app's Before hook.
func loadedConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// readPassword reads a line from the terminal without echo.
var readPassword = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// exitErr wraps err for urfave/cli with exit status 1.
func exitErr(err error) error {
	if err == nil {
		return nil
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return err
	}
	return cli.NewExitError(err.Error(), 1)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
