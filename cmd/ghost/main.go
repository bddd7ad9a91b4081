package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/ghost-wallet/internal/config"
	"github.com/tdex-network/ghost-wallet/internal/core/application"
	"github.com/tdex-network/ghost-wallet/internal/core/ports"
	"github.com/tdex-network/ghost-wallet/pkg/stats"
	"github.com/urfave/cli/v2"
)

var (
	datadirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "data directory of the wallet",
	}
	storeFlag = &cli.StringFlag{
		Name:  "store",
		Usage: "secure store backend, one of memory, badger or bolt",
	}
	logLevelFlag = &cli.IntFlag{
		Name:  "loglevel",
		Usage: "logrus level, from 0 (panic) to 6 (trace)",
	}

	stopStats func()
)

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "ghost"
	app.Usage = "Command line interface for the ghost wallet"
	app.Flags = []cli.Flag{datadirFlag, storeFlag, logLevelFlag}
	app.Before = initApp
	app.After = closeApp
	app.Commands = append(
		app.Commands,
		&create,
		&onboard,
		&status,
		&unlock,
		&biometric,
		&balances,
		&proposals,
		&propose,
		&vote,
		&swap,
		&logout,
	)
	return app
}

func initApp(ctx *cli.Context) error {
	overrides := make(map[string]interface{})
	if ctx.IsSet(datadirFlag.Name) {
		overrides[config.DatadirKey] = ctx.String(datadirFlag.Name)
	}
	if ctx.IsSet(storeFlag.Name) {
		overrides[config.StoreTypeKey] = ctx.String(storeFlag.Name)
	}
	if ctx.IsSet(logLevelFlag.Name) {
		overrides[config.LogLevelKey] = ctx.Int(logLevelFlag.Name)
	}

	if err := config.InitConfig(overrides); err != nil {
		return err
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	if config.GetBool(config.EnableStatsKey) {
		statsCtx, cancel := context.WithCancel(context.Background())
		interval := time.Duration(config.GetInt(config.StatsIntervalKey)) * time.Second
		statsFile := filepath.Join(
			config.GetDatadir(), config.StatsLocation, "stats.txt",
		)
		done := stats.EnableMemoryStatistics(statsCtx, interval, statsFile)
		stopStats = func() {
			cancel()
			<-done
		}
	}
	return nil
}

func closeApp(_ *cli.Context) error {
	if stopStats != nil {
		stopStats()
	}
	return nil
}

// getSession returns a session on top of the configured secure store. The
// cleanup func must be called to release the store.
func getSession() (*application.Session, ports.Network, func(), error) {
	store, err := config.GetSecureStore()
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() { store.Close() }

	network := config.GetNetwork()
	cfg, err := config.GetApplicationConfig(store, network)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}

	session, err := application.NewSession(cfg)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return session, network, cleanup, nil
}

// getInitializedSession is like getSession but also loads the persisted
// wallet, failing if there's none.
func getInitializedSession(
	ctx context.Context,
) (*application.Session, ports.Network, func(), error) {
	session, network, cleanup, err := getSession()
	if err != nil {
		return nil, nil, nil, err
	}
	if err := session.InitializeWallet(ctx); err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	if !session.IsInitialized() {
		cleanup()
		return nil, nil, nil, errors.New("wallet not found: run 'ghost create' first")
	}
	return session, network, cleanup, nil
}

func printJSON(resp interface{}) {
	b, err := json.MarshalIndent(resp, "", "\t")
	if err != nil {
		fmt.Println("unable to decode response: ", err)
		return
	}
	fmt.Println(string(b))
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[ghost] %v\n", err)
	}
	os.Exit(1)
}
