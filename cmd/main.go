package main

import (
	"fmt"
	"os"
	"strings"

	"cardexcli/cmd/market"
	"cardexcli/cmd/mockserver"
	"cardexcli/src/auth"
	"cardexcli/src/connectors"
	"cardexcli/src/database"
	"cardexcli/src/server"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var Version string

// SetupLogger configures logrus from LOG_LEVEL and LOG_FORMAT. Logs go to
// stderr so they never interleave with the market screens.
func SetupLogger() {
	levelStr := strings.ToLower(os.Getenv("LOG_LEVEL"))

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.WarnLevel
	}

	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(level)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		_, _ = fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}
	SetupLogger()
	defer handlePanic()

	app := cli.NewApp()
	app.Name = "cardex"
	app.Usage = "The CarDex live market command line interface"
	app.Version = Version

	app.Commands = []cli.Command{
		marketCMD,
		mockServerCMD,
	}
	app.Action = marketAction
	app.Flags = marketCMD.Flags

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	marketCMD = cli.Command{
		Name:      "market",
		Usage:     "open the live market terminal",
		Action:    marketAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "base-url", Usage: "CarDex API base URL (overrides CARDEX_BASE_URL)"},
			cli.StringFlag{Name: "username", Usage: "login username (overrides CARDEX_USERNAME)"},
			cli.IntFlag{Name: "limit", Usage: "trades shown per command (overrides CARDEX_TRADE_LIMIT)"},
		},
		Description: `Connect to the CarDex API, log in and browse trades, packs and collections`,
	}
	mockServerCMD = cli.Command{
		Name:      "mockserver",
		Usage:     "run a local CarDex API with demo data",
		Action:    mockServerAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			cli.StringFlag{Name: "port", Usage: "listen port (overrides PORT)"},
			cli.BoolTFlag{Name: "seed", Usage: "seed the demo user and market data (overrides MOCK_DB_SEED)"},
		},
		Description: `Serve the CarDex routes from a gorm store; log in as demo / cardex`,
	}
)

func marketAction(c *cli.Context) error {
	logrus.WithField("cmd", "market").Debug("Starting market CMD")

	clientConfig := connectors.GetConfig()
	if baseURL := c.String("base-url"); baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	config := market.GetConfig()
	if username := c.String("username"); username != "" {
		config.Username = username
	}
	if limit := c.Int("limit"); limit > 0 {
		config.TradeLimit = limit
	}

	client := connectors.NewCardexClient(clientConfig, auth.NewSession())
	m := market.NewMarket(config, client, os.Stdin, os.Stdout)
	if err := m.Start(); err != nil {
		logrus.WithError(err).Error("Market CMD stopped")
		return err
	}
	return nil
}

func mockServerAction(c *cli.Context) error {
	logrus.Info("Starting mockserver CMD")

	dbConfig := database.GetConfig()
	if c.IsSet("seed") {
		dbConfig.Seed = c.BoolT("seed")
	}

	port := server.GetConfig().Port
	if p := c.String("port"); p != "" {
		port = p
	}

	ms := &mockserver.MockServer{
		Log:      logrus.WithField("cmd", "mockserver"),
		Port:     port,
		DBConfig: dbConfig,
	}
	if err := ms.Start(); err != nil {
		logrus.WithError(err).Error("Starting mockserver cmd")
		return err
	}
	return nil
}

func handlePanic() {
	if r := recover(); r != nil {
		logrus.WithError(fmt.Errorf("%+v", r)).Error("cardex panic")
	}
}
