package market

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"cardexcli/src/auth"
	"cardexcli/src/connectors"
	"cardexcli/src/controller"
	"cardexcli/src/display"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	prompt      = "cardex> "
	farewell    = "Exiting CarDex CLI. Thanks for playing!"
	goodbye     = "Goodbye!"
	notLoggedIn = "You are not logged in. Type 'login' to sign in."
)

// Market is the interactive CarDex live market terminal.
type Market struct {
	Log        *logrus.Entry
	Config     Config
	Client     *connectors.CardexClient
	Controller *controller.MarketController
	Display    *display.Display

	scanner *bufio.Scanner
	// terminalFD is stdin's descriptor when it is a terminal, else -1.
	terminalFD int
}

func NewMarket(config Config, client *connectors.CardexClient, in io.Reader, out io.Writer) *Market {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 1024), 1024*1024)

	m := &Market{
		Log:        logrus.WithField("cmd", "market"),
		Config:     config,
		Client:     client,
		Controller: controller.NewMarketController(client),
		Display:    display.New(out),
		scanner:    scanner,
		terminalFD: -1,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		m.terminalFD = int(f.Fd())
	}
	return m
}

// Start runs the market on stdin/stdout until exit, EOF, SIGINT or SIGTERM.
func (m *Market) Start() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	return m.Run(ctx)
}

// Run checks the server, logs in and then serves commands.
func (m *Market) Run(ctx context.Context) error {
	if err := m.Client.Health(ctx); err != nil {
		m.Log.WithError(err).Error("Health check failed")
		m.Display.Line("Failed to connect to CarDex server at %s. Exiting...", m.Client.BaseURL())
		return err
	}

	if err := m.login(ctx); err != nil {
		if isInterrupt(err) {
			m.sayGoodbye(true)
			return nil
		}
		return err
	}

	m.Display.ShowWelcome()

	for {
		m.Display.Prompt(prompt)
		line, err := m.readLine(ctx)
		if err != nil {
			if isInterrupt(err) {
				m.sayGoodbye(true)
				return nil
			}
			return err
		}

		if !m.execute(ctx, line) {
			m.sayGoodbye(false)
			return nil
		}
	}
}

// execute handles one command line; false means the user asked to leave.
func (m *Market) execute(ctx context.Context, line string) bool {
	command := strings.ToLower(strings.TrimSpace(line))

	switch command {
	case "":
	case "exit", "quit":
		return false
	case "help":
		m.Display.ShowHelp()
	case "vroom":
		m.Display.ShowCar()
	case "open":
		views, err := m.Controller.OpenTrades(ctx, m.Config.TradeLimit)
		if err != nil {
			m.report(err)
			return true
		}
		m.Display.ShowOpenTrades(views)
	case "trades":
		views, warnings, err := m.Controller.CompletedTrades(ctx, m.Config.TradeLimit)
		if err != nil {
			m.report(err)
			return true
		}
		for _, warning := range warnings {
			m.Display.Line("Warning: %v", warning)
		}
		m.Display.ShowCompletedTrades(views)
	case "shop":
		views, err := m.Controller.Collections(ctx)
		if err != nil {
			m.report(err)
			return true
		}
		m.Display.ShowPacks(views)
	case "collections":
		views, err := m.Controller.Collections(ctx)
		if err != nil {
			m.report(err)
			return true
		}
		m.Display.ShowCollections(views)
	case "login":
		// credentials from the environment were already tried at startup
		err := m.attemptLogin(ctx, "", "")
		switch {
		case err == nil, errors.Is(err, connectors.ErrInvalidCredentials):
		case isInterrupt(err):
			return false
		default:
			m.report(err)
		}
	default:
		m.Display.Line("Unknown command: '%s'. Type 'help' for available commands.", command)
	}
	return true
}

// report prints a command failure as one line and keeps the loop alive.
func (m *Market) report(err error) {
	m.Log.WithError(err).Debug("Command failed")

	var apiErr *connectors.APIError
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		m.Display.Line(notLoggedIn)
	case errors.Is(err, connectors.ErrInvalidCredentials):
		m.Display.Line("Invalid username or password.")
	case errors.As(err, &apiErr):
		m.Display.Line("Request failed: %s (HTTP %d on %s %s)",
			connectors.GetErrorMsg(apiErr.StatusCode), apiErr.StatusCode, apiErr.Method, apiErr.Path)
	default:
		m.Display.Line("Could not reach the CarDex server: %v", err)
	}
}

// login runs the startup login: configured credentials first, then prompts,
// for at most LoginAttempts tries. Running out of attempts is not fatal;
// the market opens unauthenticated and 'login' can be used later.
func (m *Market) login(ctx context.Context) error {
	attempts := m.Config.LoginAttempts
	if attempts < 1 {
		attempts = 1
	}

	username, password := m.Config.Username, m.Config.Password
	for i := 0; i < attempts; i++ {
		err := m.attemptLogin(ctx, username, password)
		if err == nil {
			return nil
		}
		if isInterrupt(err) {
			return err
		}
		if !errors.Is(err, connectors.ErrInvalidCredentials) {
			m.report(err)
			break
		}
		username, password = "", ""
	}

	m.Display.Line(notLoggedIn)
	return nil
}

// attemptLogin logs in once, prompting for whatever credential is empty.
func (m *Market) attemptLogin(ctx context.Context, username, password string) error {
	var err error
	if username == "" {
		m.Display.Prompt("Username: ")
		if username, err = m.readLine(ctx); err != nil {
			return err
		}
		username = strings.TrimSpace(username)
	}
	if password == "" {
		m.Display.Prompt("Password: ")
		if password, err = m.readPassword(ctx); err != nil {
			return err
		}
	}

	if err := m.Client.Login(ctx, username, password); err != nil {
		if errors.Is(err, connectors.ErrInvalidCredentials) {
			m.Display.Line("Invalid username or password.")
		}
		return err
	}

	m.Display.Line("Logged in as %s.", username)
	return nil
}

type inputResult struct {
	text string
	err  error
}

// await runs one blocking read so that a cancelled context is noticed while
// the user is idle at a prompt. Reads are started one at a time.
func await(ctx context.Context, read func() (string, error)) (string, error) {
	ch := make(chan inputResult, 1)
	go func() {
		text, err := read()
		ch <- inputResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.text, res.err
	}
}

func (m *Market) scanLine() (string, error) {
	if !m.scanner.Scan() {
		if err := m.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.scanner.Text(), nil
}

func (m *Market) readLine(ctx context.Context) (string, error) {
	return await(ctx, m.scanLine)
}

// readPassword hides the typed password when stdin is a terminal.
func (m *Market) readPassword(ctx context.Context) (string, error) {
	if m.terminalFD < 0 {
		return m.readLine(ctx)
	}

	state, err := term.GetState(m.terminalFD)
	if err != nil {
		return "", err
	}

	secret, err := await(ctx, func() (string, error) {
		raw, err := term.ReadPassword(m.terminalFD)
		return string(raw), err
	})
	if err != nil {
		// echo stays off if the read was abandoned
		_ = term.Restore(m.terminalFD, state)
	}
	m.Display.Line("")
	return secret, err
}

func isInterrupt(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}

func (m *Market) sayGoodbye(interrupted bool) {
	if interrupted {
		m.Display.Line("\n\n%s", farewell)
	}
	m.Display.Line(goodbye)
}
