package display

import (
	"fmt"
	"io"
	"strings"
	"time"

	"cardexcli/src/model"
	"cardexcli/src/utils"

	"github.com/dustin/go-humanize"
)

const width = 80

var divider = strings.Repeat("═", width)

const logo = `
═══════════════════════════════════════════════════════════════════════════════
    MNNNNNNNN       NNNN      NNNNNNNNM   NNNNNNNNN    MNNNNNNNN   NNN    NNN
   NNN     NNN    NNN  NNN    NN     NNM  NNM    NNN   MNN          NNN  NNN
  NNN            NNNNNNNNNN   NNMMMNNM    NNM      NN  MNNNNNNNN      NNNN
   NNN     NNN   NN     NNN   NN    NNM   NNM     NN   MNN          NNN  NNN
    MNNNNNNNM   NNM      NNN  NN     NNM  NNNNNNNNN    MNNNNNNNN   NNN    NNN
════════════════════════════════ L I V E   M A R K E T ═════════════════════════
`

const car = `
                  ______
                 /|_||_\` + "`" + `.__
                (   _    _ _\
                =` + "`" + `-(_)--(_)-'

                beep beep
`

const help = `
Available Commands:
  open        - Show the latest open trades
  trades      - Show the latest completed trades
  shop        - View all available packs and their prices
  collections - View all available collections and their prices
  login       - Log in again with different credentials
  vroom       - Show a cool car (vroom vroom!)
  help        - Show this help message
  exit        - Exit the application
`

// Stars renders a grade tier as the star strip shown on a card.
func Stars(tier model.GradeTier) string {
	switch tier {
	case model.TierFactory:
		return "★"
	case model.TierLimited:
		return "★ ★"
	case model.TierNismo:
		return "★ ★ ★"
	default:
		return "¯¯¯"
	}
}

// Coins formats an amount as ©15,000.
func Coins(amount int) string {
	return "©" + humanize.Comma(int64(amount))
}

// Display writes market data as boxed text.
type Display struct {
	out io.Writer
	now func() time.Time
}

func New(out io.Writer) *Display {
	return &Display{out: out, now: time.Now}
}

func (d *Display) println(a ...any) {
	_, _ = fmt.Fprintln(d.out, a...)
}

func (d *Display) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(d.out, format, a...)
}

func center(s string) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func (d *Display) header(title string) {
	d.println()
	d.println(divider)
	d.println(center(title))
	d.println(divider)
	d.println()
}

// pad right-aligns or left-aligns s inside a box cell of n runes.
func pad(s string, n int, right bool) string {
	gap := n - len([]rune(s))
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func (d *Display) ShowLogo() {
	d.println(logo)
}

func (d *Display) ShowWelcome() {
	d.ShowLogo()
	d.println("Welcome to CarDex Live Market!")
	d.println("Type 'help' for available commands or 'exit' to quit.")
	d.println()
}

func (d *Display) ShowCar() {
	d.println(car)
}

func (d *Display) ShowHelp() {
	d.println(help)
}

// Prompt prints text without a trailing newline.
func (d *Display) Prompt(text string) {
	_, _ = io.WriteString(d.out, text)
}

// Line prints a single user-facing message.
func (d *Display) Line(format string, a ...any) {
	d.printf(format+"\n", a...)
}

func (d *Display) ShowOpenTrades(trades []model.OpenTradeView) {
	if len(trades) == 0 {
		d.println("No open trades found.")
		d.println()
		return
	}

	d.header(fmt.Sprintf("OPEN TRADES - Latest %d", len(trades)))
	for _, trade := range trades {
		stars := Stars(model.ParseGradeTier(trade.Grade))

		wants := Coins(trade.Price)
		value := Coins(trade.Price)
		if trade.Type() == model.TradeForCard {
			wants = *trade.WantVehicle
			value = "TRADE"
		}

		d.println("┌────────────┐")
		d.printf("│ %s │\n", pad(stars, 10, false))
		d.printf("│            │  %s\n", trade.SellerUsername)
		d.printf("│  C A R     │  %s\n", trade.Vehicle)
		d.println("│     D E X  │")
		d.println("│            │  ASKING FOR")
		d.printf("│ %s │  %s\n", pad(value, 10, true), wants)
		d.println("└────────────┘")
		d.println()
	}
	d.println(divider)
	d.println()
}

func (d *Display) ShowCompletedTrades(trades []model.CompletedTradeView) {
	if len(trades) == 0 {
		d.println("No completed trades found.")
		d.println()
		return
	}

	now := d.now()
	d.header(fmt.Sprintf("COMPLETED TRADES - Latest %d", len(trades)))
	for _, trade := range trades {
		stars := Stars(model.ParseGradeTier(trade.Grade))
		timeAgo := utils.FormatTimeAgo(trade.ExecutedDate, now)

		line := fmt.Sprintf("%s → %s", Coins(trade.Price), trade.Vehicle)
		if trade.Type() == model.TradeForCard {
			line = fmt.Sprintf("%s → %s", *trade.BuyerVehicle, trade.SellerVehicle())
		}

		d.println("┌────────────┐")
		d.printf("│ %s │\n", pad(stars, 10, false))
		d.printf("│            │  %s\n", trade.BuyerUsername)
		d.printf("│  C A R     │  %s\n", timeAgo)
		d.println("│     D E X  │")
		d.printf("│            │  %s\n", line)
		d.printf("│ %s │\n", pad(Coins(trade.Price), 10, true))
		d.println("└────────────┘")
		d.println()
	}
	d.println(divider)
	d.println()
}

func (d *Display) ShowPacks(packs []model.CollectionView) {
	if len(packs) == 0 {
		d.println("No packs available.")
		d.println()
		return
	}

	d.header("SHOP - AVAILABLE PACKS")
	for _, pack := range packs {
		d.println(" ╦╦╦╦╦╦╦╦╦╦╦╦╦╦")
		d.println(" ╠╩╩╩╩╩╩╩╩╩╩╩╩╣")
		d.println(" │            │")
		d.printf(" │ B O O S T  │  %s\n", pack.Name)
		d.printf(" │    P A C K │  %d possible cards\n", pack.CardCount)
		d.printf(" │            │  %s\n", Coins(pack.PackPrice))
		d.println(" │            │")
		d.println(" │            │")
		d.println(" ╠╦╦╦╦╦╦╦╦╦╦╦╦╣")
		d.println(" ╩╩╩╩╩╩╩╩╩╩╩╩╩╩")
		d.println()
	}
	d.println(divider)
	d.println()
}

func (d *Display) ShowCollections(collections []model.CollectionView) {
	if len(collections) == 0 {
		d.println("No collections available.")
		d.println()
		return
	}

	d.header("ALL COLLECTIONS")
	for i, col := range collections {
		d.printf("[%d] %s\n", i+1, col.Name)
		d.println(strings.Repeat("-", width))
		d.printf("  Price:       %s\n", Coins(col.PackPrice))
		d.printf("  Vehicles:    %d\n", col.CardCount)
		d.printf("  Description: %s\n", col.Description)
		d.println()
	}
	d.println(divider)
	d.println()
}
