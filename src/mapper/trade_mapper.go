package mapper

import (
	"fmt"
	"strings"

	"cardexcli/src/model"
	"cardexcli/src/utils"

	logger "github.com/sirupsen/logrus"
)

const (
	UnknownVehicle    = "Unknown Vehicle"
	UnknownUser       = "Unknown"
	UnknownCollection = "Unknown Collection"
	NoDescription     = "No description available"
)

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func vehicleName(card *model.Card) string {
	if card == nil {
		return UnknownVehicle
	}
	return orDefault(card.Name, UnknownVehicle)
}

func gradeLabel(card *model.Card) string {
	if card == nil {
		return model.DefaultGrade
	}
	return strings.ToUpper(orDefault(card.Grade, model.DefaultGrade))
}

// counterpartName is nil when there is no counterpart card, which makes the
// view's Type() FOR_PRICE.
func counterpartName(card *model.Card) *string {
	if card == nil {
		return nil
	}
	name := vehicleName(card)
	return &name
}

// TransformOpenTrade maps an enriched listing to its display shape.
func TransformOpenTrade(trade model.EnrichedOpenTrade) model.OpenTradeView {
	return model.OpenTradeView{
		ID:             trade.ID,
		Vehicle:        vehicleName(trade.CardDetails),
		Grade:          gradeLabel(trade.CardDetails),
		SellerUsername: orDefault(trade.Username, UnknownUser),
		Price:          trade.Price,
		WantVehicle:    counterpartName(trade.WantCardDetails),
	}
}

// TransformCompletedTrade maps an enriched trade to its display shape. The
// view is always complete; the returned error is only a warning that the
// execution date could not be parsed and the current time was used.
func TransformCompletedTrade(trade model.EnrichedCompletedTrade) (model.CompletedTradeView, error) {
	view := model.CompletedTradeView{
		ID:             trade.ID,
		Vehicle:        vehicleName(trade.SellerCardDetails),
		Grade:          gradeLabel(trade.SellerCardDetails),
		SellerUsername: orDefault(trade.SellerUsername, UnknownUser),
		BuyerUsername:  orDefault(trade.BuyerUsername, UnknownUser),
		Price:          trade.Price,
		BuyerVehicle:   counterpartName(trade.BuyerCardDetails),
	}

	executed, err := utils.ParseTimestamp(trade.ExecutedDate)
	view.ExecutedDate = executed
	if err != nil {
		logger.WithFields(map[string]any{
			"mapper":       "TransformCompletedTrade",
			"tradeId":      trade.ID,
			"executedDate": trade.ExecutedDate,
		}).WithError(err).Warn("Unparseable execution date, using current time")
		return view, fmt.Errorf("trade %s: %w, showing current time", orDefault(trade.ID, "?"), err)
	}

	return view, nil
}
