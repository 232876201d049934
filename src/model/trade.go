package model

import "time"

// TradeType tells whether a trade settles for coins or for another card.
// It is always derived from the presence of a counterpart card and never
// read from the server.
type TradeType string

const (
	TradeForPrice TradeType = "FOR_PRICE"
	TradeForCard  TradeType = "FOR_CARD"
)

// OpenTrade is an open marketplace listing (GET /trades).
type OpenTrade struct {
	ID         string    `gorm:"primaryKey;size:64" json:"id"`
	CardID     *string   `gorm:"size:64" json:"cardId,omitempty"`
	WantCardID *string   `gorm:"size:64" json:"wantCardId,omitempty"` // nil => priced listing
	Price      int       `json:"price"`
	Username   string    `gorm:"size:100;index" json:"username"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (OpenTrade) TableName() string {
	return "open_trades"
}

// CompletedTrade is an executed trade (GET /trades/history).
type CompletedTrade struct {
	ID             string  `gorm:"primaryKey;size:64" json:"id"`
	SellerCardID   *string `gorm:"size:64" json:"sellerCardId,omitempty"`
	BuyerCardID    *string `gorm:"size:64" json:"buyerCardId,omitempty"` // nil => trade was for price
	Price          int     `json:"price"`
	SellerUsername string  `gorm:"size:100" json:"sellerUsername,omitempty"`
	BuyerUsername  string  `gorm:"size:100" json:"buyerUsername"`
	// ExecutedDate is kept raw (ISO-8601, optional trailing Z); parsing
	// happens in the mapper so a malformed value never fails decoding.
	ExecutedDate string `gorm:"size:40;index" json:"executedDate"`
}

func (CompletedTrade) TableName() string {
	return "completed_trades"
}

// EnrichedOpenTrade is an OpenTrade with its card references resolved.
// A details pointer is set only when the id was present and resolved.
type EnrichedOpenTrade struct {
	OpenTrade
	CardDetails     *Card `json:"cardDetails,omitempty"`
	WantCardDetails *Card `json:"wantCardDetails,omitempty"`
}

// EnrichedCompletedTrade is a CompletedTrade with its card references resolved.
type EnrichedCompletedTrade struct {
	CompletedTrade
	SellerCardDetails *Card `json:"sellerCardDetails,omitempty"`
	BuyerCardDetails  *Card `json:"buyerCardDetails,omitempty"`
}

// OpenTradeView is the display-ready shape of an open listing.
type OpenTradeView struct {
	ID             string  `json:"id"`
	Vehicle        string  `json:"vehicle"`
	Grade          string  `json:"grade"`
	SellerUsername string  `json:"seller_username"`
	Price          int     `json:"price"`
	WantVehicle    *string `json:"want_vehicle"`
}

// Type is FOR_CARD when the lister asks for a card in return.
func (v OpenTradeView) Type() TradeType {
	if v.WantVehicle != nil {
		return TradeForCard
	}
	return TradeForPrice
}

// CompletedTradeView is the display-ready shape of an executed trade.
type CompletedTradeView struct {
	ID             string    `json:"id"`
	Vehicle        string    `json:"vehicle"`
	Grade          string    `json:"grade"`
	SellerUsername string    `json:"seller_username"`
	BuyerUsername  string    `json:"buyer_username"`
	Price          int       `json:"price"`
	BuyerVehicle   *string   `json:"buyer_vehicle"`
	ExecutedDate   time.Time `json:"executed_date"`
}

// SellerVehicle is the card the seller gave up; same as Vehicle.
func (v CompletedTradeView) SellerVehicle() string {
	return v.Vehicle
}

// Type is FOR_CARD when the buyer paid with a card.
func (v CompletedTradeView) Type() TradeType {
	if v.BuyerVehicle != nil {
		return TradeForCard
	}
	return TradeForPrice
}
