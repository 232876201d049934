package migrations

import (
	"fmt"
	"time"

	"cardexcli/src/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DemoUsername = "demo"
	DemoPassword = "cardex"

	demoStartingCurrency = 25000
	executedDateLayout   = "2006-01-02T15:04:05Z"
)

// seedDemoUser creates the account the market client logs in with by default.
func seedDemoUser(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := model.User{
		ID:        "user-demo",
		Username:  DemoUsername,
		Password:  string(hashed),
		Currency:  demoStartingCurrency,
		CreatedAt: time.Now().UTC(),
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func demoCards(now time.Time) []model.Card {
	card := func(id, name, grade, collectionID string, value int) model.Card {
		v := value
		return model.Card{
			ID:           id,
			Name:         name,
			Grade:        grade,
			Value:        &v,
			CollectionID: collectionID,
			CreatedAt:    now,
		}
	}

	return []model.Card{
		card("card-civic-type-r", "2021 Honda Civic Type R", "LIMITED_RUN", "col-002", 11000),
		card("card-supra-a80", "1998 Toyota Supra", "NISMO", "col-001", 16000),
		card("card-350z", "2003 Nissan 350Z", "FACTORY", "col-003", 4000),
		card("card-wrx-sti", "2019 Subaru WRX STI", "LIMITED_RUN", "col-002", 8500),
		card("card-rx7-fc", "1991 Mazda RX-7 FC", "FACTORY", "col-003", 6000),
		card("card-gtr-r35", "2017 Nissan GT-R", "NISMO", "col-004", 18000),
		card("card-s2000", "2000 Honda S2000", "LIMITED_RUN", "col-001", 8000),
		card("card-skyline-r34", "1999 Nissan Skyline GT-R R34", "NISMO", "col-004", 15000),
		card("card-supra-a90", "2020 Toyota Supra", "LIMITED_RUN", "col-002", 9500),
		card("card-rx7-fd-95", "1995 Mazda RX-7", "LIMITED_RUN", "col-001", 9000),
		card("card-370z", "2015 Nissan 370Z", "FACTORY", "col-003", 5000),
		card("card-rx7-fd-93", "1993 Mazda RX-7 FD", "NISMO", "col-001", 12000),
		card("card-nsx", "2002 Acura NSX", "NISMO", "col-001", 14000),
		card("card-mustang", "1969 Ford Mustang Boss 429", "FACTORY", "col-005", 7000),
	}
}

func demoCollections() []model.Collection {
	return []model.Collection{
		{ID: "col-001", Name: "JDM Legends", Theme: "jdm", CardCount: 25, Price: 1000, Description: "Iconic Japanese sports cars from the 90s and 2000s"},
		{ID: "col-002", Name: "Modern Marvels", Theme: "modern", CardCount: 30, Price: 1500, Description: "The latest high-performance vehicles"},
		{ID: "col-003", Name: "Drift Masters", Theme: "drift", CardCount: 20, Price: 1200, Description: "Cars built for drifting and sideways fun"},
		{ID: "col-004", Name: "Nismo Collection", Theme: "nismo", CardCount: 15, Price: 2000, Description: "Rare Nissan Motorsport International editions"},
		{ID: "col-005", Name: "Classic American Muscle", Theme: "muscle", CardCount: 22, Price: 1800, Description: "Powerful V8 monsters from the USA"},
	}
}

func demoOpenTrades(now time.Time) []model.OpenTrade {
	listing := func(id, cardID, wantCardID, username string, price int, age time.Duration) model.OpenTrade {
		trade := model.OpenTrade{
			ID:        id,
			CardID:    &cardID,
			Price:     price,
			Username:  username,
			CreatedAt: now.Add(-age),
		}
		if wantCardID != "" {
			trade.WantCardID = &wantCardID
		}
		return trade
	}

	return []model.OpenTrade{
		listing("open-001", "card-civic-type-r", "", "FastCars", 12000, 2*time.Minute),
		listing("open-002", "card-supra-a80", "card-gtr-r35", "JDMCollector", 0, 10*time.Minute),
		listing("open-003", "card-350z", "", "DriftKing", 4500, 25*time.Minute),
		listing("open-004", "card-wrx-sti", "", "TurboLover", 9000, 50*time.Minute),
		listing("open-005", "card-rx7-fc", "card-s2000", "RotaryLife", 0, 3*time.Hour),
	}
}

func demoCompletedTrades(now time.Time) []model.CompletedTrade {
	executed := func(id, sellerCardID, buyerCardID, seller, buyer string, price int, age time.Duration) model.CompletedTrade {
		trade := model.CompletedTrade{
			ID:             id,
			SellerCardID:   &sellerCardID,
			Price:          price,
			SellerUsername: seller,
			BuyerUsername:  buyer,
			ExecutedDate:   now.Add(-age).Format(executedDateLayout),
		}
		if buyerCardID != "" {
			trade.BuyerCardID = &buyerCardID
		}
		return trade
	}

	return []model.CompletedTrade{
		executed("trade-001", "card-skyline-r34", "", "SpeedDemon", "CarCollector", 15000, 5*time.Minute),
		executed("trade-002", "card-supra-a90", "card-rx7-fd-95", "JDMKing", "TurboFan", 0, 15*time.Minute),
		executed("trade-003", "card-370z", "", "DriftMaster", "NissanFan", 5000, time.Hour),
		executed("trade-004", "card-s2000", "", "HondaLife", "VtecKicker", 8500, 2*time.Hour),
		executed("trade-005", "card-rx7-fd-93", "card-nsx", "RotaryFan", "ClassicCollector", 0, 3*time.Hour),
	}
}

// seedDemoMarket fills the store with the demo market data.
func seedDemoMarket(db *gorm.DB) error {
	now := time.Now().UTC()

	collections := demoCollections()
	if err := db.Create(&collections).Error; err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}
	cards := demoCards(now)
	if err := db.Create(&cards).Error; err != nil {
		return fmt.Errorf("seed cards: %w", err)
	}
	open := demoOpenTrades(now)
	if err := db.Create(&open).Error; err != nil {
		return fmt.Errorf("seed open trades: %w", err)
	}
	history := demoCompletedTrades(now)
	if err := db.Create(&history).Error; err != nil {
		return fmt.Errorf("seed completed trades: %w", err)
	}
	return nil
}
