package model

// Collection is a themed set of cards; it doubles as a purchasable pack.
type Collection struct {
	ID          string `gorm:"primaryKey;size:64" json:"id"`
	Name        string `gorm:"size:200" json:"name"`
	Theme       string `gorm:"size:100" json:"theme,omitempty"`
	Description string `gorm:"type:text" json:"description"`
	CardCount   int    `json:"cardCount"`
	Price       int    `json:"price"`
	ImageURL    string `gorm:"size:500" json:"imageUrl,omitempty"`
}

func (Collection) TableName() string {
	return "collections"
}

// CollectionView is the display-ready shape of a collection or pack.
type CollectionView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CardCount   int    `json:"vehicle_count"`
	PackPrice   int    `json:"pack_price"`
}
