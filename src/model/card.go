package model

import "time"

// Card is a single collectible card as served by GET /cards/{id}.
type Card struct {
	ID           string    `gorm:"primaryKey;size:64" json:"id"`
	Name         string    `gorm:"size:200" json:"name"`
	Grade        string    `gorm:"size:50" json:"grade"`
	Value        *int      `json:"value,omitempty"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CollectionID string    `gorm:"size:64;index" json:"collectionId,omitempty"`
	ImageURL     string    `gorm:"size:500" json:"imageUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName keeps the demo store table aligned with the API resource name.
func (Card) TableName() string {
	return "cards"
}
