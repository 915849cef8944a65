package entities

import (
	"github.com/google/uuid"
	"time"
)

type Food struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	Quantity       int       `json:"quantity"`
	ExpirationDate time.Time `json:"expiration_date"`
	Status         string    `json:"status"` // "DISPONIBIL", "REZERVAT", "CONSUMAT"
	ImageURL       string    `json:"image_url,omitempty"`

	Owner  *User    `gorm:"foreignKey:OwnerID"`
	Claims []*Claim `gorm:"foreignKey:FoodID"`
	Timestamp
}
