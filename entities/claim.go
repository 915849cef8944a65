package entities

import (
	"github.com/google/uuid"
	"time"
)

type Claim struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FoodID        uuid.UUID `json:"food_id"`
	RequestedByID uuid.UUID `json:"requested_by_id"`
	Status        string    `json:"status"` // "IN ASTEPTARE", "APROBAT", "RESPINS"
	RequestedAt   time.Time `json:"requested_at"`

	Food        *Food `gorm:"foreignKey:FoodID"`
	RequestedBy *User `gorm:"foreignKey:RequestedByID"`
	Timestamp
}
