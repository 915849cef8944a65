package entities

import (
	"github.com/google/uuid"
)

type Group struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CreatedByID uuid.UUID `json:"created_by_id"`

	CreatedBy *User          `gorm:"foreignKey:CreatedByID"`
	Members   []*GroupMember `gorm:"foreignKey:GroupID"`
	Timestamp
}

type GroupMember struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	GroupID uuid.UUID `json:"group_id"`
	UserID  uuid.UUID `json:"user_id"`

	Group *Group `gorm:"foreignKey:GroupID"`
	User  *User  `gorm:"foreignKey:UserID"`
	Timestamp
}
