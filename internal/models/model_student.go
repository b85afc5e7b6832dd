package models

import "time"

// Student is the identity anchor. Managed by the catalog service; the policy
// services only ever read it (and lock its row, see policy.Serialized).
type Student struct {
	ID    string `gorm:"column:id;type:uuid;primary_key" json:"id"`
	Name  string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email string `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	// CreatedAt is managed by GORM and records the creation time.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is managed by GORM and records the update time.
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "student"
}
