package model

import "gorm.io/gorm"

// User is the authentication identity. The HR-facing identity lives on
// Profile; the two are linked one-to-one.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	IsActive bool   `json:"is_active" gorm:"default:true"`

	Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID"`
}
