package models

import "time"

// Account represents a registered user identity.
type Account struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(20);not null"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}

// TableName keeps the table name stable regardless of GORM naming strategy.
func (Account) TableName() string {
	return "accounts"
}

// RegistrationForm holds the raw fields of a registration submission.
type RegistrationForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Username string `json:"username" form:"username" validate:"required,username"`
	Password string `json:"password" form:"password" validate:"required,strongpassword"`
}
