package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(). Email is stored lower-cased; the unique index on it is
// what makes concurrent duplicate signups lose at the database, not just in
// the pre-check.
type AccountModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Salt           string    `gorm:"type:varchar(64);not null"`
	PasswordDigest string    `gorm:"type:varchar(64);not null"`
	Admin          bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Posts []PostModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// PostModel mirrors the 'posts' table. AccountID references accounts.id and
// cascades on account deletion.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
