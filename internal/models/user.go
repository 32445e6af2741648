package models

import "time"

const (
	UsernameMaxLength      = 150
	EmailMaxLength         = 254
	ConfirmationCodeLength = 10
)

type User struct {
	ID               uint      `gorm:"primaryKey"`
	Username         string    `gorm:"size:150;uniqueIndex;not null"`
	Email            string    `gorm:"size:254;uniqueIndex;not null"`
	FirstName        string    `gorm:"size:150"`
	LastName         string    `gorm:"size:150"`
	Bio              string    `gorm:"type:text"`
	Role             Role      `gorm:"size:16;not null"`
	ConfirmationCode string    `gorm:"size:10"`
	IsSuperuser      bool      `gorm:"not null;default:false"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
}

func (User) TableName() string {
	return "users"
}

// IsAdmin is true for the admin role and for superusers regardless of role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}

func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// OwnerID lets a user be the target of self-only object checks.
func (u *User) OwnerID() uint {
	return u.ID
}
