package domain

import (
	"context"
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EmailAddress string    `gorm:"uniqueIndex;size:100;not null" json:"emailAddress"`
	Password     string    `gorm:"size:255;not null" json:"-"` // bcrypt hash
	JwtToken     *string   `gorm:"size:255" json:"-"`          // 最近一次签发的 token（后签覆盖先签）
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateToken(ctx context.Context, email, token string) error
}
