package model

import (
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Username  string    `gorm:"size:100;unique;not null" json:"Username"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Role      UserRole  `gorm:"type:enum('user','admin');default:'user'" json:"Role"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"LastLogin"`
}

func (User) TableName() string {
	return "users"
}

// ActorContext 当前操作者身份，权限判定和记录创建都显式传入它，
// 不在核心逻辑里读任何全局会话状态。
type ActorContext struct {
	Username string
	Role     UserRole
}

func (a ActorContext) IsAdmin() bool {
	return a.Role == RoleAdmin
}
