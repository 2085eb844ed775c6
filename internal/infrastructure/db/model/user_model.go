package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel 데이터베이스 ORM 모델
type UserModel struct {
	ID          string     `gorm:"type:varchar(16);primaryKey" json:"id"`
	Email       string     `gorm:"size:250;not null;uniqueIndex" json:"email"`
	Username    string     `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Password    string     `gorm:"size:250;not null" json:"-"`
	Level       int        `gorm:"not null;default:1" json:"level"`
	Experience  int        `gorm:"not null;default:0" json:"experience"`
	AvatarURL   string     `gorm:"size:500" json:"avatar_url,omitempty"`
	Bio         string     `gorm:"type:text" json:"bio,omitempty"`
	Timezone    string     `gorm:"size:64;default:'UTC'" json:"timezone"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// 메타데이터 필드
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName 테이블 이름 지정
func (UserModel) TableName() string {
	return "users"
}
