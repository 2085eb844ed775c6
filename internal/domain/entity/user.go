package entity

import (
	"time"
)

const (
	// ExperiencePerLevel 레벨 하나에 필요한 경험치
	ExperiencePerLevel = 100
)

// User 도메인 엔티티
type User struct {
	ID          string
	Email       string
	Username    string
	Password    string // bcrypt 해시
	Level       int
	Experience  int
	AvatarURL   string
	Bio         string
	Timezone    string
	IsActive    bool
	LastLoginAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser 새 사용자 엔티티 생성
func NewUser(id, email, username, passwordHash string) *User {
	now := time.Now()
	return &User{
		ID:         id,
		Email:      email,
		Username:   username,
		Password:   passwordHash,
		Level:      1,
		Experience: 0,
		Timezone:   "UTC",
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddExperience 경험치를 더하고 레벨을 다시 계산합니다. 레벨이 올랐으면 true.
func (u *User) AddExperience(xp int) bool {
	if xp <= 0 {
		return false
	}
	before := u.Level
	u.Experience += xp
	u.Level = LevelFor(u.Experience)
	u.UpdatedAt = time.Now()
	return u.Level > before
}

// RecordLogin 마지막 로그인 시각 갱신
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.UpdatedAt = at
}

// LevelFor 누적 경험치에 해당하는 레벨
func LevelFor(experience int) int {
	if experience < 0 {
		return 1
	}
	return 1 + experience/ExperiencePerLevel
}
