package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/irlquest-backend/internal/domain/entity"
	"github.com/wekeepgrowing/irlquest-backend/internal/domain/repository"
	"github.com/wekeepgrowing/irlquest-backend/internal/infrastructure/db/model"
)

type UserRepositoryImpl struct {
	db *gorm.DB
}

// NewUserRepository 사용자 레포지토리 구현체 생성
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// 도메인 엔티티를 DB 모델로 변환
func toUserModel(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		Password:    user.Password,
		Level:       user.Level,
		Experience:  user.Experience,
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		Timezone:    user.Timezone,
		IsActive:    user.IsActive,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// DB 모델을 도메인 엔티티로 변환
func toUserEntity(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		Username:    m.Username,
		Password:    m.Password,
		Level:       m.Level,
		Experience:  m.Experience,
		AvatarURL:   m.AvatarURL,
		Bio:         m.Bio,
		Timezone:    m.Timezone,
		IsActive:    m.IsActive,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, query string, arg interface{}) (*entity.User, error) {
	var userModel model.UserModel

	if err := r.db.WithContext(ctx).Where(query, arg).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // 사용자를 찾지 못함
		}
		return nil, err
	}

	return toUserEntity(&userModel), nil
}

// FindByID ID로 사용자 조회
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByEmail 이메일로 사용자 조회 (대소문자 무시)
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "LOWER(email) = LOWER(?)", email)
}

// FindByUsername 사용자명으로 사용자 조회
func (r *UserRepositoryImpl) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

// Create 새 사용자 생성
func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}

	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt
	return nil
}

// Update 사용자 정보 업데이트
func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	userModel := toUserModel(user)

	return r.db.WithContext(ctx).Save(userModel).Error
}

// AddExperience 경험치를 더하고 레벨을 재계산합니다 (행 잠금).
// 사용자가 없으면 nil을 반환합니다.
func (r *UserRepositoryImpl) AddExperience(ctx context.Context, id string, xp int) (*entity.User, error) {
	var updated *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.UserModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&userModel).Error; err != nil {
			return err
		}

		user := toUserEntity(&userModel)
		user.AddExperience(xp)

		if err := tx.Model(&model.UserModel{}).Where("id = ?", id).Updates(map[string]interface{}{
			"experience": user.Experience,
			"level":      user.Level,
		}).Error; err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return updated, nil
}
