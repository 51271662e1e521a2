package repositories

import (
	"errors"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"gorm.io/gorm"
)

// ErrUsernameExists 表示该用户名已被占用
var ErrUsernameExists = errors.New("用户名已存在")

// UserRepository 定义了用户数据仓库的接口
type UserRepository interface {
	GetUserByUsername(username string) (*models.User, error)
	CountUsers() (int64, error)
	CreateUser(user *models.User) (*models.User, error)
}

// gormUserRepository 是 UserRepository 的 GORM 实现
type gormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository 创建一个新的 gormUserRepository 实例
func NewGormUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

// GetUserByUsername 根据用户名查找用户
func (r *gormUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountUsers 返回用户总数（不含已软删除的记录）
func (r *gormUserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// CreateUser 创建一个新用户
func (r *gormUserRepository) CreateUser(user *models.User) (*models.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	return user, nil
}
