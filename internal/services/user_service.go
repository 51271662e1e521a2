package services

import (
	"errors"
	"log"

	"github.com/KuntzeM/BoxCopilot/configs"
	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials 表示用户名或密码错误
var ErrInvalidCredentials = errors.New("无效的用户名或密码")

// UserService 定义了用户服务的接口
type UserService interface {
	// EnsureDefaultAdmin 在用户表为空时创建默认管理员账号，应在启动时调用一次
	EnsureDefaultAdmin() error
	// Authenticate 校验用户名和密码，成功时返回用户记录
	Authenticate(username, password string) (*models.User, error)
}

// userService 是 UserService 的实现
type userService struct {
	repo repositories.UserRepository
}

// NewUserService 创建一个新的 userService 实例
func NewUserService(repo repositories.UserRepository) UserService {
	return &userService{repo: repo}
}

// EnsureDefaultAdmin 在没有任何用户时用配置中的默认凭证创建管理员
func (s *userService) EnsureDefaultAdmin() error {
	count, err := s.repo.CountUsers()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("No users found. Creating default admin account...")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(configs.AppConfig.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     configs.AppConfig.AdminUsername,
		PasswordHash: string(hashedPassword),
		Role:         "admin",
	}
	if _, err := s.repo.CreateUser(admin); err != nil {
		return err
	}
	log.Printf("Default admin account created with username: %s", configs.AppConfig.AdminUsername)
	return nil
}

// Authenticate 校验登录凭证。用户不存在和密码错误返回同一个错误，避免泄露用户是否存在。
func (s *userService) Authenticate(username, password string) (*models.User, error) {
	user, err := s.repo.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
