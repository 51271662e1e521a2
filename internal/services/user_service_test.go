package services

import (
	"errors"
	"testing"

	"github.com/KuntzeM/BoxCopilot/configs"
	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
)

func newUserServiceForTest(t *testing.T) UserService {
	t.Helper()
	configs.LoadConfig()
	db := setupTestDB(t)
	return NewUserService(repositories.NewGormUserRepository(db))
}

func TestEnsureDefaultAdminCreatesAccountOnce(t *testing.T) {
	configs.LoadConfig()
	db := setupTestDB(t)
	repo := repositories.NewGormUserRepository(db)
	service := NewUserService(repo)

	if err := service.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("EnsureDefaultAdmin failed: %v", err)
	}

	count, err := repo.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 user after bootstrap, got %d", count)
	}

	// 再次调用不会创建第二个账号
	if err := service.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("Second EnsureDefaultAdmin failed: %v", err)
	}
	count, err = repo.CountUsers()
	if err != nil {
		t.Fatalf("CountUsers failed: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected bootstrap to be idempotent, got %d users", count)
	}

	var admin models.User
	if err := db.First(&admin).Error; err != nil {
		t.Fatalf("Failed to load admin user: %v", err)
	}
	if admin.Role != "admin" {
		t.Errorf("Expected role admin, got %q", admin.Role)
	}
	if admin.PasswordHash == configs.AppConfig.AdminPassword {
		t.Error("Password must be stored hashed, not in plain text")
	}
}

func TestAuthenticate(t *testing.T) {
	service := newUserServiceForTest(t)
	if err := service.EnsureDefaultAdmin(); err != nil {
		t.Fatalf("EnsureDefaultAdmin failed: %v", err)
	}

	user, err := service.Authenticate(configs.AppConfig.AdminUsername, configs.AppConfig.AdminPassword)
	if err != nil {
		t.Fatalf("Authenticate failed with valid credentials: %v", err)
	}
	if user.Username != configs.AppConfig.AdminUsername {
		t.Errorf("Expected username %q, got %q", configs.AppConfig.AdminUsername, user.Username)
	}

	// 密码错误和用户不存在返回同一个错误
	if _, err := service.Authenticate(configs.AppConfig.AdminUsername, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := service.Authenticate("nobody", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
