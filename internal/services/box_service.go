package services

import (
	"errors"
	"log"
	"time"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"github.com/google/uuid"
)

// ErrBoxNotFound 表示箱子未找到
var ErrBoxNotFound = errors.New("箱子未找到")

// BoxService 定义了箱子服务的接口
type BoxService interface {
	GetAllBoxes() ([]models.Box, error)
	GetBoxByUUID(uuid string) (*models.Box, error)
	// CreateBox 先从号码池取号，再带着箱号持久化箱子记录
	CreateBox(box *models.Box) (*models.Box, error)
	UpdateBox(id int64, payload models.BoxUpdatePayload) (*models.Box, error)
	// DeleteBox 删除箱子记录后把箱号归还到号码池
	DeleteBox(id int64) error
}

// boxService 是 BoxService 的实现
type boxService struct {
	repo             repositories.BoxRepository
	boxNumberService BoxNumberService
}

// NewBoxService 创建一个新的 boxService 实例
func NewBoxService(repo repositories.BoxRepository, boxNumberService BoxNumberService) BoxService {
	return &boxService{repo: repo, boxNumberService: boxNumberService}
}

// GetAllBoxes 返回全部箱子及其物品
func (s *boxService) GetAllBoxes() ([]models.Box, error) {
	return s.repo.GetBoxes()
}

// GetBoxByUUID 根据 UUID 获取箱子详情
func (s *boxService) GetBoxByUUID(boxUUID string) (*models.Box, error) {
	box, err := s.repo.GetBoxByUUID(boxUUID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return box, nil
}

// CreateBox 处理创建箱子的业务逻辑。
// 先向号码池申请箱号，再持久化箱子；持久化失败时把号码归还，避免泄漏占用中的号码。
func (s *boxService) CreateBox(box *models.Box) (*models.Box, error) {
	if box.UUID == "" {
		box.UUID = uuid.NewString()
	}

	number, err := s.boxNumberService.GetNextAvailableBoxNumber()
	if err != nil {
		return nil, err
	}
	box.BoxNumber = &number

	createdBox, err := s.repo.CreateBox(box)
	if err != nil {
		if releaseErr := s.boxNumberService.ReleaseBoxNumber(&number); releaseErr != nil {
			log.Printf("Failed to release box number %d after create error: %v", number, releaseErr)
		}
		return nil, err
	}
	log.Printf("Box created with ID %d, UUID %s, number %d", createdBox.ID, createdBox.UUID, number)
	return createdBox, nil
}

// UpdateBox 处理更新箱子的业务逻辑。箱号不允许通过更新接口修改。
func (s *boxService) UpdateBox(id int64, payload models.BoxUpdatePayload) (*models.Box, error) {
	updates := make(map[string]interface{})
	if payload.CurrentRoom != nil {
		updates["current_room"] = *payload.CurrentRoom
	}
	if payload.TargetRoom != nil {
		updates["target_room"] = *payload.TargetRoom
	}
	if payload.Description != nil {
		updates["description"] = *payload.Description
	}
	if payload.IsFragile != nil {
		updates["is_fragile"] = *payload.IsFragile
	}
	if payload.NoStack != nil {
		updates["no_stack"] = *payload.NoStack
	}

	if len(updates) == 0 {
		return nil, errors.New("没有提供任何更新字段")
	}
	updates["updated_at"] = time.Now()

	updatedBox, err := s.repo.UpdateBox(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return updatedBox, nil
}

// DeleteBox 处理删除箱子的业务逻辑。
// 箱子记录删除成功后才归还箱号；归还遇到未知号码只告警，不阻塞删除。
func (s *boxService) DeleteBox(id int64) error {
	deletedBox, err := s.repo.DeleteBox(id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrBoxNotFound
		}
		return err
	}

	if err := s.boxNumberService.ReleaseBoxNumber(deletedBox.BoxNumber); err != nil {
		return err
	}
	log.Printf("Box with ID %d deleted", id)
	return nil
}
