package services

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrItemNotFound 表示物品未找到
var ErrItemNotFound = errors.New("物品未找到")

// newNameCollator 创建物品名称排序用的 collator，不区分大小写。
// Collator 内部带可变缓冲，不能跨 goroutine 共享，每次排序新建一个。
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

// ItemService 定义了物品服务的接口
type ItemService interface {
	// GetAllItems 返回全部物品，按名称排序（不区分大小写）
	GetAllItems() ([]models.Item, error)
	GetItemsByBoxUUID(boxUUID string) ([]models.Item, error)
	CreateItem(item *models.Item) (*models.Item, error)
	UpdateItem(id int64, payload models.ItemUpdatePayload) (*models.Item, error)
	DeleteItem(id int64) error
	MoveItem(itemID, targetBoxID int64) (*models.Item, error)
	// MoveItems 批量移动物品，返回成功移动的数量；单个物品失败不会中断整批操作
	MoveItems(itemIDs []int64, targetBoxID int64) (int, error)
	SearchItems(query string, boxUUID string) ([]models.Item, error)
}

// itemService 是 ItemService 的实现
type itemService struct {
	repo    repositories.ItemRepository
	boxRepo repositories.BoxRepository
}

// NewItemService 创建一个新的 itemService 实例
func NewItemService(repo repositories.ItemRepository, boxRepo repositories.BoxRepository) ItemService {
	return &itemService{repo: repo, boxRepo: boxRepo}
}

// sortItemsByName 按名称对物品排序，不区分大小写
func sortItemsByName(items []models.Item) {
	collator := newNameCollator()
	sort.SliceStable(items, func(i, j int) bool {
		return collator.CompareString(items[i].Name, items[j].Name) < 0
	})
}

// GetAllItems 返回全部物品，按名称排序
func (s *itemService) GetAllItems() ([]models.Item, error) {
	items, err := s.repo.GetItems()
	if err != nil {
		return nil, err
	}
	sortItemsByName(items)
	return items, nil
}

// GetItemsByBoxUUID 返回指定箱子内的物品，按名称排序
func (s *itemService) GetItemsByBoxUUID(boxUUID string) ([]models.Item, error) {
	box, err := s.boxRepo.GetBoxByUUID(boxUUID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}

	items, err := s.repo.GetItemsByBoxID(box.ID)
	if err != nil {
		return nil, err
	}
	sortItemsByName(items)
	return items, nil
}

// CreateItem 处理创建物品的业务逻辑，归属箱子必须存在
func (s *itemService) CreateItem(item *models.Item) (*models.Item, error) {
	if _, err := s.boxRepo.GetBoxByID(item.BoxID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return s.repo.CreateItem(item)
}

// UpdateItem 处理更新物品的业务逻辑
func (s *itemService) UpdateItem(id int64, payload models.ItemUpdatePayload) (*models.Item, error) {
	updates := make(map[string]interface{})
	if payload.Name != nil {
		if strings.TrimSpace(*payload.Name) == "" {
			return nil, errors.New("物品名称不能为空")
		}
		updates["name"] = *payload.Name
	}
	if payload.Remarks != nil {
		updates["remarks"] = *payload.Remarks
	}

	if len(updates) == 0 {
		return nil, errors.New("没有提供任何更新字段")
	}
	updates["updated_at"] = time.Now()

	updatedItem, err := s.repo.UpdateItem(id, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return updatedItem, nil
}

// DeleteItem 处理删除物品的业务逻辑
func (s *itemService) DeleteItem(id int64) error {
	if err := s.repo.DeleteItem(id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

// MoveItem 将单个物品移动到另一个箱子
func (s *itemService) MoveItem(itemID, targetBoxID int64) (*models.Item, error) {
	item, err := s.repo.MoveItem(itemID, targetBoxID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		if errors.Is(err, repositories.ErrTargetBoxNotFound) {
			return nil, ErrBoxNotFound
		}
		return nil, err
	}
	return item, nil
}

// MoveItems 批量移动物品。目标箱子不存在时整批失败；单个物品缺失时跳过并继续。
func (s *itemService) MoveItems(itemIDs []int64, targetBoxID int64) (int, error) {
	if _, err := s.boxRepo.GetBoxByID(targetBoxID); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return 0, ErrBoxNotFound
		}
		return 0, err
	}

	moved := 0
	for _, itemID := range itemIDs {
		if _, err := s.repo.MoveItem(itemID, targetBoxID); err != nil {
			continue
		}
		moved++
	}
	return moved, nil
}

// SearchItems 按名称模糊查找物品，boxUUID 非空时限定在单个箱子内
func (s *itemService) SearchItems(query string, boxUUID string) ([]models.Item, error) {
	if strings.TrimSpace(query) == "" {
		return []models.Item{}, nil
	}

	var boxID *int64
	if boxUUID != "" {
		box, err := s.boxRepo.GetBoxByUUID(boxUUID)
		if err != nil {
			if errors.Is(err, repositories.ErrRecordNotFound) {
				return nil, ErrBoxNotFound
			}
			return nil, err
		}
		boxID = &box.ID
	}

	items, err := s.repo.SearchItems(query, boxID)
	if err != nil {
		return nil, err
	}
	sortItemsByName(items)
	return items, nil
}
