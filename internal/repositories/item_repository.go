package repositories

import (
	"errors"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"gorm.io/gorm"
)

// ErrTargetBoxNotFound 表示移动物品时目标箱子不存在
var ErrTargetBoxNotFound = errors.New("目标箱子未找到")

// ItemRepository 定义了物品数据仓库的接口
type ItemRepository interface {
	CreateItem(item *models.Item) (*models.Item, error)
	GetItems() ([]models.Item, error)
	GetItemsByBoxID(boxID int64) ([]models.Item, error)
	GetItemByID(id int64) (*models.Item, error)
	UpdateItem(id int64, updates map[string]interface{}) (*models.Item, error)
	DeleteItem(id int64) error
	// MoveItem 在一个事务内校验目标箱子存在并更新物品归属
	MoveItem(itemID, targetBoxID int64) (*models.Item, error)
	// SearchItems 按名称模糊查找物品，boxID 不为 nil 时限定在单个箱子内
	SearchItems(query string, boxID *int64) ([]models.Item, error)
}

// gormItemRepository 是 ItemRepository 的 GORM 实现
type gormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository 创建一个新的 gormItemRepository 实例
func NewGormItemRepository(db *gorm.DB) ItemRepository {
	return &gormItemRepository{db: db}
}

// CreateItem 在数据库中创建一个新的物品记录
func (r *gormItemRepository) CreateItem(item *models.Item) (*models.Item, error) {
	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// GetItems 返回全部物品
func (r *gormItemRepository) GetItems() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemsByBoxID 返回指定箱子内的全部物品
func (r *gormItemRepository) GetItemsByBoxID(boxID int64) ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Where("box_id = ?", boxID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItemByID 根据数据库 ID 查找物品
func (r *gormItemRepository) GetItemByID(id int64) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem 更新物品的部分字段
func (r *gormItemRepository) UpdateItem(id int64, updates map[string]interface{}) (*models.Item, error) {
	result := r.db.Model(&models.Item{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem 根据 ID 删除物品
func (r *gormItemRepository) DeleteItem(id int64) error {
	result := r.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// MoveItem 将物品移动到另一个箱子
func (r *gormItemRepository) MoveItem(itemID, targetBoxID int64) (*models.Item, error) {
	var item models.Item
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}

		var targetBox models.Box
		if err := tx.First(&targetBox, targetBoxID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTargetBoxNotFound
			}
			return err
		}

		item.BoxID = targetBox.ID
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchItems 按名称模糊查找物品（不区分大小写由 LIKE 默认行为保证）
func (r *gormItemRepository) SearchItems(query string, boxID *int64) ([]models.Item, error) {
	var items []models.Item
	tx := r.db.Where("name LIKE ?", "%"+query+"%")
	if boxID != nil {
		tx = tx.Where("box_id = ?", *boxID)
	}
	if err := tx.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
