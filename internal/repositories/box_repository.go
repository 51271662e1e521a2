package repositories

import (
	"errors"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"gorm.io/gorm"
)

// ErrBoxUUIDConflict 表示该 UUID 的箱子记录已存在
var ErrBoxUUIDConflict = errors.New("该箱子的记录已存在")

// BoxRepository 定义了箱子数据仓库的接口
type BoxRepository interface {
	CreateBox(box *models.Box) (*models.Box, error)
	// GetBoxes 返回所有箱子及其物品，按箱号降序、ID 降序排列
	GetBoxes() ([]models.Box, error)
	GetBoxByUUID(uuid string) (*models.Box, error)
	GetBoxByID(id int64) (*models.Box, error)
	UpdateBox(id int64, updates map[string]interface{}) (*models.Box, error)
	// DeleteBox 在一个事务内删除箱子及其所有物品，返回被删除的箱子（调用方据此归还箱号）
	DeleteBox(id int64) (*models.Box, error)
	// ListAllByCreationTx 返回全部箱子，按创建时间升序、空值最后排列（迁移的确定性顺序）
	ListAllByCreationTx(tx *gorm.DB) ([]models.Box, error)
	// UpdateBoxNumberTx 在调用方事务内把分配到的箱号写回箱子记录
	UpdateBoxNumberTx(tx *gorm.DB, boxID int64, number int) error
}

// gormBoxRepository 是 BoxRepository 的 GORM 实现
type gormBoxRepository struct {
	db *gorm.DB
}

// NewGormBoxRepository 创建一个新的 gormBoxRepository 实例
func NewGormBoxRepository(db *gorm.DB) BoxRepository {
	return &gormBoxRepository{db: db}
}

// CreateBox 在数据库中创建一个新的箱子记录
func (r *gormBoxRepository) CreateBox(box *models.Box) (*models.Box, error) {
	if err := r.db.Create(box).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrBoxUUIDConflict
		}
		return nil, err
	}
	return box, nil
}

// GetBoxes 从数据库中获取全部箱子及其物品
func (r *gormBoxRepository) GetBoxes() ([]models.Box, error) {
	var boxes []models.Box
	err := r.db.Preload("Items").
		Order("box_number desc").
		Order("id desc").
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// GetBoxByUUID 根据 UUID 查找箱子
func (r *gormBoxRepository) GetBoxByUUID(uuid string) (*models.Box, error) {
	var box models.Box
	if err := r.db.Preload("Items").Where("uuid = ?", uuid).First(&box).Error; err != nil {
		return nil, err
	}
	return &box, nil
}

// GetBoxByID 根据数据库 ID 查找箱子
func (r *gormBoxRepository) GetBoxByID(id int64) (*models.Box, error) {
	var box models.Box
	if err := r.db.Preload("Items").First(&box, id).Error; err != nil {
		return nil, err
	}
	return &box, nil
}

// UpdateBox 更新箱子的部分字段
func (r *gormBoxRepository) UpdateBox(id int64, updates map[string]interface{}) (*models.Box, error) {
	result := r.db.Model(&models.Box{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var box models.Box
	if err := r.db.First(&box, id).Error; err != nil {
		return nil, err // 理论上此时应该能找到
	}
	return &box, nil
}

// DeleteBox 删除箱子及其物品。物品在同一事务内显式删除，不依赖外键级联。
func (r *gormBoxRepository) DeleteBox(id int64) (*models.Box, error) {
	var box models.Box
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&box, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecordNotFound
			}
			return err
		}
		if err := tx.Where("box_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Box{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &box, nil
}

// ListAllByCreationTx 返回全部箱子，创建时间升序、空值最后。
// 这个顺序决定了迁移时多个缺号箱子各自拿到哪个号码，必须保持稳定。
func (r *gormBoxRepository) ListAllByCreationTx(tx *gorm.DB) ([]models.Box, error) {
	var boxes []models.Box
	err := tx.Order("created_at IS NULL").
		Order("created_at asc").
		Order("id asc").
		Find(&boxes).Error
	if err != nil {
		return nil, err
	}
	return boxes, nil
}

// UpdateBoxNumberTx 把箱号写回箱子记录
func (r *gormBoxRepository) UpdateBoxNumberTx(tx *gorm.DB, boxID int64, number int) error {
	result := tx.Model(&models.Box{}).Where("id = ?", boxID).Update("box_number", number)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
