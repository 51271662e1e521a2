package repositories

import (
	"errors"
	"strings"
	"time"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"gorm.io/gorm"
)

// ErrRecordNotFound 表示记录未找到，可以重用 gorm 的错误或自定义
var ErrRecordNotFound = gorm.ErrRecordNotFound

// ErrPoolConflict 表示并发分配冲突重试次数已用尽
var ErrPoolConflict = errors.New("箱号分配冲突，重试次数已用尽")

// acquireMaxRetries 单次分配内因并发冲突允许的最大重试次数。
// 冲突通过带条件的 UPDATE（RowsAffected 校验）和主键唯一约束检测，对调用方透明。
const acquireMaxRetries = 5

// BoxNumberPoolRepository 定义了箱号池数据仓库的接口。
// 号码池是箱号的唯一事实来源："下一个号码"永远从持久化的行推导，从不缓存在进程内存中。
type BoxNumberPoolRepository interface {
	// AcquireNextNumber 在自身事务内取出最小可用箱号；池中无可用号码时铸造 max+1
	AcquireNextNumber() (int, error)
	// AcquireNextNumberTx 与 AcquireNextNumber 语义相同，但运行在调用方提供的事务内（迁移时使用）
	AcquireNextNumberTx(tx *gorm.DB) (int, error)
	// ReleaseNumber 将箱号标记为可用。号码不存在时返回 (false, nil)，是否告警由调用方决定。
	// 归还时有意不更新 last_used_at，该字段记录的是最近一次发放。
	ReleaseNumber(number int) (bool, error)
	// ReserveNumberTx 幂等地保证 number 存在对应的池记录且处于占用状态（迁移的预留原语）
	ReserveNumberTx(tx *gorm.DB, number int) error
	CountTotal() (int64, error)
	CountAvailable() (int64, error)
	// MaxNumber 返回已铸造的最大箱号，池为空时返回 0
	MaxNumber() (int, error)
	// AvailableNumbers 返回所有可用箱号，升序排列
	AvailableNumbers() ([]int, error)
}

// gormBoxNumberPoolRepository 是 BoxNumberPoolRepository 的 GORM 实现
type gormBoxNumberPoolRepository struct {
	db *gorm.DB
}

// NewGormBoxNumberPoolRepository 创建一个新的 gormBoxNumberPoolRepository 实例
func NewGormBoxNumberPoolRepository(db *gorm.DB) BoxNumberPoolRepository {
	return &gormBoxNumberPoolRepository{db: db}
}

// AcquireNextNumber 在一个事务内完成"查最小可用号码并标记占用"的序列。
// SQLite 在多连接竞争写锁时会返回 busy/locked，这类错误对调用方透明：
// 整个事务会被重新执行，而不是把冲突暴露给创建箱子的请求。
func (r *gormBoxNumberPoolRepository) AcquireNextNumber() (int, error) {
	var number int
	var err error
	for attempt := 0; attempt < acquireMaxRetries; attempt++ {
		err = r.db.Transaction(func(tx *gorm.DB) error {
			n, err := r.acquire(tx)
			if err != nil {
				return err
			}
			number = n
			return nil
		})
		if err == nil {
			return number, nil
		}
		if !isBusyError(err) {
			return 0, err
		}
		time.Sleep(time.Duration(attempt+1) * 10 * time.Millisecond)
	}
	return 0, ErrPoolConflict
}

// AcquireNextNumberTx 在调用方事务内执行分配，迁移流程用它把预留与分配合并成一个原子单元
func (r *gormBoxNumberPoolRepository) AcquireNextNumberTx(tx *gorm.DB) (int, error) {
	return r.acquire(tx)
}

// acquire 执行分配的核心序列：
//  1. 取 is_available = true 中 box_number 最小的一行，用带 is_available 条件的
//     UPDATE 标记占用；RowsAffected 为 0 说明号码刚被并发调用方抢走，重新查询。
//  2. 池中没有可用号码时铸造 max+1 的新记录，主键唯一约束兜底并发铸造。
func (r *gormBoxNumberPoolRepository) acquire(tx *gorm.DB) (int, error) {
	for attempt := 0; attempt < acquireMaxRetries; attempt++ {
		var entry models.BoxNumberPool
		err := tx.Where("is_available = ?", true).Order("box_number asc").First(&entry).Error
		if err == nil {
			now := time.Now()
			result := tx.Model(&models.BoxNumberPool{}).
				Where("box_number = ? AND is_available = ?", entry.BoxNumber, true).
				Updates(map[string]interface{}{"is_available": false, "last_used_at": now})
			if result.Error != nil {
				return 0, result.Error
			}
			if result.RowsAffected == 0 {
				continue // 号码已被并发占用，重试
			}
			return entry.BoxNumber, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, err
		}

		// 池中没有可用号码：铸造新号码
		var maxNumber int
		if err := tx.Model(&models.BoxNumberPool{}).
			Select("COALESCE(MAX(box_number), 0)").Scan(&maxNumber).Error; err != nil {
			return 0, err
		}
		now := time.Now()
		newEntry := models.BoxNumberPool{
			BoxNumber:   maxNumber + 1,
			IsAvailable: false,
			LastUsedAt:  &now,
		}
		if err := tx.Create(&newEntry).Error; err != nil {
			if isUniqueConstraintError(err) {
				continue // 并发调用方抢先铸造了同一个号码，重试
			}
			return 0, err
		}
		return newEntry.BoxNumber, nil
	}
	return 0, ErrPoolConflict
}

// ReleaseNumber 将号码归还到池中
func (r *gormBoxNumberPoolRepository) ReleaseNumber(number int) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var entry models.BoxNumberPool
		if err := tx.Where("box_number = ?", number).First(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // 归还未知号码被容忍，交给服务层记录告警
			}
			return err
		}
		found = true
		if entry.IsAvailable {
			return nil
		}
		return tx.Model(&entry).Update("is_available", true).Error
	})
	if err != nil {
		return false, err
	}
	return found, nil
}

// ReserveNumberTx 为已被箱子占用的号码补建池记录并标记占用。
// 对已存在且已占用的记录不做任何改动，因此每次重启重复调用是安全的。
func (r *gormBoxNumberPoolRepository) ReserveNumberTx(tx *gorm.DB, number int) error {
	var entry models.BoxNumberPool
	err := tx.Where("box_number = ?", number).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		now := time.Now()
		entry = models.BoxNumberPool{
			BoxNumber:   number,
			IsAvailable: false,
			LastUsedAt:  &now,
		}
		return tx.Create(&entry).Error
	}
	if err != nil {
		return err
	}
	if !entry.IsAvailable {
		return nil
	}
	now := time.Now()
	return tx.Model(&entry).
		Updates(map[string]interface{}{"is_available": false, "last_used_at": now}).Error
}

// CountTotal 返回池中记录总数
func (r *gormBoxNumberPoolRepository) CountTotal() (int64, error) {
	var count int64
	err := r.db.Model(&models.BoxNumberPool{}).Count(&count).Error
	return count, err
}

// CountAvailable 返回池中可用号码的数量
func (r *gormBoxNumberPoolRepository) CountAvailable() (int64, error) {
	var count int64
	err := r.db.Model(&models.BoxNumberPool{}).Where("is_available = ?", true).Count(&count).Error
	return count, err
}

// MaxNumber 返回已铸造的最大箱号，池为空时返回 0
func (r *gormBoxNumberPoolRepository) MaxNumber() (int, error) {
	var maxNumber int
	err := r.db.Model(&models.BoxNumberPool{}).
		Select("COALESCE(MAX(box_number), 0)").Scan(&maxNumber).Error
	return maxNumber, err
}

// AvailableNumbers 返回所有可用箱号，升序排列
func (r *gormBoxNumberPoolRepository) AvailableNumbers() ([]int, error) {
	numbers := make([]int, 0)
	err := r.db.Model(&models.BoxNumberPool{}).
		Where("is_available = ?", true).
		Order("box_number asc").
		Pluck("box_number", &numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// isUniqueConstraintError 判断错误是否由唯一约束冲突引起
func isUniqueConstraintError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// isBusyError 判断错误是否是 SQLite 的写锁竞争（SQLITE_BUSY / SQLITE_LOCKED）
func isBusyError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "busy")
}
