package services

import (
	"log"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"gorm.io/gorm"
)

// BoxNumberMigration 在服务启动时执行一次，为历史箱子补齐箱号并把已占用的号码
// 预留到号码池中。必须在对外提供服务之前完成，失败时进程不应继续启动。
type BoxNumberMigration struct {
	db       *gorm.DB
	boxRepo  repositories.BoxRepository
	poolRepo repositories.BoxNumberPoolRepository
}

// NewBoxNumberMigration 创建一个新的 BoxNumberMigration 实例
func NewBoxNumberMigration(db *gorm.DB, boxRepo repositories.BoxRepository, poolRepo repositories.BoxNumberPoolRepository) *BoxNumberMigration {
	return &BoxNumberMigration{db: db, boxRepo: boxRepo, poolRepo: poolRepo}
}

// MigrateExistingBoxes 对账历史箱子与号码池。
// 整个迁移在一个事务内完成：任一步失败则全部回滚，不会留下部分编号的状态。
func (m *BoxNumberMigration) MigrateExistingBoxes() error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		boxes, err := m.boxRepo.ListAllByCreationTx(tx)
		if err != nil {
			return err
		}
		if len(boxes) == 0 {
			return nil
		}

		// 预留必须严格先于分配：否则历史箱子已占用的号码可能被发给另一个箱子
		var unnumbered []*models.Box
		for i := range boxes {
			if boxes[i].BoxNumber != nil {
				if err := m.poolRepo.ReserveNumberTx(tx, *boxes[i].BoxNumber); err != nil {
					return err
				}
				continue
			}
			unnumbered = append(unnumbered, &boxes[i])
		}

		if len(unnumbered) == 0 {
			return nil
		}

		log.Printf("Starting box number migration for %d boxes", len(unnumbered))
		for _, box := range unnumbered {
			number, err := m.poolRepo.AcquireNextNumberTx(tx)
			if err != nil {
				return err
			}
			if err := m.boxRepo.UpdateBoxNumberTx(tx, box.ID, number); err != nil {
				return err
			}
		}
		log.Printf("Box number migration completed. Assigned %d numbers", len(unnumbered))
		return nil
	})
}
