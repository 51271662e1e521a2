package services

import (
	"log"
	"sync/atomic"

	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"gorm.io/gorm"
)

// PoolStatus 描述箱号池的运营快照，只读
type PoolStatus struct {
	TotalNumbers         int64 `json:"totalNumbers"`
	AvailableNumbers     int64 `json:"availableNumbers"`
	HighestNumber        int   `json:"highestNumber"`
	NextNumber           *int  `json:"nextNumber"`
	AvailableNumbersList []int `json:"availableNumbersList"`
	// UnknownReleases 是进程内计数：归还未知号码的次数，用于发现箱子与号码池之间的数据漂移
	UnknownReleases int64 `json:"unknownReleases"`
}

// BoxNumberService 定义了箱号分配与回收的服务接口。
// 分配始终优先复用最小的可用号码，保证打印在实体箱子上的编号范围尽量紧凑。
type BoxNumberService interface {
	// GetNextAvailableBoxNumber 取出最小可用箱号；池中无可用号码时铸造一个新号码
	GetNextAvailableBoxNumber() (int, error)
	// GetNextAvailableBoxNumberTx 在调用方事务内分配，迁移流程使用
	GetNextAvailableBoxNumberTx(tx *gorm.DB) (int, error)
	// ReleaseBoxNumber 将箱号归还到池中。number 为 nil 或号码未知时记录告警并忽略，
	// 删除箱子的操作不应因号码状态异常而被阻塞。
	ReleaseBoxNumber(number *int) error
	// GetPoolStatus 返回池的只读快照，允许与并发分配之间出现瞬时不一致
	GetPoolStatus() (*PoolStatus, error)
}

// boxNumberService 是 BoxNumberService 的实现
type boxNumberService struct {
	repo            repositories.BoxNumberPoolRepository
	unknownReleases atomic.Int64
}

// NewBoxNumberService 创建一个新的 boxNumberService 实例
func NewBoxNumberService(repo repositories.BoxNumberPoolRepository) BoxNumberService {
	return &boxNumberService{repo: repo}
}

// GetNextAvailableBoxNumber 处理箱号分配的业务逻辑
func (s *boxNumberService) GetNextAvailableBoxNumber() (int, error) {
	number, err := s.repo.AcquireNextNumber()
	if err != nil {
		return 0, err
	}
	log.Printf("Assigned box number %d from pool", number)
	return number, nil
}

// GetNextAvailableBoxNumberTx 在调用方事务内分配箱号
func (s *boxNumberService) GetNextAvailableBoxNumberTx(tx *gorm.DB) (int, error) {
	return s.repo.AcquireNextNumberTx(tx)
}

// ReleaseBoxNumber 处理箱号归还的业务逻辑
func (s *boxNumberService) ReleaseBoxNumber(number *int) error {
	if number == nil {
		log.Println("Warning: attempted to release nil box number")
		return nil
	}

	found, err := s.repo.ReleaseNumber(*number)
	if err != nil {
		return err
	}
	if !found {
		s.unknownReleases.Add(1)
		log.Printf("Warning: box number %d not found in pool during release", *number)
		return nil
	}
	log.Printf("Released box number %d back to pool", *number)
	return nil
}

// GetPoolStatus 聚合池的统计信息（总数、可用数、最大号码、可用号码列表）
func (s *boxNumberService) GetPoolStatus() (*PoolStatus, error) {
	total, err := s.repo.CountTotal()
	if err != nil {
		return nil, err
	}
	available, err := s.repo.CountAvailable()
	if err != nil {
		return nil, err
	}
	maxNumber, err := s.repo.MaxNumber()
	if err != nil {
		return nil, err
	}
	availableList, err := s.repo.AvailableNumbers()
	if err != nil {
		return nil, err
	}

	status := &PoolStatus{
		TotalNumbers:         total,
		AvailableNumbers:     available,
		HighestNumber:        maxNumber,
		AvailableNumbersList: availableList,
		UnknownReleases:      s.unknownReleases.Load(),
	}
	if len(availableList) > 0 {
		status.NextNumber = &availableList[0]
	}
	return status, nil
}
