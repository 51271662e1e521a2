package repositories

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

// setupTestDB 创建一个内存 SQLite 数据库。限制为单连接：
// 内存库按连接隔离，多连接会各自看到一个空库，单连接同时把并发访问串行化。
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Box{}, &models.Item{}, &models.BoxNumberPool{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

// setupFileTestDB 打开临时目录下的文件数据库，连接参数与生产配置一致。
// 多个连接并发读写时走真实的 SQLite 锁路径，内存库的单连接测不到这条路径。
func setupFileTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "pool.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open file database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)

	if err := db.AutoMigrate(&models.BoxNumberPool{}); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}
	return db
}

// seedPoolEntry 向号码池中插入一条记录
func seedPoolEntry(t *testing.T, db *gorm.DB, number int, available bool) {
	t.Helper()
	now := time.Now()
	entry := models.BoxNumberPool{
		BoxNumber:   number,
		IsAvailable: available,
		LastUsedAt:  &now,
	}
	if err := db.Create(&entry).Error; err != nil {
		t.Fatalf("Failed to seed pool entry %d: %v", number, err)
	}
}

func TestAcquireNextNumberPrefersSmallestAvailable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	// 号码 2 和 5 可用，1、3 被占用
	seedPoolEntry(t, db, 1, false)
	seedPoolEntry(t, db, 2, true)
	seedPoolEntry(t, db, 3, false)
	seedPoolEntry(t, db, 5, true)

	number, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if number != 2 {
		t.Errorf("Expected smallest available number 2, got %d", number)
	}

	// 取完后 2 应变为占用，5 仍然可用
	available, err := repo.AvailableNumbers()
	if err != nil {
		t.Fatalf("AvailableNumbers failed: %v", err)
	}
	if !utils.CompareIntSlices(available, []int{5}) {
		t.Errorf("Expected available numbers [5], got %v", available)
	}
}

func TestAcquireNextNumberMintsWhenPoolEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	number, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if number != 1 {
		t.Errorf("Expected first minted number to be 1, got %d", number)
	}

	total, err := repo.CountTotal()
	if err != nil {
		t.Fatalf("CountTotal failed: %v", err)
	}
	if total != 1 {
		t.Errorf("Expected pool to contain 1 entry, got %d", total)
	}
}

func TestMintedNumberIsPersistedAsOccupied(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	number, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}

	// 铸造出的行必须落库为占用状态，否则同一个号码会被立即再次发出
	var entry models.BoxNumberPool
	if err := db.Where("box_number = ?", number).First(&entry).Error; err != nil {
		t.Fatalf("Failed to load minted entry: %v", err)
	}
	if entry.IsAvailable {
		t.Fatalf("Minted number %d was persisted as available", number)
	}

	next, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if next == number {
		t.Errorf("Number %d was issued twice", number)
	}
}

func TestAcquireNextNumberMintsMaxPlusOneWhenExhausted(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	// 池中全部占用，最大号码为 10
	seedPoolEntry(t, db, 1, false)
	seedPoolEntry(t, db, 10, false)

	number, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if number != 11 {
		t.Errorf("Expected minted number 11, got %d", number)
	}
}

func TestReleaseNumberMakesItReusable(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	first, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	second, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if first != 1 || second != 2 {
		t.Fatalf("Expected numbers 1 and 2, got %d and %d", first, second)
	}

	found, err := repo.ReleaseNumber(first)
	if err != nil {
		t.Fatalf("ReleaseNumber failed: %v", err)
	}
	if !found {
		t.Fatal("Expected released number to be found in pool")
	}

	// 归还后的 1 应优先于铸造新号码被复用
	reused, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}
	if reused != first {
		t.Errorf("Expected released number %d to be reused, got %d", first, reused)
	}
}

func TestReleaseNumberDoesNotUpdateLastUsedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	number, err := repo.AcquireNextNumber()
	if err != nil {
		t.Fatalf("AcquireNextNumber failed: %v", err)
	}

	var before models.BoxNumberPool
	if err := db.Where("box_number = ?", number).First(&before).Error; err != nil {
		t.Fatalf("Failed to load pool entry: %v", err)
	}
	if before.LastUsedAt == nil {
		t.Fatal("Expected last_used_at to be set after acquire")
	}

	if _, err := repo.ReleaseNumber(number); err != nil {
		t.Fatalf("ReleaseNumber failed: %v", err)
	}

	var after models.BoxNumberPool
	if err := db.Where("box_number = ?", number).First(&after).Error; err != nil {
		t.Fatalf("Failed to load pool entry: %v", err)
	}
	if !after.LastUsedAt.Equal(*before.LastUsedAt) {
		t.Errorf("Expected last_used_at unchanged on release, got %v -> %v", before.LastUsedAt, after.LastUsedAt)
	}
	if !after.IsAvailable {
		t.Error("Expected number to be available after release")
	}
}

func TestReleaseUnknownNumberIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	found, err := repo.ReleaseNumber(42)
	if err != nil {
		t.Fatalf("ReleaseNumber failed: %v", err)
	}
	if found {
		t.Error("Expected unknown number to report not found")
	}

	total, err := repo.CountTotal()
	if err != nil {
		t.Fatalf("CountTotal failed: %v", err)
	}
	if total != 0 {
		t.Errorf("Expected pool to stay empty, got %d entries", total)
	}
}

func TestReserveNumberTxIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	// 对不存在、占用中、可用三种状态各调用一次，结果都应是"存在且占用"
	err := db.Transaction(func(tx *gorm.DB) error {
		return repo.ReserveNumberTx(tx, 7)
	})
	if err != nil {
		t.Fatalf("ReserveNumberTx failed on missing entry: %v", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.ReserveNumberTx(tx, 7)
	})
	if err != nil {
		t.Fatalf("ReserveNumberTx failed on reserved entry: %v", err)
	}

	seedPoolEntry(t, db, 8, true)
	err = db.Transaction(func(tx *gorm.DB) error {
		return repo.ReserveNumberTx(tx, 8)
	})
	if err != nil {
		t.Fatalf("ReserveNumberTx failed on available entry: %v", err)
	}

	available, err := repo.CountAvailable()
	if err != nil {
		t.Fatalf("CountAvailable failed: %v", err)
	}
	if available != 0 {
		t.Errorf("Expected no available numbers after reservation, got %d", available)
	}
	total, err := repo.CountTotal()
	if err != nil {
		t.Fatalf("CountTotal failed: %v", err)
	}
	if total != 2 {
		t.Errorf("Expected 2 pool entries, got %d", total)
	}
}

func TestConcurrentAcquireYieldsDistinctNumbers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	seedPoolEntry(t, db, 1, true)
	seedPoolEntry(t, db, 2, true)

	const workers = 8
	results := make(chan int, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := repo.AcquireNextNumber()
			if err != nil {
				errs <- err
				return
			}
			results <- number
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("Concurrent AcquireNextNumber failed: %v", err)
	}

	seen := make(map[int]bool)
	for number := range results {
		if seen[number] {
			t.Errorf("Number %d was issued twice", number)
		}
		seen[number] = true
	}
	if len(seen) != workers {
		t.Errorf("Expected %d distinct numbers, got %d", workers, len(seen))
	}

	// 两个预置号码必须先被复用，其余为铸造的新号码
	if !seen[1] || !seen[2] {
		t.Error("Expected seeded numbers 1 and 2 to be reused before minting")
	}

	available, err := repo.CountAvailable()
	if err != nil {
		t.Fatalf("CountAvailable failed: %v", err)
	}
	if available != 0 {
		t.Errorf("Expected no available numbers after concurrent acquire, got %d", available)
	}
}

func TestConcurrentAcquireAcrossConnections(t *testing.T) {
	db := setupFileTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	seedPoolEntry(t, db, 1, true)
	seedPoolEntry(t, db, 2, true)

	// 每个 goroutine 可能拿到独立的数据库连接，分配必须既不报锁错误也不重复发号
	const workers = 8
	results := make(chan int, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := repo.AcquireNextNumber()
			if err != nil {
				errs <- err
				return
			}
			results <- number
		}()
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		t.Fatalf("AcquireNextNumber surfaced error to caller: %v", err)
	}

	seen := make(map[int]bool)
	for number := range results {
		if seen[number] {
			t.Errorf("Number %d was issued twice", number)
		}
		seen[number] = true
	}
	if len(seen) != workers {
		t.Errorf("Expected %d distinct numbers, got %d", workers, len(seen))
	}
}

func TestMaxNumberOnEmptyPool(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormBoxNumberPoolRepository(db)

	maxNumber, err := repo.MaxNumber()
	if err != nil {
		t.Fatalf("MaxNumber failed: %v", err)
	}
	if maxNumber != 0 {
		t.Errorf("Expected max number 0 on empty pool, got %d", maxNumber)
	}
}
