package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
)

func newMigrationForTest(t *testing.T) (*BoxNumberMigration, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	boxRepo := repositories.NewGormBoxRepository(db)
	poolRepo := repositories.NewGormBoxNumberPoolRepository(db)
	return NewBoxNumberMigration(db, boxRepo, poolRepo), db
}

// seedBox 直接写入一条箱子记录，绕过号码池（模拟引入号码池之前的历史数据）
func seedBox(t *testing.T, db *gorm.DB, uuid string, number *int, createdAt time.Time) *models.Box {
	t.Helper()
	box := models.Box{
		UUID:      uuid,
		BoxNumber: number,
		CreatedAt: createdAt,
	}
	if err := db.Create(&box).Error; err != nil {
		t.Fatalf("Failed to seed box %s: %v", uuid, err)
	}
	return &box
}

func TestMigrationAssignsNumbersInCreationOrder(t *testing.T) {
	migration, db := newMigrationForTest(t)

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	older := seedBox(t, db, "box-older", nil, t1)
	newer := seedBox(t, db, "box-newer", nil, t2)

	if err := migration.MigrateExistingBoxes(); err != nil {
		t.Fatalf("MigrateExistingBoxes failed: %v", err)
	}

	var migrated models.Box
	if err := db.First(&migrated, older.ID).Error; err != nil {
		t.Fatalf("Failed to reload box: %v", err)
	}
	if migrated.BoxNumber == nil || *migrated.BoxNumber != 1 {
		t.Errorf("Expected older box to get number 1, got %v", migrated.BoxNumber)
	}

	migrated = models.Box{}
	if err := db.First(&migrated, newer.ID).Error; err != nil {
		t.Fatalf("Failed to reload box: %v", err)
	}
	if migrated.BoxNumber == nil || *migrated.BoxNumber != 2 {
		t.Errorf("Expected newer box to get number 2, got %v", migrated.BoxNumber)
	}
}

func TestMigrationReservesExistingNumbersFirst(t *testing.T) {
	migration, db := newMigrationForTest(t)

	// 已有箱子占着号码 7 但池中没有对应记录，另一个箱子还没有号码
	seven := 7
	numbered := seedBox(t, db, "box-numbered", &seven, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	unnumbered := seedBox(t, db, "box-unnumbered", nil, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC))

	if err := migration.MigrateExistingBoxes(); err != nil {
		t.Fatalf("MigrateExistingBoxes failed: %v", err)
	}

	// 号码 7 必须被预留为占用，缺号箱子拿到的号码不能和它冲突
	var entry models.BoxNumberPool
	if err := db.Where("box_number = ?", 7).First(&entry).Error; err != nil {
		t.Fatalf("Expected pool entry for number 7: %v", err)
	}
	if entry.IsAvailable {
		t.Error("Expected reserved number 7 to be unavailable")
	}

	var migrated models.Box
	if err := db.First(&migrated, unnumbered.ID).Error; err != nil {
		t.Fatalf("Failed to reload box: %v", err)
	}
	if migrated.BoxNumber == nil {
		t.Fatal("Expected unnumbered box to receive a number")
	}
	if *migrated.BoxNumber == 7 {
		t.Error("Unnumbered box must not receive the already occupied number 7")
	}

	// 已有号码的箱子保持原号不变
	migrated = models.Box{}
	if err := db.First(&migrated, numbered.ID).Error; err != nil {
		t.Fatalf("Failed to reload box: %v", err)
	}
	if migrated.BoxNumber == nil || *migrated.BoxNumber != 7 {
		t.Errorf("Expected numbered box to keep number 7, got %v", migrated.BoxNumber)
	}
}

func TestMigrationIsIdempotent(t *testing.T) {
	migration, db := newMigrationForTest(t)

	seedBox(t, db, "box-a", nil, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC))
	seedBox(t, db, "box-b", nil, time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC))

	if err := migration.MigrateExistingBoxes(); err != nil {
		t.Fatalf("First migration run failed: %v", err)
	}

	var firstRun []models.Box
	if err := db.Order("id asc").Find(&firstRun).Error; err != nil {
		t.Fatalf("Failed to load boxes: %v", err)
	}

	if err := migration.MigrateExistingBoxes(); err != nil {
		t.Fatalf("Second migration run failed: %v", err)
	}

	var secondRun []models.Box
	if err := db.Order("id asc").Find(&secondRun).Error; err != nil {
		t.Fatalf("Failed to load boxes: %v", err)
	}
	for i := range firstRun {
		if *firstRun[i].BoxNumber != *secondRun[i].BoxNumber {
			t.Errorf("Box %d changed number on second run: %d -> %d",
				firstRun[i].ID, *firstRun[i].BoxNumber, *secondRun[i].BoxNumber)
		}
	}

	var poolSize int64
	if err := db.Model(&models.BoxNumberPool{}).Count(&poolSize).Error; err != nil {
		t.Fatalf("Failed to count pool entries: %v", err)
	}
	if poolSize != 2 {
		t.Errorf("Expected pool size 2 after repeated migration, got %d", poolSize)
	}
}

func TestMigrationNoOpOnEmptyDatabase(t *testing.T) {
	migration, db := newMigrationForTest(t)

	if err := migration.MigrateExistingBoxes(); err != nil {
		t.Fatalf("MigrateExistingBoxes failed on empty database: %v", err)
	}

	var poolSize int64
	if err := db.Model(&models.BoxNumberPool{}).Count(&poolSize).Error; err != nil {
		t.Fatalf("Failed to count pool entries: %v", err)
	}
	if poolSize != 0 {
		t.Errorf("Expected empty pool, got %d entries", poolSize)
	}
}
