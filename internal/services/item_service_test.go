package services

import (
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/KuntzeM/BoxCopilot/internal/models"
	"github.com/KuntzeM/BoxCopilot/internal/repositories"
	"github.com/KuntzeM/BoxCopilot/pkg/utils"
)

func newItemServiceForTest(t *testing.T) (ItemService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	itemRepo := repositories.NewGormItemRepository(db)
	boxRepo := repositories.NewGormBoxRepository(db)
	return NewItemService(itemRepo, boxRepo), db
}

func seedItem(t *testing.T, db *gorm.DB, boxID int64, name string) *models.Item {
	t.Helper()
	item := models.Item{BoxID: boxID, Name: name}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("Failed to seed item %q: %v", name, err)
	}
	return &item
}

func TestGetAllItemsSortedByNameCaseInsensitive(t *testing.T) {
	service, db := newItemServiceForTest(t)
	box := seedBox(t, db, "box-sort", nil, time.Now())

	seedItem(t, db, box.ID, "lampe")
	seedItem(t, db, box.ID, "Besteck")
	seedItem(t, db, box.ID, "apfelkiste")

	items, err := service.GetAllItems()
	if err != nil {
		t.Fatalf("GetAllItems failed: %v", err)
	}

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	expected := []string{"apfelkiste", "Besteck", "lampe"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d items, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Expected item %d to be %q, got %q", i, expected[i], names[i])
		}
	}
}

func TestCreateItemRequiresExistingBox(t *testing.T) {
	service, _ := newItemServiceForTest(t)

	_, err := service.CreateItem(&models.Item{BoxID: 999, Name: "Geisterkiste"})
	if !errors.Is(err, ErrBoxNotFound) {
		t.Errorf("Expected ErrBoxNotFound, got %v", err)
	}
}

func TestMoveItemToAnotherBox(t *testing.T) {
	service, db := newItemServiceForTest(t)
	source := seedBox(t, db, "box-source", nil, time.Now())
	target := seedBox(t, db, "box-target", nil, time.Now())
	item := seedItem(t, db, source.ID, "Teller")

	moved, err := service.MoveItem(item.ID, target.ID)
	if err != nil {
		t.Fatalf("MoveItem failed: %v", err)
	}
	if moved.BoxID != target.ID {
		t.Errorf("Expected item to be in box %d, got %d", target.ID, moved.BoxID)
	}
}

func TestMoveItemToMissingBoxFails(t *testing.T) {
	service, db := newItemServiceForTest(t)
	source := seedBox(t, db, "box-source", nil, time.Now())
	item := seedItem(t, db, source.ID, "Teller")

	_, err := service.MoveItem(item.ID, 999)
	if !errors.Is(err, ErrBoxNotFound) {
		t.Errorf("Expected ErrBoxNotFound, got %v", err)
	}
}

func TestMoveItemsSkipsMissingItems(t *testing.T) {
	service, db := newItemServiceForTest(t)
	source := seedBox(t, db, "box-source", nil, time.Now())
	target := seedBox(t, db, "box-target", nil, time.Now())
	first := seedItem(t, db, source.ID, "Tasse")
	second := seedItem(t, db, source.ID, "Glas")

	// 中间夹一个不存在的物品 ID，批量移动应跳过它并继续
	moved, err := service.MoveItems([]int64{first.ID, 999, second.ID}, target.ID)
	if err != nil {
		t.Fatalf("MoveItems failed: %v", err)
	}
	if moved != 2 {
		t.Errorf("Expected 2 items moved, got %d", moved)
	}

	var targetItems []models.Item
	if err := db.Where("box_id = ?", target.ID).Order("id asc").Find(&targetItems).Error; err != nil {
		t.Fatalf("Failed to load target items: %v", err)
	}
	ids := make([]int64, len(targetItems))
	for i, item := range targetItems {
		ids[i] = item.ID
	}
	if !utils.CompareInt64Slices(ids, []int64{first.ID, second.ID}) {
		t.Errorf("Expected items %v in target box, got %v", []int64{first.ID, second.ID}, ids)
	}
}

func TestSearchItemsScopedToBox(t *testing.T) {
	service, db := newItemServiceForTest(t)
	kitchen := seedBox(t, db, "box-kitchen", nil, time.Now())
	office := seedBox(t, db, "box-office", nil, time.Now())
	seedItem(t, db, kitchen.ID, "Kaffeemaschine")
	seedItem(t, db, office.ID, "Kaffeetasse")

	// 不限定箱子时两条都命中
	items, err := service.SearchItems("Kaffee", "")
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("Expected 2 matches, got %d", len(items))
	}

	// 限定箱子后只命中箱内物品
	items, err = service.SearchItems("Kaffee", kitchen.UUID)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Kaffeemaschine" {
		t.Errorf("Expected only Kaffeemaschine in kitchen box, got %v", items)
	}
}

func TestSearchItemsEmptyQueryReturnsNothing(t *testing.T) {
	service, db := newItemServiceForTest(t)
	box := seedBox(t, db, "box-any", nil, time.Now())
	seedItem(t, db, box.ID, "Buch")

	items, err := service.SearchItems("   ", "")
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected no matches for blank query, got %d", len(items))
	}
}

func TestDeleteBoxRemovesItemsAndReleasesNumber(t *testing.T) {
	db := setupTestDB(t)
	poolRepo := repositories.NewGormBoxNumberPoolRepository(db)
	boxRepo := repositories.NewGormBoxRepository(db)
	numberService := NewBoxNumberService(poolRepo)
	boxService := NewBoxService(boxRepo, numberService)

	box, err := boxService.CreateBox(&models.Box{})
	if err != nil {
		t.Fatalf("CreateBox failed: %v", err)
	}
	seedItem(t, db, box.ID, "Vase")
	seedItem(t, db, box.ID, "Kerze")

	if err := boxService.DeleteBox(box.ID); err != nil {
		t.Fatalf("DeleteBox failed: %v", err)
	}

	var itemCount int64
	if err := db.Model(&models.Item{}).Where("box_id = ?", box.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("Failed to count items: %v", err)
	}
	if itemCount != 0 {
		t.Errorf("Expected items to be deleted with their box, got %d remaining", itemCount)
	}

	available, err := poolRepo.AvailableNumbers()
	if err != nil {
		t.Fatalf("AvailableNumbers failed: %v", err)
	}
	if !utils.CompareIntSlices(available, []int{*box.BoxNumber}) {
		t.Errorf("Expected number %d back in pool, got %v", *box.BoxNumber, available)
	}
}
