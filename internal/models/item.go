package models

import (
	"time"
)

// Item 对应于数据库中的 items 表
type Item struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	BoxID     int64     `json:"boxId" gorm:"column:box_id;not null;index"`
	Name      string    `json:"name" gorm:"column:name;not null;size:255"`
	Remarks   *string   `json:"remarks,omitempty" gorm:"column:remarks;type:text"` // 备注
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Item 结构体对应的数据库表名
func (Item) TableName() string {
	return "items"
}

// ItemUpdatePayload 定义了更新物品请求的 JSON 结构体
type ItemUpdatePayload struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Remarks *string `json:"remarks,omitempty"`
}
