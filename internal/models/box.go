package models

import (
	"time"
)

// Box 对应于数据库中的 boxes 表
type Box struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID        string    `json:"uuid" gorm:"column:uuid;unique;not null;size:36"`
	BoxNumber   *int      `json:"boxNumber,omitempty" gorm:"column:box_number;unique"` // 打印在实体箱子上的短编号，由号码池分配
	CurrentRoom *string   `json:"currentRoom,omitempty" gorm:"column:current_room;size:255"`
	TargetRoom  *string   `json:"targetRoom,omitempty" gorm:"column:target_room;size:255"`
	Description *string   `json:"description,omitempty" gorm:"column:description;type:text"`
	IsFragile   bool      `json:"isFragile" gorm:"column:is_fragile;not null;default:false"`
	NoStack     bool      `json:"noStack" gorm:"column:no_stack;not null;default:false"`
	Items       []Item    `json:"items,omitempty" gorm:"foreignKey:BoxID"`
	CreatedAt   time.Time `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName 指定 Box 结构体对应的数据库表名
func (Box) TableName() string {
	return "boxes"
}

// BoxUpdatePayload 定义了更新箱子请求的 JSON 结构体，所有字段均为可选
type BoxUpdatePayload struct {
	CurrentRoom *string `json:"currentRoom,omitempty" binding:"omitempty,max=255"`
	TargetRoom  *string `json:"targetRoom,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty"`
	IsFragile   *bool   `json:"isFragile,omitempty"`
	NoStack     *bool   `json:"noStack,omitempty"`
}
