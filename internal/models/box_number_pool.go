package models

import (
	"time"
)

// BoxNumberPool 对应于数据库中的 box_number_pool 表。
// 每一行代表一个曾经铸造过的箱号；号码只会在可用/占用之间切换，永远不会被物理删除。
type BoxNumberPool struct {
	BoxNumber   int        `json:"boxNumber" gorm:"column:box_number;primaryKey;autoIncrement:false"`
	// 不带 default 标签：带默认值的零值字段在 INSERT 时会被 GORM 省略，
	// 铸造和预留写入的 false 会被列默认值覆盖成 true
	IsAvailable bool       `json:"isAvailable" gorm:"column:is_available;not null"`
	LastUsedAt  *time.Time `json:"lastUsedAt,omitempty" gorm:"column:last_used_at"` // 最近一次被发放的时间（归还时不更新）
	CreatedAt   time.Time  `json:"createdAt" gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName 指定 BoxNumberPool 结构体对应的数据库表名
func (BoxNumberPool) TableName() string {
	return "box_number_pool"
}
