package model

// SentinelTag 表示失误段落没有命中任何社区标注时的占位标签（"常规段落"）。
// 推断结果永远不为空集合，至少含这个哨兵值。
const SentinelTag = "ordinary"

// swagger:model TechTag
type TechTag struct {
	BaseModel
	Code        string `gorm:"size:50;unique;not null" json:"Code"`
	Name        string `gorm:"size:100;not null" json:"Name"`
	Description string `gorm:"size:255" json:"Description"`
	Enabled     bool   `gorm:"default:true" json:"Enabled"`
}

func (TechTag) TableName() string {
	return "tech_tags"
}
