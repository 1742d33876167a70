package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TagList 按逗号串入库，保持原始顺序
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		*t = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}
	if s == "" {
		*t = nil
		return nil
	}
	*t = strings.Split(s, ",")
	return nil
}

func (t TagList) Contains(tag string) bool {
	for _, v := range t {
		if v == tag {
			return true
		}
	}
	return false
}

// IsSentinelOnly 判断标签快照是否恰好只有哨兵标签
func (t TagList) IsSentinelOnly() bool {
	return len(t) == 1 && t[0] == SentinelTag
}

// swagger:model Annotation
type Annotation struct {
	BaseModel
	ChartID      uint       `gorm:"index;not null" json:"ChartID"`
	ChartName    string     `gorm:"size:255;not null" json:"ChartName"` // 创建时的谱面快照，谱面删除后仍可展示
	Difficulty   Difficulty `gorm:"type:enum('Easy','Normal','Hard','Expert','Master')" json:"Difficulty"`
	StartSection int        `gorm:"not null" json:"StartSection"`
	EndSection   int        `gorm:"not null" json:"EndSection"`
	Tags         TagList    `gorm:"type:varchar(512);not null" json:"Tags"`
	Description  string     `gorm:"type:text" json:"Description"`
	ExpertRating int        `gorm:"not null" json:"ExpertRating"` // 1-5
	Annotator    string     `gorm:"size:100;index;not null" json:"Annotator"`
}

func (Annotation) TableName() string {
	return "annotations"
}

// ContainsSection 闭区间包含判定，start == end 时只命中该小节
func (a *Annotation) ContainsSection(section int) bool {
	return a.StartSection <= section && section <= a.EndSection
}
