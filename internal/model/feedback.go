package model

// swagger:model Feedback
type Feedback struct {
	BaseModel
	Username string `gorm:"size:100;index;not null" json:"Username"`
	Type     string `gorm:"size:50;not null" json:"Type"` // bug / suggestion / other
	Content  string `gorm:"type:text;not null" json:"Content"`
}

func (Feedback) TableName() string {
	return "user_feedback"
}
