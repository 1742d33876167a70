package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyNormal Difficulty = "Normal"
	DifficultyHard   Difficulty = "Hard"
	DifficultyExpert Difficulty = "Expert"
	DifficultyMaster Difficulty = "Master"
)

// 难度是有序枚举，Rank 用于排序和比较
var difficultyRank = map[Difficulty]int{
	DifficultyEasy:   1,
	DifficultyNormal: 2,
	DifficultyHard:   3,
	DifficultyExpert: 4,
	DifficultyMaster: 5,
}

func (d Difficulty) Rank() int {
	return difficultyRank[d]
}

func (d Difficulty) Valid() bool {
	_, ok := difficultyRank[d]
	return ok
}

// swagger:model Chart
type Chart struct {
	BaseModel
	SongName   string     `gorm:"size:255;not null" json:"SongName"`
	Difficulty Difficulty `gorm:"type:enum('Easy','Normal','Hard','Expert','Master');not null" json:"Difficulty"`
	Level      *int       `gorm:"default:null" json:"Level"` // 定数/等级，可为空，用于筛选排序
	ImageURL   string     `gorm:"size:512;not null" json:"ImageURL"`
}

func (Chart) TableName() string {
	return "charts"
}
