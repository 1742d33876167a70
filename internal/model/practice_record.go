package model

type RecordKind string

const (
	// KindMiss 失误型记录：带失误段落/次数/原因和推断标签快照，参与诊断
	KindMiss RecordKind = "miss"
	// KindScored 旧版练习型记录：只有练习次数和备注，仅做历史展示
	KindScored RecordKind = "scored"
)

type FailureCause string

const (
	CauseMisread    FailureCause = "misread"
	CauseReaction   FailureCause = "reaction_speed"
	CauseRhythm     FailureCause = "rhythm_timing"
	CauseSlip       FailureCause = "slip"
	CauseStamina    FailureCause = "stamina"
	CauseUnfamiliar FailureCause = "unfamiliar_pattern"
	CauseOther      FailureCause = "other"
)

var validCauses = map[FailureCause]bool{
	CauseMisread:    true,
	CauseReaction:   true,
	CauseRhythm:     true,
	CauseSlip:       true,
	CauseStamina:    true,
	CauseUnfamiliar: true,
	CauseOther:      true,
}

func (c FailureCause) Valid() bool {
	return validCauses[c]
}

// PracticeRecord 打歌记录。两代字段形态并存，用 Kind 区分：
// miss 形态要求 MissSection/MissCount/Cause/DetectedTags，scored 形态要求 PracticeCount。
// DetectedTags 在创建时推断并固化，之后标注变化也不回填。
// swagger:model PracticeRecord
type PracticeRecord struct {
	BaseModel
	Username   string     `gorm:"size:100;index;not null" json:"Username"`
	ChartID    *uint      `gorm:"index" json:"ChartID"` // 旧数据可能只有冗余歌名，没有谱面 id
	ChartName  string     `gorm:"size:255;not null" json:"ChartName"`
	Difficulty Difficulty `gorm:"type:enum('Easy','Normal','Hard','Expert','Master')" json:"Difficulty"`
	Level      *int       `json:"Level"`

	Kind RecordKind `gorm:"type:enum('miss','scored');not null;default:'miss'" json:"Kind"`

	// miss 形态
	MissSection  int          `json:"MissSection"`
	MissCount    int          `json:"MissCount"`
	Cause        FailureCause `gorm:"size:50" json:"Cause"`
	DetectedTags TagList      `gorm:"type:varchar(512)" json:"DetectedTags"`
	Notes        string       `gorm:"type:text" json:"Notes"`

	// scored 形态
	PracticeCount int    `json:"PracticeCount"`
	Score         *int   `json:"Score"` // 旧数据里成绩可能缺失
	Comment       string `gorm:"type:text" json:"Comment"`
}

func (PracticeRecord) TableName() string {
	return "practice_records"
}
