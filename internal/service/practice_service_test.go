package service

import (
	"testing"

	"rhythm_coach_backend/internal/model"
	"rhythm_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestValidateMissRecord(t *testing.T) {
	valid := MissRecordInput{
		ChartID:     1,
		MissSection: 12,
		MissCount:   3,
		Cause:       model.CauseRhythm,
	}
	assert.NoError(t, validateMissRecord(valid))

	t.Run("失误段落必须为正", func(t *testing.T) {
		in := valid
		in.MissSection = 0
		assert.ErrorIs(t, validateMissRecord(in), util.ErrInvalidSection)
	})

	t.Run("失误次数必须为正", func(t *testing.T) {
		in := valid
		in.MissCount = 0
		assert.ErrorIs(t, validateMissRecord(in), util.ErrInvalidMissCount)
	})

	t.Run("失误原因必须在枚举内", func(t *testing.T) {
		in := valid
		in.Cause = "bad_luck"
		assert.ErrorIs(t, validateMissRecord(in), util.ErrInvalidCause)
	})
}

func TestFailureCauseEnum(t *testing.T) {
	for _, c := range []model.FailureCause{
		model.CauseMisread,
		model.CauseReaction,
		model.CauseRhythm,
		model.CauseSlip,
		model.CauseStamina,
		model.CauseUnfamiliar,
		model.CauseOther,
	} {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, model.FailureCause("").Valid())
}
