package service

import (
	"testing"

	"rhythm_coach_backend/internal/util"

	"github.com/stretchr/testify/assert"
)

var testVocabulary = map[string]bool{
	"trill": true,
	"jack":  true,
}

func validInput() AnnotationInput {
	return AnnotationInput{
		StartSection: 3,
		EndSection:   8,
		Tags:         []string{"trill"},
		ExpertRating: 4,
	}
}

func TestValidateAnnotation(t *testing.T) {
	assert.NoError(t, validateAnnotation(validInput(), testVocabulary))

	t.Run("单小节区间合法", func(t *testing.T) {
		in := validInput()
		in.StartSection, in.EndSection = 5, 5
		assert.NoError(t, validateAnnotation(in, testVocabulary))
	})

	t.Run("段落必须为正", func(t *testing.T) {
		in := validInput()
		in.StartSection = 0
		assert.ErrorIs(t, validateAnnotation(in, testVocabulary), util.ErrInvalidSection)
	})

	t.Run("结束不能早于起始", func(t *testing.T) {
		in := validInput()
		in.StartSection, in.EndSection = 8, 3
		assert.ErrorIs(t, validateAnnotation(in, testVocabulary), util.ErrSectionOrder)
	})

	t.Run("标签不能为空", func(t *testing.T) {
		in := validInput()
		in.Tags = nil
		assert.ErrorIs(t, validateAnnotation(in, testVocabulary), util.ErrEmptyTags)
	})

	t.Run("标签必须在词表内", func(t *testing.T) {
		in := validInput()
		in.Tags = []string{"trill", "unknown"}
		assert.ErrorIs(t, validateAnnotation(in, testVocabulary), util.ErrUnknownTag)
	})

	t.Run("评分限定1到5", func(t *testing.T) {
		for _, rating := range []int{0, 6} {
			in := validInput()
			in.ExpertRating = rating
			assert.ErrorIs(t, validateAnnotation(in, testVocabulary), util.ErrInvalidRating)
		}
	})
}
