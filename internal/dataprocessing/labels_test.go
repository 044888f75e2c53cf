package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOrderCoversEnum(t *testing.T) {
	for label, period := range periodLabels {
		assert.NotEqual(t, -1, PeriodIndex(period), "label %s maps outside PeriodOrder", label)
	}
	assert.Len(t, PeriodOrder, len(periodLabels))
}

func TestMapEducationLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"불취학", EduNoSchooling},
		{"초등학교", EduElementary},
		{"중학교 중퇴", EduMiddleSchool},
		{"고등학교 졸업", EduHighSchool},
		{"대학", EduCollege},
		{"전문대 재학", EduCollege},
		{"대학원 이상", EduGraduate},
		{"미상", EduUnknown},
		{"기타", EduOther},
		{"검정고시", EduOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapEducationLabel(tt.label), tt.label)
	}
}

func TestMapCrimeLevelLabel(t *testing.T) {
	assert.Equal(t, CrimeTotal, mapCrimeLevelLabel("합계"))
	assert.Equal(t, CrimeTotal, mapCrimeLevelLabel("계"))
	assert.Equal(t, CrimeSubtotal, mapCrimeLevelLabel(" 소계 "))
	assert.Equal(t, "절도", mapCrimeLevelLabel("절도"))
}

func TestMapPriorGroupLabel(t *testing.T) {
	group, ok := mapPriorGroupLabel("전과없음")
	assert.True(t, ok)
	assert.Equal(t, GroupNoPrior, group)

	_, ok = mapPriorGroupLabel("계")
	assert.False(t, ok)
}
