package dataprocessing

import "strings"

// PeriodOrder lists the elapsed-time buckets from shortest to longest.
// Tables and figures use this as the canonical display order.
var PeriodOrder = []string{
	"within_1m", "within_3m", "within_6m",
	"within_1y", "within_2y", "within_3y", "over_3y",
}

// PeriodIndex returns the position of a period bucket in PeriodOrder,
// or -1 for an unknown bucket.
func PeriodIndex(period string) int {
	for i, p := range PeriodOrder {
		if p == period {
			return i
		}
	}
	return -1
}

var periodLabels = map[string]string{
	"1개월이내": "within_1m",
	"3개월이내": "within_3m",
	"6개월이내": "within_6m",
	"1년이내":  "within_1y",
	"2년이내":  "within_2y",
	"3년이내":  "within_3y",
	"3년초과":  "over_3y",
}

var recidTypeLabels = map[string]string{
	"동종재범": RecidSameType,
	"이종재범": RecidDifferentType,
}

var priorGroupLabels = map[string]string{
	"전과없음": GroupNoPrior,
	"전과":   GroupPrior,
	"미상":   GroupUnknown,
}

// mapPeriodLabel maps a Korean elapsed-time label onto the period enum
func mapPeriodLabel(label string) (string, bool) {
	v, ok := periodLabels[strings.TrimSpace(label)]
	return v, ok
}

// mapRecidTypeLabel maps a Korean recurrence-type label onto the enum
func mapRecidTypeLabel(label string) (string, bool) {
	v, ok := recidTypeLabels[strings.TrimSpace(label)]
	return v, ok
}

// mapPriorGroupLabel maps a Korean prior-conviction group label onto
// the enum. Aggregate columns of other groups report ok=false and are
// skipped by the cleaner.
func mapPriorGroupLabel(label string) (string, bool) {
	v, ok := priorGroupLabels[strings.TrimSpace(label)]
	return v, ok
}

// mapCrimeLevelLabel normalizes a crime hierarchy label: the 합계 and
// 소계 aggregate markers become total/subtotal, anything else is kept
// as trimmed free text.
func mapCrimeLevelLabel(label string) string {
	label = strings.TrimSpace(label)
	switch label {
	case "합계", "계":
		return CrimeTotal
	case "소계":
		return CrimeSubtotal
	}
	return label
}

// mapDetailLabel normalizes a repeat-count detail label; 소계 becomes
// subtotal, anything else (1, 2, ... 9회이상) is kept as trimmed text.
func mapDetailLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "소계" {
		return DetailSubtotal
	}
	return label
}

// mapEducationLabel maps a Korean education label onto the education
// enum by prefix, following the source's label style (졸업/중퇴/재학
// suffixes vary between publication years). Unrecognized labels map to
// EduOther so the bucket aggregation keeps their counts.
func mapEducationLabel(label string) string {
	label = strings.TrimSpace(label)
	switch {
	case label == "미상":
		return EduUnknown
	case label == "불취학":
		return EduNoSchooling
	case strings.HasPrefix(label, "초등학교"):
		return EduElementary
	case strings.HasPrefix(label, "중학교"):
		return EduMiddleSchool
	case strings.HasPrefix(label, "고등학교"):
		return EduHighSchool
	case strings.HasPrefix(label, "대학원"):
		return EduGraduate
	case strings.HasPrefix(label, "대학"), strings.HasPrefix(label, "전문대"):
		return EduCollege
	}
	return EduOther
}

// mapWorldType normalizes the measurement-type column of the world
// dataset onto the rate-type enum.
func mapWorldType(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	switch {
	case strings.Contains(l, "reimprison"), strings.Contains(l, "re-imprison"):
		return RateReimprisonment
	case strings.Contains(l, "reconvict"), strings.Contains(l, "re-convict"):
		return RateReconviction
	case strings.Contains(l, "rearrest"), strings.Contains(l, "re-arrest"):
		return RateRearrest
	}
	return RateOther
}
