package dataprocessing

import (
	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for tidy record checks
var validate = validator.New()

// Recidivism type enumeration
const (
	RecidSameType      = "same_type"
	RecidDifferentType = "different_type"
)

// Prior-conviction group enumeration
const (
	GroupNoPrior = "no_prior"
	GroupPrior   = "prior"
	GroupUnknown = "unknown"
)

// Crime hierarchy aggregate labels
const (
	CrimeTotal    = "total"
	CrimeSubtotal = "subtotal"
)

// DetailSubtotal marks the subtotal column of a prior-conviction group
const DetailSubtotal = "subtotal"

// Education level enumeration
const (
	EduNoSchooling  = "no_schooling"
	EduElementary   = "elementary"
	EduMiddleSchool = "middle_school"
	EduHighSchool   = "high_school"
	EduCollege      = "college"
	EduGraduate     = "graduate"
	EduOther        = "other"
	EduUnknown      = "unknown"
)

// Recidivism measurement type enumeration for the world dataset
const (
	RateReimprisonment = "reimprisonment"
	RateReconviction   = "reconviction"
	RateRearrest       = "rearrest"
	RateOther          = "other"
)

// PeriodTypeRecord is one tidy observation from the prosecution
// re-offense period/type dataset: the number of re-offenders of a crime
// category that re-offended within a given elapsed-time bucket, split by
// same-type vs different-type recurrence.
type PeriodTypeRecord struct {
	Crime     string `validate:"required"`
	RecidType string `validate:"required,oneof=same_type different_type"`
	Period    string `validate:"required,oneof=within_1m within_3m within_6m within_1y within_2y within_3y over_3y"`
	Count     int    `validate:"min=0"`
}

// PriorConvictionRecord is one tidy observation from the KOSIS
// prior-conviction dataset: offender counts by crime hierarchy, year,
// prior-conviction group and repeat-count detail.
type PriorConvictionRecord struct {
	Year      int    `validate:"min=1900,max=2100"`
	CrimeLvl1 string `validate:"required"`
	CrimeLvl2 string `validate:"required"`
	CrimeLvl3 string `validate:"required"`
	Group     string `validate:"required,oneof=no_prior prior unknown"`
	Detail    string `validate:"required"`
	Count     int    `validate:"min=0"`
}

// EducationRecord is one tidy observation from the police offender
// education dataset.
type EducationRecord struct {
	CrimeMajor string `validate:"required"`
	CrimeMinor string `validate:"required"`
	Education  string `validate:"required,oneof=no_schooling elementary middle_school high_school college graduate other unknown"`
	Count      int    `validate:"min=0"`
}

// PriorRecordRecord is one tidy observation from the police offender
// prior-record dataset. Prior-record labels are an open set in the
// source (none, 1 conviction, 2 convictions, ...), so they are carried
// as trimmed free text.
type PriorRecordRecord struct {
	CrimeMajor  string `validate:"required"`
	CrimeMinor  string `validate:"required"`
	PriorRecord string `validate:"required"`
	Count       int    `validate:"min=0"`
}

// WorldRateRecord is one tidy observation from the international
// recidivism-rate dataset. FollowupYears is fractional where the source
// reports months.
type WorldRateRecord struct {
	Country       string  `validate:"required"`
	FollowupYears float64 `validate:"gt=0"`
	RatePct       float64 `validate:"min=0,max=100"`
	Type          string  `validate:"required,oneof=reimprisonment reconviction rearrest other"`
	Period        string
}

// EnaraRecord is one tidy observation from the e-nara indicator
// workbook. Metric is free text from the sheet's row labels.
type EnaraRecord struct {
	Metric string  `validate:"required"`
	Year   int     `validate:"min=1900,max=2100"`
	Value  float64 `validate:"min=0"`
}

// CleanStats summarizes a cleaner run for logging and error policy.
// Rows is the number of valid tidy records produced; Dropped counts
// observations excluded by type coercion or validation failures.
type CleanStats struct {
	Source  string
	Rows    int
	Dropped int
}
