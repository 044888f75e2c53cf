package config

// DefaultConfigFile is the optional YAML config file looked up next to
// the working directory when RECID_CONFIG_FILE is not set.
const DefaultConfigFile = "recid.yaml"

// Raw source file names expected in the raw-data directory.
const (
	RawProsecutionPeriodType = "prosecution_reoffend_period_type_2017.csv"
	RawKosisPriorConvictions = "kosis_prior_convictions_2023.csv"
	RawPoliceEducation       = "police_education_2020.csv"
	RawPolicePriorRecord     = "police_prior_record_2020.csv"
	RawWorldRecidivism       = "world_recidivism_rates.csv"
	RawEnaraReimprisonment   = "e_nara_3yr_reimprisonment.xlsx"
)

// Tidy file names written to the processed-data directory.
const (
	TidyProsecutionPeriodType = "prosecution_reoffend_period_type_2017_tidy.csv"
	TidyKosisPriorConvictions = "kosis_prior_convictions_2023_tidy.csv"
	TidyPoliceEducation       = "police_education_2020_tidy.csv"
	TidyPolicePriorRecord     = "police_prior_record_2020_tidy.csv"
	TidyWorldRecidivism       = "world_recidivism_rates_tidy.csv"
	TidyEnaraReimprisonment   = "e_nara_3yr_reimprisonment_tidy.csv"
)

// Summary table file names written to the outputs directory.
const (
	TablePriorShare      = "H1_prior_share_2023.csv"
	TablePeriodDist      = "H2_period_distribution.csv"
	TableEducationBucket = "H3_education_bucket_share_2020.csv"
	TableCountryFollowup = "H4_country_followup.csv"
	TableDomesticTrend   = "domestic_3yr_reimprisonment_rate.csv"
)

// Figure file names written to the figures directory.
const (
	FigureDomesticTrend   = "01_domestic_3yr_reimprisonment_trend.png"
	FigurePeriodDist      = "02_reoffend_time_distribution.png"
	FigureTopCrimes       = "03_top_crimes_reoffenders.png"
	FigurePriorShare      = "04_prior_conviction_share_2023.png"
	FigureEducationBucket = "05_education_bucket_share_2020.png"
	FigureWorldFollowup   = "06_world_recidivism_followup_lines.png"
)
