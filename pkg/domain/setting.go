package domain

// setting keys
const (
	SettingKeywordCursor      = "keywords.cursor"       // last article id processed by keyword extraction
	SettingKeywordStalledRuns = "keywords.stalled_runs" // consecutive runs with every article of the batch failing
)
