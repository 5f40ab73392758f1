package usecase

// Log prefixes
const (
	LogPrefixClassify    = "internal.intent.usecase.Classify"
	LogPrefixListIntents = "internal.intent.usecase.ListIntents"
	LogPrefixReload      = "internal.intent.usecase.Reload"
)
