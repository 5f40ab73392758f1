package http

// Legacy status payload served on GET /test.
const (
	StatusOK      = "ok"
	StatusMessage = "EcoAvoBot è attivo!"
)

// Log prefixes
const (
	LogPrefixChat       = "internal.intent.delivery.http.Chat"
	LogPrefixLegacyChat = "internal.intent.delivery.http.LegacyChat"
	LogPrefixList       = "internal.intent.delivery.http.ListIntents"
	LogPrefixReload     = "internal.intent.delivery.http.Reload"
)

// confidenceDecimals is the rounding applied to confidences on the wire.
const confidenceDecimals = 2
