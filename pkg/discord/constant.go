package discord

import "time"

const (
	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorOrange = 15105570
	ColorRed    = 15158332

	ColorInfo     = ColorBlue
	ColorSuccess  = ColorGreen
	ColorWarning  = ColorYellow
	ColorError    = ColorOrange
	ColorCritical = ColorRed

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	MaxFields         = 25
)

const (
	DefaultTimeout    = 10 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
	DefaultUsername   = "Pulse Bot"
	UserAgent         = "Pulse-Bot/1.0"
	ReportBugTitle    = "Pulse Service Error Report"

	webhookPathMarker = "/api/webhooks/"
)
