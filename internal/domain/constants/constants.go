// Package constants contains values shared between the delivery and infrastructure layers.
package constants

// Mail dispatcher providers selectable through mail.provider.
const (
	MailProviderLog  = "log"
	MailProviderSMTP = "smtp"
	MailProviderAMQP = "amqp"
)

// Session cookie names.
const (
	CookieAccessToken  = "accessToken"
	CookieRefreshToken = "refreshToken"
)

// Cache key prefixes of the session cache.
const (
	RefreshTokenKeyPrefix     = "refresh_token:"
	ResetTokenKeyPrefix       = "reset_token:"
	ResetTokenLatestKeyPrefix = "reset_token_latest:"
)
