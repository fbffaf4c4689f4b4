package apperrors

func (d Definition) Error() string {
	return d.Message
}

// Definition is a business error with a stable code. The HTTP status
// mapping lives in pkg/response, close to where it is used.
type Definition struct {
	Code    string
	Message string
}

// Auth errors.
var (
	EmailTaken         = Definition{Code: "EMAIL_TAKEN", Message: "Email already registered"}
	InvalidCredentials = Definition{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password"}
	Unauthorized       = Definition{Code: "UNAUTHORIZED", Message: "Unauthorized"}
	ResetTokenInvalid  = Definition{Code: "RESET_TOKEN_INVALID", Message: "Password reset token invalid"}
	ResetTokenExpired  = Definition{Code: "RESET_TOKEN_EXPIRED", Message: "Password reset token expired"}
)

// Application errors.
var (
	ApplicationNotFound = Definition{Code: "APPLICATION_NOT_FOUND", Message: "Application not found"}
	InvalidStatus       = Definition{Code: "INVALID_STATUS", Message: "Invalid application status"}
	InvalidPriority     = Definition{Code: "INVALID_PRIORITY", Message: "Invalid application priority"}
	InvalidDate         = Definition{Code: "INVALID_DATE", Message: "Invalid date, expected YYYY-MM-DD"}
)

// Reminder errors.
var (
	ReminderNotFound = Definition{Code: "REMINDER_NOT_FOUND", Message: "Reminder not found"}
)

// Preference errors.
var (
	FollowUpDaysOutOfRange = Definition{Code: "FOLLOW_UP_DAYS_OUT_OF_RANGE", Message: "Default follow-up days must be between 1 and 30"}
	InvalidTheme           = Definition{Code: "INVALID_THEME", Message: "Invalid theme"}
)
