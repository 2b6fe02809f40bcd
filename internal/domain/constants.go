package domain

// Default configuration values
const (
	DefaultSlotGranularityMinutes = 30
	DefaultOpeningTime            = "09:00"
	DefaultClosingTime            = "18:00"
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxCustomerNameLength     = 200
	MaxCustomerPhoneLength    = 32
)

// DateFormat формат дат в запросах и ответах API
const DateFormat = "2006-01-02" // YYYY-MM-DD
