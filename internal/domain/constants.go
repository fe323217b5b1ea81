package domain

// Default slot parameters
const (
	DefaultSlotCapacity        = 1
	DefaultSlotDurationMinutes = 90
	DefaultSlotStrideMinutes   = 30
	DefaultRetentionMonths     = 6
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinSlotCapacity        = 1
	MaxSlotCapacity        = 100
	MaxNameLength          = 200
	MaxServiceLabelLength  = 200
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AvailabilityKeywords ключевые слова, по которым событие календаря
// классифицируется как "рабочие часы" (case-insensitive substring match).
// Эвристика, а не гарантия: событие без ключевого слова считается Busy
var AvailabilityKeywords = []string{"work", "beschikbaar", "available"}
