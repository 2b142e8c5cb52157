package domain

// DeviceTypes lists the device categories accepted on a repair report.
var DeviceTypes = []string{"computer", "laptop", "phone", "tablet", "printer", "monitor", "other"}

// IssueTypes is the fixed vocabulary of recognized malfunction categories.
var IssueTypes = []string{
	"screen",
	"does-not-turn-on",
	"battery",
	"keyboard",
	"mouse",
	"wifi",
	"bluetooth",
	"audio",
	"camera",
	"charging",
	"overheating",
	"slow-performance",
	"software-crash",
	"hardware-damage",
	"other",
}

// Report statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusCancelled  = "cancelled"
)

// Report priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Contact methods
const (
	ContactByEmail = "email"
	ContactByPhone = "phone"
	ContactByBoth  = "both"
)
