package domain

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionCompleted SessionStatus = "completed"
	SessionSkipped   SessionStatus = "skipped"
	SessionAbandoned SessionStatus = "abandoned"
)

// Terminal reports whether the status is one a session can never leave.
func (s SessionStatus) Terminal() bool {
	switch s {
	case SessionCompleted, SessionSkipped, SessionAbandoned:
		return true
	default:
		return false
	}
}

type SubjectPriority string

const (
	PriorityHigh   SubjectPriority = "high"
	PriorityMedium SubjectPriority = "medium"
	PriorityLow    SubjectPriority = "low"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// SortRank orders priorities for display: high first, low last.
func (p SubjectPriority) SortRank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Weekday codes used in StudyPlan.StudyDays. Week starts Monday.
const (
	DayMon = "mon"
	DayTue = "tue"
	DayWed = "wed"
	DayThu = "thu"
	DayFri = "fri"
	DaySat = "sat"
	DaySun = "sun"
)

// WeekdayOffsets maps a weekday code to its day offset from Monday.
var WeekdayOffsets = map[string]int{
	DayMon: 0, DayTue: 1, DayWed: 2, DayThu: 3, DayFri: 4, DaySat: 5, DaySun: 6,
}
