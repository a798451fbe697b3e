package inventory

type DayStatus string

const (
	DayStatusOpen   DayStatus = "OPEN"
	DayStatusClosed DayStatus = "CLOSED"
)

func (s DayStatus) String() string {
	return string(s)
}

func (s DayStatus) IsValid() bool {
	switch s {
	case DayStatusOpen, DayStatusClosed:
		return true
	default:
		return false
	}
}
