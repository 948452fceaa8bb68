package planner

type EventStatus string

const (
	StatusTodo       EventStatus = "TODO"
	StatusInProgress EventStatus = "IN_PROGRESS"
	StatusDone       EventStatus = "DONE"
)

var AllStatuses = []EventStatus{
	StatusTodo,
	StatusInProgress,
	StatusDone,
}

func (s EventStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}
