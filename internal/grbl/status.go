// internal/grbl/status.go
package grbl

// Status is the closed set of machine states the indicator understands.
// Unknown covers both "nothing classified yet" and "line not recognized".
type Status uint8

const (
	Booted Status = iota
	Idle
	Run
	Hold
	Jog
	Door
	Home
	Alarm

	Unknown Status = 255
)

var statusNames = map[Status]string{
	Booted: "booted",
	Idle:   "idle",
	Run:    "run",
	Hold:   "hold",
	Jog:    "jog",
	Door:   "door",
	Home:   "home",
	Alarm:  "alarm",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// Known reports whether s is a classified status.
func (s Status) Known() bool {
	_, ok := statusNames[s]
	return ok
}
