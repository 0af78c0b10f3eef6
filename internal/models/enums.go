package models

// TeamStatus is the refresh status of a team. Arbitrary values are allowed
// for manually entered teams; the constants below are the ones the refresh
// pipeline produces.
type TeamStatus string

const (
	TeamStatusLoading TeamStatus = "Loading"
	TeamStatusSuccess TeamStatus = "Success"
	TeamStatusFailure TeamStatus = "Failure"
	TeamStatusPending TeamStatus = "Pending"
	TeamStatusUnknown TeamStatus = "Unknown"
)

// UnassignedClass is the label used for teams without a class
const UnassignedClass = "Unassigned"

// ClassOptions is the fixed set of class labels, in round-robin order
var ClassOptions = []string{"C-203", "E-103-A", "E-103", "E-101-A", "E-101"}

// RoundRobinClass returns the default class for the team at index i
func RoundRobinClass(i int) string {
	if i < 0 {
		i = -i
	}
	return ClassOptions[i%len(ClassOptions)]
}

// IsValidClass checks if the label is one of ClassOptions
func IsValidClass(label string) bool {
	for _, c := range ClassOptions {
		if c == label {
			return true
		}
	}
	return false
}
