package types

// AppointmentStatus is the free-form status of an appointment. Any non-empty
// value supplied by the client is accepted.
type AppointmentStatus string

// AppointmentStatusScheduled is applied when the client omits status
const AppointmentStatusScheduled AppointmentStatus = "scheduled"

// Normalize returns the status, treating empty as AppointmentStatusScheduled
func (s AppointmentStatus) Normalize() AppointmentStatus {
	if s == "" {
		return AppointmentStatusScheduled
	}
	return s
}

// String returns the string representation of the status
func (s AppointmentStatus) String() string {
	return string(s)
}
