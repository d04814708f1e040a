package account

// Activity event types appended by store operations.
const (
	ActivityAccountCreated = "account_created"
	ActivityLogin          = "login"
	ActivityLogout         = "logout"
	ActivityOrderPlaced    = "order_placed"
)

// nextActivityID returns the next id for the user's log: one past the
// largest id seen so far (so 1 for a fresh record). Per-user monotonic
// counters cannot collide the way wall-clock ids do when two events land
// within the same tick.
func nextActivityID(u *UserRecord) int64 {
	var max int64
	for _, a := range u.Activities {
		if a.ID > max {
			max = a.ID
		}
	}
	return max + 1
}

// prependActivity inserts a new event at the front of the user's log,
// keeping newest-first order.
func prependActivity(u *UserRecord, eventType, description string) {
	event := ActivityEvent{
		ID:          nextActivityID(u),
		Type:        eventType,
		Description: description,
		Timestamp:   timeNow(),
	}
	u.Activities = append([]ActivityEvent{event}, u.Activities...)
}
