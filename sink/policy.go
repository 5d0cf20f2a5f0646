package sink

// OverflowPolicy defines how a full async queue treats an incoming
// record. The policy is fixed at queue construction and never changes
// for a queue instance.
type OverflowPolicy int8

const (
	// Block suspends the producer until space frees up or the queue
	// stops.
	Block OverflowPolicy = iota
	// DropNewest discards the incoming record and leaves the queue
	// untouched.
	DropNewest
	// DropOldest evicts the oldest queued record to admit the new one.
	DropOldest
)

// String returns the policy name.
func (p OverflowPolicy) String() string {
	switch p {
	case Block:
		return "Block"
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	default:
		return "Unknown"
	}
}
