package entity

type VideoStatus string

const (
	StatusPending  VideoStatus = "pending"
	StatusFilmed   VideoStatus = "filmed"
	StatusEdited   VideoStatus = "edited"
	StatusRevision VideoStatus = "revision"
	StatusApproved VideoStatus = "approved"
	StatusPosted   VideoStatus = "posted"
)

// statusRank orders the linear part of the workflow. The edited/revision
// cycle shares a rank so the cycle never counts as moving backward.
var statusRank = map[VideoStatus]int{
	StatusPending:  0,
	StatusFilmed:   1,
	StatusEdited:   2,
	StatusRevision: 2,
	StatusApproved: 3,
	StatusPosted:   4,
}

func (s VideoStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// Before reports whether s comes strictly earlier in the workflow than other.
func (s VideoStatus) Before(other VideoStatus) bool {
	return statusRank[s] < statusRank[other]
}
