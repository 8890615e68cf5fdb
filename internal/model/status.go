package model

// Status is the closed set of states an order can occupy.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
	StatusReturned   Status = "Returned"
)

// AllStatuses lists every defined status, in the typical forward order.
var AllStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusReturned,
}

// ParseStatus validates a raw status value against the defined set.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// IsTerminal reports whether no further transition is permitted out
// of the status.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDelivered, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// ValidateTransition checks whether an order may move from one status
// to another. Administrators may jump forward along the non-terminal
// path (e.g. Pending straight to Shipped), and any non-terminal order
// may be cancelled. A terminal order accepts no further change, with
// the single exception that a Delivered order may be marked Returned.
func ValidateTransition(from, to Status) error {
	if _, err := ParseStatus(string(to)); err != nil {
		return err
	}
	if to == StatusReturned {
		if from != StatusDelivered {
			return ErrReturnNotAllowed
		}
		return nil
	}
	if from.IsTerminal() {
		return ErrOrderTerminal
	}
	return nil
}
