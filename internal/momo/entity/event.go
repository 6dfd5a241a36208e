package entity

// ReviewEvent flags a record whose body matched no structured pattern and
// was classified by the keyword fallback alone. Consumers route these to
// manual review.
type ReviewEvent struct {
	EventID    int64
	InternalID int64
	Type       TransactionType
	Raw        string
}
