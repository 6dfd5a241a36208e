package entity

// Party is a counterparty captured from a message body. Phone is empty when
// the pattern matched a name only.
type Party struct {
	Name  string `json:"name" bson:"name"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// Transaction is the structured record produced for every input message.
//
// Optional fields are pointers so serialized output distinguishes "not
// present in the message" from a zero value.
type Transaction struct {
	InternalID    int64             `json:"internal_id" bson:"internal_id"`
	TransactionID string            `json:"transaction_id" bson:"transaction_id"`
	Type          TransactionType   `json:"transaction_type" bson:"transaction_type"`
	Amount        *int64            `json:"amount" bson:"amount"`
	Fee           *int64            `json:"fee" bson:"fee"`
	Balance       *int64            `json:"balance" bson:"balance"`
	Sender        *Party            `json:"sender" bson:"sender"`
	Receiver      *Party            `json:"receiver" bson:"receiver"`
	Timestamp     *string           `json:"timestamp" bson:"timestamp"`
	Raw           string            `json:"raw" bson:"raw"`
	SourceAttrs   map[string]string `json:"source_attributes" bson:"source_attributes"`
}
