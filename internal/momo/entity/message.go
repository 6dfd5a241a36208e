package entity

// Attribute names carried by an SMS backup element.
const (
	AttrBody         = "body"
	AttrDate         = "date"
	AttrReadableDate = "readable_date"
)

// RawMessage is one SMS notification as supplied by the backup source: a bag
// of string attributes. The pipeline treats it as immutable.
type RawMessage map[string]string

func (m RawMessage) Body() string { return m[AttrBody] }

// Date returns the raw epoch-millisecond attribute. Depending on the backup
// tool it may be empty or not numeric at all.
func (m RawMessage) Date() string { return m[AttrDate] }

func (m RawMessage) ReadableDate() string { return m[AttrReadableDate] }
