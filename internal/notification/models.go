package notification

import (
	"encoding/json"
)

// DateTimeMode selects how DATE and TIME data fields are filled.
type DateTimeMode string

const (
	// DateTimeComputed renders the send time in GMT+7.
	DateTimeComputed DateTimeMode = "computed"
	// DateTimeFixed uses placeholder literals.
	DateTimeFixed DateTimeMode = "fixed"
)

// MessageOptions selects the payload variant, fixed at construction time.
type MessageOptions struct {
	DateTimeMode     DateTimeMode
	IncludeAPNSBlock bool
}

// Request is everything a caller supplies for one notification.
// PrivateKey may still carry escaped "\n" sequences.
type Request struct {
	FCMToken    string
	Type        string
	SubType     string
	PrivateKey  string
	ClientEmail string
	ProjectID   string
}

// Result holds the provider body of an accepted message.
type Result struct {
	FirebaseResponse json.RawMessage
}
