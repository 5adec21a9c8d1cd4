package types

// ChatRole distinguishes the two sides of the assistant transcript.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the assistant transcript.
type ChatMessage struct {
	ID        string   `firestore:"id" json:"id"`
	Role      ChatRole `firestore:"role" json:"role"`
	Content   string   `firestore:"content" json:"content"`
	Timestamp string   `firestore:"timestamp" json:"timestamp"`
	Context   string   `firestore:"context,omitempty" json:"context,omitempty"` // page path the message was sent from
}

// UploadFormat tags the shape of an admin data upload.
type UploadFormat string

const (
	FormatCSV  UploadFormat = "csv"
	FormatJSON UploadFormat = "json"
)

// UploadPayload is an admin signal-data upload, forwarded verbatim to the
// workflow webhook.
type UploadPayload struct {
	Type       UploadFormat `json:"type"`
	SignalType SignalType   `json:"signalType"`
	Data       string       `json:"data"`
	Timestamp  string       `json:"timestamp"`
}

// AnomalyRequest describes a synthetic anomaly injection for testing
// response protocols.
type AnomalyRequest struct {
	Location    string       `json:"location"`
	Intensity   int          `json:"intensity"` // 10-100 percent
	SignalTypes []SignalType `json:"signalTypes"`
	Timestamp   string       `json:"timestamp"`
}

// SurveySubmission is the accumulated result of the onboarding wizard,
// written once when the final step completes.
type SurveySubmission struct {
	Location    string   `firestore:"location" json:"location"`
	HelpTypes   []string `firestore:"helpTypes" json:"helpTypes"`
	Features    []string `firestore:"features" json:"features"`
	SubmittedAt string   `firestore:"submittedAt" json:"submittedAt"`
}
