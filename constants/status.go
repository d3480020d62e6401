package constants

// SessionStatus is the canonical status for rows in processing_sessions.
type SessionStatus string

// Stable values (store these exact strings in DB).
const (
	SessionPending    SessionStatus = "pending"    // created, not yet picked up
	SessionProcessing SessionStatus = "processing" // invoke/parse in progress
	SessionCompleted  SessionStatus = "completed"  // terminal success (includes all-keys fallback)
	SessionFailed     SessionStatus = "failed"     // terminal failure
)

// SessionStatuses holds the allowed values for the status field in ProcessingSession.
var SessionStatuses = []string{
	string(SessionPending),
	string(SessionProcessing),
	string(SessionCompleted),
	string(SessionFailed),
}

// FallbackResponseMarker is stored as the session ai_response when the backend
// returned nothing usable and the run degraded to empty results.
const FallbackResponseMarker = "[EMPTY_RESPONSE]"
