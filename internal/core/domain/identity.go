package domain

// Identity is the resolved actor behind a request: an authenticated account
// id, or an anonymous id generated and persisted on first use so the streak
// feature works before sign-up.
type Identity struct {
	ID        string `json:"id"`
	DeviceID  string `json:"device_id,omitempty"`
	Anonymous bool   `json:"anonymous"`
}
