package errs

import "sync"

var (
	publicMu     sync.RWMutex
	publicErrors []error
)

// NewPublic creates a sentinel whose message is safe to show to API clients. Wrapping context added
// around it stays out of what PublicMessage returns.
func NewPublic(msg string) error {
	err := New(msg)
	publicMu.Lock()
	defer publicMu.Unlock()
	publicErrors = append(publicErrors, err)
	return err
}

// PublicMessage returns the message of the public sentinel err carries, directly or through a mark.
func PublicMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	publicMu.RLock()
	defer publicMu.RUnlock()
	for _, p := range publicErrors {
		if Is(err, p) {
			return p.Error(), true
		}
	}
	return "", false
}
