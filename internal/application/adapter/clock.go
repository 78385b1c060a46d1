// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Report period windows are resolved
// through this interface so tests can pin "now".
type Clock interface {
	Now() time.Time
}
