// Package session tracks conversation activity per sender id, giving
// operators a view of live conversations without persisting any message
// content.
package session

import (
	"context"
	"time"
)

// DefaultTTL is how long a sender stays "active" after their last message.
const DefaultTTL = 30 * time.Minute

// Store records sender activity.
//
// Error contract: Touch and ActiveCount return wrapped infrastructure
// errors; callers treat session tracking as best-effort and never fail a
// chat request over it.
type Store interface {
	// Touch records a message from the sender at the given time.
	Touch(ctx context.Context, senderID string, at time.Time) error
	// ActiveCount reports how many senders were seen within the TTL.
	ActiveCount(ctx context.Context, now time.Time) (int64, error)
}
