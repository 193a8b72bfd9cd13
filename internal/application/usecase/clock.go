// internal/application/usecase/clock.go
package usecase

import (
	"time"

	"cartledger/internal/domain/common"
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// IDSource provides fresh random identifiers (for testability).
type IDSource interface {
	NewID() string
}

type randomIDSource struct{}

func (randomIDSource) NewID() string { return common.NewID() }
