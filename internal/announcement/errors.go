package announcement

import (
	"errors"
)

var (
	AnnouncementNotFoundError = errors.New("announcement not found")
)
