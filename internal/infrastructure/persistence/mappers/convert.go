package mappers

import (
	"fmt"
	"time"
)

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func millisToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := millisToTime(*ms)
	return &t
}

func invalidFieldError(entity string, id uint, field, value string) error {
	return fmt.Errorf("invalid %s %s (id=%d): %q", entity, field, id, value)
}
