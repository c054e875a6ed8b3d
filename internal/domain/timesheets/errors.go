package timesheets

import "clickshr/internal/domain/apperr"

var (
	ErrAlreadyCheckedIn = apperr.Conflict("already checked in")
	ErrNotCheckedIn     = apperr.Conflict("not checked in")
)
