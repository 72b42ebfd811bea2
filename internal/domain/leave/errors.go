package leave

import "errors"

var (
	ErrLeaveRequestNotFound         = errors.New("leave request not found")
	ErrLeaveRequestAlreadyProcessed = errors.New("leave request already processed")
	ErrVacationRangeRequired        = errors.New("date_from and date_to are required for ferie")
	ErrPermissionDayRequired        = errors.New("day is required for permesso")
)
