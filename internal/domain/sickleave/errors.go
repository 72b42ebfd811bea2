package sickleave

import "errors"

var (
	ErrSickLeaveNotFound  = errors.New("sick leave not found")
	ErrDuplicateSickLeave = errors.New("a sick leave starting on this date is already registered")
)
