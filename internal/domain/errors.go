package domain

import "errors"

var (
	// ErrInvalidWeekday means the alias matched nothing in the weekday table.
	ErrInvalidWeekday = errors.New(MsgInvalidWeekday)

	// ErrInvalidTimezone wraps the underlying zone lookup failure.
	ErrInvalidTimezone = errors.New(MsgInvalidTimezone)

	// ErrUnresolvableLocalTime means neither the requested time of day nor
	// midnight maps to exactly one instant on the target date.
	ErrUnresolvableLocalTime = errors.New(MsgUnresolvableLocal)

	ErrHistoryDisabled = errors.New(MsgHistoryUnavailable)
)
