package services

import (
	"errors"
	"net/http"
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindConflict
	KindNotFound
)

// SchedulerError membedakan kesalahan input (validation), bentrok slot
// (conflict) dan data yang tidak ditemukan (not found).
type SchedulerError struct {
	Kind    ErrorKind
	Message string
}

func (e *SchedulerError) Error() string {
	return e.Message
}

var (
	ErrCapacityExceeded    = &SchedulerError{KindValidation, "num_guests exceeds table capacity"}
	ErrInvalidInterval     = &SchedulerError{KindValidation, "start_time must be before end_time"}
	ErrInvalidDate         = &SchedulerError{KindValidation, "date must be in YYYY-MM-DD format"}
	ErrInvalidTime         = &SchedulerError{KindValidation, "time must be in HH:MM format"}
	ErrPastDate            = &SchedulerError{KindValidation, "reservation date is in the past"}
	ErrPastStartTime       = &SchedulerError{KindValidation, "start_time is already in the past"}
	ErrInvalidStatus       = &SchedulerError{KindValidation, "invalid reservation status"}
	ErrSlotUnavailable     = &SchedulerError{KindConflict, "the selected time slot is not available for this table"}
	ErrInvalidTransition   = &SchedulerError{KindConflict, "reservation status can no longer be changed"}
	ErrReservationNotFound = &SchedulerError{KindNotFound, "reservation not found"}
	ErrTableNotFound       = &SchedulerError{KindNotFound, "table not found"}
)

// HTTPStatus memetakan error scheduler ke kode HTTP untuk request layer
func HTTPStatus(err error) int {
	var schedErr *SchedulerError
	if errors.As(err, &schedErr) {
		switch schedErr.Kind {
		case KindValidation:
			return http.StatusBadRequest
		case KindConflict:
			return http.StatusConflict
		case KindNotFound:
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}
