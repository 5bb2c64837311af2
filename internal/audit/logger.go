package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/bridal-rental/internal/models"
)

const (
	ActionAddDress      = "ADD_DRESS"
	ActionEditDress     = "EDIT_DRESS"
	ActionDeleteDress   = "DELETE_DRESS"
	ActionAddBooking    = "ADD_BOOKING"
	ActionReturnBooking = "RETURN_BOOKING"
	ActionCancelBooking = "CANCEL_BOOKING"
	ActionLogin         = "LOGIN"
	ActionLogout        = "LOGOUT"
)

// Actions lists every action, for filters.
var Actions = []string{
	ActionAddDress,
	ActionEditDress,
	ActionDeleteDress,
	ActionAddBooking,
	ActionReturnBooking,
	ActionCancelBooking,
	ActionLogin,
	ActionLogout,
}

// Store is the append-only sink for log entries.
type Store interface {
	Append(ctx context.Context, entry *models.SystemLog) error
}

type Logger struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Logger {
	return &Logger{store: store, now: time.Now}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	details string,
) error {

	entry := models.SystemLog{
		Timestamp: l.now().UTC(),
		Action:    action,
		Details:   details,
	}

	return l.store.Append(ctx, &entry)
}
