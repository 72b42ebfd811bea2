package postgresql

import (
	"time"

	"github.com/cmlabs-hris/presence-backend-go/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// newID returns a time-ordered UUID so that primary keys follow insertion order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func clockToTime(c utils.Clock) pgtype.Time {
	seconds := int64(c.Hour*3600 + c.Minute*60 + c.Second)
	return pgtype.Time{Microseconds: seconds * int64(time.Second/time.Microsecond), Valid: true}
}

func clockPtrToTime(c *utils.Clock) pgtype.Time {
	if c == nil {
		return pgtype.Time{}
	}
	return clockToTime(*c)
}

func timeToClock(t pgtype.Time) utils.Clock {
	seconds := int(t.Microseconds / int64(time.Second/time.Microsecond))
	return utils.Clock{Hour: seconds / 3600, Minute: seconds % 3600 / 60, Second: seconds % 60}
}

func timeToClockPtr(t pgtype.Time) *utils.Clock {
	if !t.Valid {
		return nil
	}
	c := timeToClock(t)
	return &c
}

func decimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	return &d.Decimal
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
