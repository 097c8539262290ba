package repository

import (
	"errors"
	"time"

	"bakehouse/internal/infra"
	"bakehouse/internal/infra/db"
	"bakehouse/internal/pkg/clock"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// DBTX aliases the shared definition so repository signatures stay short.
type DBTX = db.DBTX

// Postgres error codes we classify.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func classifyPgErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case pgForeignKeyViolation:
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}

	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}

func pgDate(d clock.Date) pgtype.Date {
	return pgtype.Date{Time: d.At(), Valid: true}
}

func pgDatePtr(d *clock.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgDate(*d)
}

func dateFromPg(d pgtype.Date) clock.Date {
	return clock.DateOf(d.Time)
}

func datePtrFromPg(d pgtype.Date) *clock.Date {
	if !d.Valid {
		return nil
	}
	v := dateFromPg(d)
	return &v
}

func pgTimeOfDay(t clock.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.Minutes()) * 60 * 1_000_000, Valid: true}
}

func pgTimeOfDayPtr(t *clock.TimeOfDay) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	return pgTimeOfDay(*t)
}

func timeOfDayFromPg(t pgtype.Time) clock.TimeOfDay {
	return clock.TimeOfDay(t.Microseconds / (60 * 1_000_000))
}

func timeOfDayPtrFromPg(t pgtype.Time) *clock.TimeOfDay {
	if !t.Valid {
		return nil
	}
	v := timeOfDayFromPg(t)
	return &v
}

func timestampPtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
