package repository

import (
	"context"
	"time"

	"bakehouse/internal/domain/schedule"
	"bakehouse/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CommitmentRepository aggregates the capacity ledger the availability engine
// reads: orders holding pickup slots and bookings holding time intervals.
// Which statuses count is decided here, per tenant policy.
type CommitmentRepository struct {
	db *pgxpool.Pool
}

func NewCommitmentRepository(db *pgxpool.Pool) *CommitmentRepository {
	return &CommitmentRepository{db: db}
}

// PickupCommitments counts orders per exact (date, time) slot. Cancelled and
// inquiry orders never hold capacity; pending_payment holds it only when the
// tenant opts in.
func (r *CommitmentRepository) PickupCommitments(ctx context.Context, tenantID uuid.UUID, from, to clock.Date, countPending bool) (schedule.Commitments, error) {
	statuses := []string{"confirmed", "deposit_paid", "completed"}
	if countPending {
		statuses = append(statuses, "pending_payment")
	}

	query := `
		SELECT pickup_date, pickup_time, COUNT(*)
		FROM orders
		WHERE tenant_id = $1
		  AND pickup_date BETWEEN $2 AND $3
		  AND pickup_time IS NOT NULL
		  AND status = ANY($4)
		GROUP BY pickup_date, pickup_time`

	rows, err := r.db.Query(ctx, query, tenantID, pgDate(from), pgDate(to), statuses)
	if err != nil {
		return schedule.Commitments{}, classifyPgErr("failed to aggregate pickup commitments", err)
	}
	defer rows.Close()

	counts := map[schedule.SlotKey]int{}
	for rows.Next() {
		var (
			date  pgtype.Date
			t     pgtype.Time
			count int
		)
		if err := rows.Scan(&date, &t, &count); err != nil {
			return schedule.Commitments{}, classifyPgErr("failed to scan pickup commitment", err)
		}
		counts[schedule.SlotKey{Date: dateFromPg(date), Time: timeOfDayFromPg(t)}] = count
	}
	if err := rows.Err(); err != nil {
		return schedule.Commitments{}, classifyPgErr("failed to iterate pickup commitments", err)
	}

	return schedule.Commitments{SlotCounts: counts}, nil
}

// BookingCommitments returns the occupied consulting intervals in wall-clock
// terms. Bookings are written anchored at UTC midnight of their civil date, so
// scanned instants must be read back in UTC regardless of the process zone.
func (r *CommitmentRepository) BookingCommitments(ctx context.Context, tenantID uuid.UUID, from, to clock.Date, countPending bool) (schedule.Commitments, error) {
	statuses := []string{"confirmed"}
	if countPending {
		statuses = append(statuses, "pending")
	}

	query := `
		SELECT start_time, end_time
		FROM bookings
		WHERE tenant_id = $1
		  AND start_time >= $2 AND start_time < $3
		  AND status = ANY($4)
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, tenantID, from.At(), to.AddDays(1).At(), statuses)
	if err != nil {
		return schedule.Commitments{}, classifyPgErr("failed to aggregate booking commitments", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return schedule.Commitments{}, classifyPgErr("failed to scan booking commitment", err)
		}
		intervals = append(intervals, bookingInterval(start, end))
	}
	if err := rows.Err(); err != nil {
		return schedule.Commitments{}, classifyPgErr("failed to iterate booking commitments", err)
	}

	return schedule.Commitments{Intervals: intervals}, nil
}

// bookingInterval maps stored instants back onto the slot grid. pgx decodes
// timestamptz in the process-local zone; normalizing to UTC first keeps the
// derived date and minutes on the same grid the slots were offered on.
func bookingInterval(start, end time.Time) schedule.Interval {
	start = start.UTC()
	end = end.UTC()
	return schedule.Interval{
		Date:  clock.DateOf(start),
		Start: clock.TimeOfDay(start.Hour()*60 + start.Minute()),
		End:   clock.TimeOfDay(end.Hour()*60 + end.Minute()),
	}
}
