package queries

import (
	"time"

	"deliverus/internal/core/domain/model/order"
	"deliverus/internal/pkg/errs"
)

// OrdersFilter narrows order listings by derived status and by an inclusive
// calendar-date range over the creation timestamp.
//
// Example:
//
//	status := order.StatusPending
//	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.Local)
//	filter, err := queries.NewOrdersFilter(&status, &from, nil)
//	if err != nil {
//	    return err
//	}
type OrdersFilter struct {
	status *order.Status
	from   *time.Time
	to     *time.Time
}

// NewOrdersFilter creates a listing filter. Every field is optional; a nil
// status and nil bounds match everything. The bounds are calendar dates: the
// caller passes midnight of the day and `to` is extended to the end of it.
func NewOrdersFilter(status *order.Status, from *time.Time, to *time.Time) (OrdersFilter, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return OrdersFilter{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
	}

	return OrdersFilter{status: status, from: from, to: to}, nil
}

// predicates renders the filter as SQL conditions over the orders table,
// each column prefixed for the caller's FROM clause (for example "o." in a
// joined query, or "" against the bare table). Status maps onto timestamp
// presence; "delivered" matches on sent_at alone, without checking
// delivered_at.
func (f OrdersFilter) predicates(prefix string) ([]string, []any) {
	conds := make([]string, 0, 3)
	args := make([]any, 0, 2)

	if f.status != nil {
		switch *f.status {
		case order.StatusPending:
			conds = append(conds, prefix+"started_at IS NULL")
		case order.StatusInProcess:
			conds = append(conds,
				prefix+"started_at IS NOT NULL AND "+
					prefix+"sent_at IS NULL AND "+
					prefix+"delivered_at IS NULL")
		case order.StatusSent:
			conds = append(conds, prefix+"sent_at IS NOT NULL AND "+prefix+"delivered_at IS NULL")
		case order.StatusDelivered:
			conds = append(conds, prefix+"sent_at IS NOT NULL")
		}
	}

	if f.from != nil {
		conds = append(conds, prefix+"created_at >= ?")
		args = append(args, *f.from)
	}

	if f.to != nil {
		conds = append(conds, prefix+"created_at < ?")
		args = append(args, f.to.AddDate(0, 0, 1))
	}

	return conds, args
}
