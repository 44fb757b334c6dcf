package v1

import (
	"time"

	"github.com/ynam/backend/internal/types"
)

// QueryMonth is the query parameter used by all month-scoped endpoints.
type QueryMonth struct {
	Month time.Time `form:"month" time_format:"2006-01" time_utc:"1" binding:"required" example:"2025-11"` // Year and month in YYYY-MM format
}

func (q QueryMonth) month() types.Month {
	return types.MonthOf(q.Month)
}
