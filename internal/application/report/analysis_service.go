package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// OrderAnalysisRow aggregates order volume and revenue per month and
// status.
type OrderAnalysisRow struct {
	Month      string  `json:"month"`
	Status     string  `json:"status"`
	OrderCount int64   `json:"order_count"`
	Revenue    float64 `json:"revenue"`
}

// CustomerStatusRow classifies a customer by order recency: new
// (first order within the window), active (ordered within the
// window), or inactive.
type CustomerStatusRow struct {
	CustomerID   string     `json:"customer_id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	OrderCount   int64      `json:"order_count"`
	LastOrderAt  *time.Time `json:"last_order_at,omitempty"`
	FirstOrderAt *time.Time `json:"first_order_at,omitempty"`
	Status       string     `json:"status"`
}

// WorkloadRow counts washing works per type and status
type WorkloadRow struct {
	WashingType string `json:"washing_type"`
	Status      string `json:"status"`
	WorkCount   int64  `json:"work_count"`
}

// activityWindow is the recency window separating active customers
// from inactive ones
const activityWindow = 90 * 24 * time.Hour

// AnalysisService runs the reporting queries. These are read-only
// aggregations over the order tables, kept as raw SQL rather than
// repository methods.
type AnalysisService struct {
	db *gorm.DB
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(db *gorm.DB) *AnalysisService {
	return &AnalysisService{db: db}
}

// OrderAnalysis aggregates orders per month and status since the
// given date.
func (s *AnalysisService) OrderAnalysis(ctx context.Context, since time.Time) ([]OrderAnalysisRow, error) {
	var rows []OrderAnalysisRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			to_char(o.order_date, 'YYYY-MM') AS month,
			o.status AS status,
			COUNT(DISTINCT o.id) AS order_count,
			COALESCE(SUM(l.quantity * l.unit_price), 0) AS revenue
		FROM laundry_orders o
		LEFT JOIN laundry_order_lines l ON l.order_id = o.id
		WHERE o.order_date >= ?
		GROUP BY to_char(o.order_date, 'YYYY-MM'), o.status
		ORDER BY month, status
	`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CustomerStatus classifies every customer as new, active or
// inactive based on order recency.
func (s *AnalysisService) CustomerStatus(ctx context.Context) ([]CustomerStatusRow, error) {
	cutoff := time.Now().Add(-activityWindow)
	var rows []CustomerStatusRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			c.id AS customer_id,
			c.name AS name,
			c.email AS email,
			COUNT(o.id) AS order_count,
			MAX(o.order_date) AS last_order_at,
			MIN(o.order_date) AS first_order_at,
			CASE
				WHEN MIN(o.order_date) >= ? THEN 'new'
				WHEN MAX(o.order_date) >= ? THEN 'active'
				ELSE 'inactive'
			END AS status
		FROM laundry_customers c
		LEFT JOIN laundry_orders o ON o.customer_id = c.id AND o.status <> 'cancelled'
		GROUP BY c.id, c.name, c.email
		ORDER BY c.name
	`, cutoff, cutoff).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Workload counts open washing works per type and status
func (s *AnalysisService) Workload(ctx context.Context) ([]WorkloadRow, error) {
	var rows []WorkloadRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			t.name AS washing_type,
			w.status AS status,
			COUNT(w.id) AS work_count
		FROM washing_works w
		JOIN washing_types t ON t.id = w.washing_type_id
		GROUP BY t.name, w.status
		ORDER BY t.name, w.status
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
