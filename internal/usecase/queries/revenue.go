package queries

import (
	"context"
	"fmt"
	"sort"
	"time"

	"petcare-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrInvalidGroupBy = errs.New("group_by must be one of day, week, month, year")

type GroupBy string

const (
	GroupByDay   GroupBy = "day"
	GroupByWeek  GroupBy = "week"
	GroupByMonth GroupBy = "month"
	GroupByYear  GroupBy = "year"
)

// ParseGroupBy rejects anything outside the closed enum instead of silently
// defaulting to day formatting.
func ParseGroupBy(s string) (GroupBy, error) {
	switch GroupBy(s) {
	case GroupByDay, GroupByWeek, GroupByMonth, GroupByYear:
		return GroupBy(s), nil
	default:
		return "", ErrInvalidGroupBy
	}
}

type ProductRevenue struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Revenue   float64   `json:"revenue"`
}

type ServiceRevenue struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type RevenueBucket struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type RevenueReport struct {
	TotalRevenue float64          `json:"total_revenue"`
	ByProduct    []ProductRevenue `json:"by_product"`
	ByService    []ServiceRevenue `json:"by_service"`
	Series       []RevenueBucket  `json:"series,omitempty"`
}

// RecordRevenueSource is a health-record snapshot projected for aggregation;
// bucketing keys on the visit date.
type RecordRevenueSource struct {
	Date         time.Time
	UsedProducts []UsedProductView
	UsedServices []UsedServiceView
}

// OrderRevenueSource is a non-cancelled order projected for aggregation;
// bucketing keys on created_at, not on any per-item date.
type OrderRevenueSource struct {
	CreatedAt time.Time
	Total     float64
	Items     []OrderItemView
}

type RevenueReadStore interface {
	HealthRecordSources(ctx context.Context, start, end *time.Time) ([]RecordRevenueSource, error)
	NonCancelledOrderSources(ctx context.Context, start, end *time.Time) ([]OrderRevenueSource, error)
	ProductNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

type RevenueQueries interface {
	GetRevenueReport(ctx context.Context, start, end *time.Time, groupBy string) (*RevenueReport, error)
}

type revenueQueriesImpl struct {
	readStore RevenueReadStore
}

func NewRevenueQueries(readStore RevenueReadStore) RevenueQueries {
	return &revenueQueriesImpl{
		readStore: readStore,
	}
}

// GetRevenueReport merges two disjoint revenue streams: health-record
// consumption snapshots and non-cancelled order totals. An order never
// creates a health record and vice versa, so summing both never double
// counts.
func (q *revenueQueriesImpl) GetRevenueReport(ctx context.Context, start, end *time.Time, groupBy string) (*RevenueReport, error) {
	var bucketing GroupBy
	if groupBy != "" {
		parsed, err := ParseGroupBy(groupBy)
		if err != nil {
			return nil, err
		}
		bucketing = parsed
	}

	records, err := q.readStore.HealthRecordSources(ctx, start, end)
	if err != nil {
		return nil, err
	}
	orders, err := q.readStore.NonCancelledOrderSources(ctx, start, end)
	if err != nil {
		return nil, err
	}

	total := 0.0
	byProduct := map[uuid.UUID]float64{}
	byService := map[string]float64{}
	buckets := map[string]float64{}

	for _, rec := range records {
		recordTotal := 0.0
		for _, up := range rec.UsedProducts {
			amount := float64(up.Quantity) * up.UnitPrice
			byProduct[up.ProductID] += amount
			recordTotal += amount
		}
		for _, us := range rec.UsedServices {
			byService[us.Name] += us.Price
			recordTotal += us.Price
		}
		total += recordTotal
		if bucketing != "" {
			buckets[bucketKey(rec.Date, bucketing)] += recordTotal
		}
	}

	for _, ord := range orders {
		total += ord.Total
		for _, item := range ord.Items {
			byProduct[item.ProductID] += item.Subtotal
		}
		if bucketing != "" {
			buckets[bucketKey(ord.CreatedAt, bucketing)] += ord.Total
		}
	}

	report := &RevenueReport{
		TotalRevenue: total,
		ByProduct:    q.resolveProducts(ctx, byProduct),
		ByService:    sortServices(byService),
	}
	if bucketing != "" {
		report.Series = sortBuckets(buckets, bucketing)
	}
	return report, nil
}

// resolveProducts attaches catalog names best-effort: a failed lookup or a
// deleted product falls back to the raw id string instead of failing the
// whole report.
func (q *revenueQueriesImpl) resolveProducts(ctx context.Context, byProduct map[uuid.UUID]float64) []ProductRevenue {
	ids := make([]uuid.UUID, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}

	names, err := q.readStore.ProductNames(ctx, ids)
	if err != nil {
		names = nil
	}

	result := make([]ProductRevenue, 0, len(byProduct))
	for id, revenue := range byProduct {
		name, ok := names[id]
		if !ok {
			name = id.String()
		}
		result = append(result, ProductRevenue{ProductID: id, Name: name, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func sortServices(byService map[string]float64) []ServiceRevenue {
	result := make([]ServiceRevenue, 0, len(byService))
	for name, revenue := range byService {
		result = append(result, ServiceRevenue{Name: name, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].Name < result[j].Name
	})
	return result
}

func bucketKey(t time.Time, groupBy GroupBy) string {
	switch groupBy {
	case GroupByWeek:
		// ISO calendar week, not a naive day/7 split.
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GroupByMonth:
		return t.Format("2006-01")
	case GroupByYear:
		return t.Format("2006")
	default:
		return t.Format("2006-01-02")
	}
}

// sortBuckets orders periods chronologically using each granularity's own
// parse-back, so "2024-W9" style lexical traps never occur (keys are
// zero-padded and parsed, not string-compared).
func sortBuckets(buckets map[string]float64, groupBy GroupBy) []RevenueBucket {
	result := make([]RevenueBucket, 0, len(buckets))
	for period, revenue := range buckets {
		result = append(result, RevenueBucket{Period: period, Revenue: revenue})
	}
	sort.Slice(result, func(i, j int) bool {
		return parsePeriod(result[i].Period, groupBy).Before(parsePeriod(result[j].Period, groupBy))
	})
	return result
}

func parsePeriod(period string, groupBy GroupBy) time.Time {
	switch groupBy {
	case GroupByWeek:
		var year, week int
		if _, err := fmt.Sscanf(period, "%04d-W%02d", &year, &week); err != nil {
			return time.Time{}
		}
		return isoWeekStart(year, week)
	case GroupByMonth:
		t, _ := time.Parse("2006-01", period)
		return t
	case GroupByYear:
		t, _ := time.Parse("2006", period)
		return t
	default:
		t, _ := time.Parse("2006-01-02", period)
		return t
	}
}

// isoWeekStart returns the Monday of the given ISO week: January 4th always
// falls in week 1, so week 1's Monday is found from there.
func isoWeekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	week1Monday := jan4.AddDate(0, 0, -(weekday - 1))
	return week1Monday.AddDate(0, 0, (week-1)*7)
}
