//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"petcare-backend/internal/usecase/queries"
	queriesmock "petcare-backend/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RevenueQueriesTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockStore *queriesmock.MockRevenueReadStore
	revenue   queries.RevenueQueries
}

func (s *RevenueQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = queriesmock.NewMockRevenueReadStore(s.mockCtrl)
	s.revenue = queries.NewRevenueQueries(s.mockStore)
}

func (s *RevenueQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRevenueQueriesSuite(t *testing.T) {
	suite.Run(t, new(RevenueQueriesTestSuite))
}

func (s *RevenueQueriesTestSuite) TestGetRevenueReport() {
	ctx := context.Background()
	productA := uuid.New()
	productB := uuid.New()
	march10 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	s.Run("merges record and order revenue without double counting", func() {
		// One record worth 30 in product revenue, one order with total 50:
		// grand total must be exactly 80.
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				{
					Date: march10,
					UsedProducts: []queries.UsedProductView{
						{ProductID: productA, Quantity: 3, UnitPrice: 10.0},
					},
				},
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.OrderRevenueSource{
				{
					CreatedAt: march10,
					Total:     50.0,
					Items: []queries.OrderItemView{
						{ProductID: productA, Quantity: 2, UnitPrice: 10.0, Subtotal: 20.0},
						{ProductID: productB, Quantity: 1, UnitPrice: 30.0, Subtotal: 30.0},
					},
				},
			}, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{productA: "Flea Drops", productB: "Cat Tree"}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "")
		s.Require().NoError(err)
		s.Equal(80.0, report.TotalRevenue)

		expected := []queries.ProductRevenue{
			{ProductID: productA, Name: "Flea Drops", Revenue: 50.0},
			{ProductID: productB, Name: "Cat Tree", Revenue: 30.0},
		}
		if diff := cmp.Diff(expected, report.ByProduct); diff != "" {
			s.T().Errorf("by_product mismatch (-want +got):\n%s", diff)
		}
		s.Empty(report.ByService)
		s.Nil(report.Series)
	})

	s.Run("service revenue goes into by_service, not by_product", func() {
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				{
					Date: march10,
					UsedServices: []queries.UsedServiceView{
						{Name: "Grooming", Price: 25.0},
						{Name: "Grooming", Price: 25.0},
						{Name: "Nail Trim", Price: 10.0},
					},
				},
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(nil, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "")
		s.Require().NoError(err)
		s.Equal(60.0, report.TotalRevenue)

		expected := []queries.ServiceRevenue{
			{Name: "Grooming", Revenue: 50.0},
			{Name: "Nail Trim", Revenue: 10.0},
		}
		if diff := cmp.Diff(expected, report.ByService); diff != "" {
			s.T().Errorf("by_service mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("unresolved product names fall back to the raw id", func() {
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				{
					Date: march10,
					UsedProducts: []queries.UsedProductView{
						{ProductID: productA, Quantity: 1, UnitPrice: 15.0},
					},
				},
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(nil, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(nil, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "")
		s.Require().NoError(err)
		s.Require().Len(report.ByProduct, 1)
		s.Equal(productA.String(), report.ByProduct[0].Name)
	})

	s.Run("rejects unknown group_by values", func() {
		_, err := s.revenue.GetRevenueReport(ctx, nil, nil, "fortnight")
		s.ErrorIs(err, queries.ErrInvalidGroupBy)
	})
}

func (s *RevenueQueriesTestSuite) TestGetRevenueReportBucketing() {
	ctx := context.Background()
	productA := uuid.New()

	record := func(date time.Time, amount float64) queries.RecordRevenueSource {
		return queries.RecordRevenueSource{
			Date: date,
			UsedProducts: []queries.UsedProductView{
				{ProductID: productA, Quantity: 1, UnitPrice: amount},
			},
		}
	}

	s.Run("day buckets sort chronologically", func() {
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				record(time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC), 5.0),
				record(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), 7.0),
				record(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC), 3.0),
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(nil, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{productA: "Flea Drops"}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "day")
		s.Require().NoError(err)

		expected := []queries.RevenueBucket{
			{Period: "2025-03-10", Revenue: 10.0},
			{Period: "2025-03-12", Revenue: 5.0},
		}
		if diff := cmp.Diff(expected, report.Series); diff != "" {
			s.T().Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("week buckets use the ISO calendar across a year boundary", func() {
		// 2024-12-30 belongs to ISO week 2025-W01, not 2024-W53.
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				record(time.Date(2024, 12, 23, 12, 0, 0, 0, time.UTC), 4.0),
				record(time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC), 6.0),
				record(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC), 2.0),
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(nil, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{productA: "Flea Drops"}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "week")
		s.Require().NoError(err)

		expected := []queries.RevenueBucket{
			{Period: "2024-W52", Revenue: 4.0},
			{Period: "2025-W01", Revenue: 8.0},
		}
		if diff := cmp.Diff(expected, report.Series); diff != "" {
			s.T().Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("week ordering is chronological, not lexical", func() {
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				record(time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), 1.0),  // 2025-W10
				record(time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC), 2.0),  // 2025-W02
				record(time.Date(2024, 11, 4, 12, 0, 0, 0, time.UTC), 3.0), // 2024-W45
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(nil, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{productA: "Flea Drops"}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "week")
		s.Require().NoError(err)

		expected := []queries.RevenueBucket{
			{Period: "2024-W45", Revenue: 3.0},
			{Period: "2025-W02", Revenue: 2.0},
			{Period: "2025-W10", Revenue: 1.0},
		}
		if diff := cmp.Diff(expected, report.Series); diff != "" {
			s.T().Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("records bucket by visit date, orders by created_at", func() {
		s.mockStore.EXPECT().HealthRecordSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.RecordRevenueSource{
				record(time.Date(2025, 2, 5, 12, 0, 0, 0, time.UTC), 10.0),
			}, nil)
		s.mockStore.EXPECT().NonCancelledOrderSources(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return([]queries.OrderRevenueSource{
				{CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), Total: 20.0},
			}, nil)
		s.mockStore.EXPECT().ProductNames(gomock.Any(), gomock.Any()).
			Return(map[uuid.UUID]string{productA: "Flea Drops"}, nil)

		report, err := s.revenue.GetRevenueReport(ctx, nil, nil, "month")
		s.Require().NoError(err)

		expected := []queries.RevenueBucket{
			{Period: "2025-02", Revenue: 10.0},
			{Period: "2025-03", Revenue: 20.0},
		}
		if diff := cmp.Diff(expected, report.Series); diff != "" {
			s.T().Errorf("series mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParseGroupBy(t *testing.T) {
	for _, valid := range []string{"day", "week", "month", "year"} {
		got, err := queries.ParseGroupBy(valid)
		if err != nil {
			t.Fatalf("ParseGroupBy(%q) returned error: %v", valid, err)
		}
		if string(got) != valid {
			t.Fatalf("ParseGroupBy(%q) = %q", valid, got)
		}
	}
	for _, invalid := range []string{"", "Day", "weekly", "quarter", "7"} {
		if _, err := queries.ParseGroupBy(invalid); err == nil {
			t.Fatalf("ParseGroupBy(%q) should fail", invalid)
		}
	}
}
