package response

import (
	"petcare-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductRevenueResponse struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Revenue   float64   `json:"revenue"`
}

type ServiceRevenueResponse struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

type RevenueBucketResponse struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
}

type RevenueReportResponse struct {
	TotalRevenue float64                  `json:"total_revenue"`
	ByProduct    []ProductRevenueResponse `json:"by_product"`
	ByService    []ServiceRevenueResponse `json:"by_service"`
	Series       []RevenueBucketResponse  `json:"series,omitempty"`
}

func FromRevenueReport(r *queries.RevenueReport) *RevenueReportResponse {
	byProduct := make([]ProductRevenueResponse, len(r.ByProduct))
	for i, p := range r.ByProduct {
		byProduct[i] = ProductRevenueResponse(p)
	}
	byService := make([]ServiceRevenueResponse, len(r.ByService))
	for i, s := range r.ByService {
		byService[i] = ServiceRevenueResponse(s)
	}
	var series []RevenueBucketResponse
	if len(r.Series) > 0 {
		series = make([]RevenueBucketResponse, len(r.Series))
		for i, b := range r.Series {
			series[i] = RevenueBucketResponse(b)
		}
	}
	return &RevenueReportResponse{
		TotalRevenue: r.TotalRevenue,
		ByProduct:    byProduct,
		ByService:    byService,
		Series:       series,
	}
}
