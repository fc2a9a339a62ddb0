package service

import (
	"context"

	"go-storefront-ws/internal/model"
	"go-storefront-ws/internal/repository"
)

// DashboardStats is the admin overview: counts per status plus revenue
// from settled sales. Computed on demand from the transaction list.
type DashboardStats struct {
	TotalProducts       int   `json:"totalProducts"`
	TotalTransactions   int   `json:"totalTransactions"`
	PendingVerification int   `json:"pendingVerification"`
	SuccessCount        int   `json:"successCount"`
	FailedCount         int   `json:"failedCount"`
	TotalRevenue        int64 `json:"totalRevenue"`
}

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
}

func NewDashboardService(transactions repository.TransactionRepository, products repository.ProductRepository) DashboardService {
	return &dashboardService{
		transactions: transactions,
		products:     products,
	}
}

func (s *dashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	trxs, err := s.transactions.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalProducts:     len(products),
		TotalTransactions: len(trxs),
	}
	for _, trx := range trxs {
		switch trx.Status {
		case model.StatusWaitingVerification:
			stats.PendingVerification++
		case model.StatusSuccess:
			stats.SuccessCount++
			stats.TotalRevenue += trx.Amount
		case model.StatusFailed:
			stats.FailedCount++
		}
	}
	return stats, nil
}
