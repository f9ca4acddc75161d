package dashboard

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/dashboard"
	"github.com/paielab/paie-gateway/internal/pkg/paieapi"
)

type dashboardServiceImpl struct {
	client *paieapi.Client
}

func NewDashboardService(client *paieapi.Client) dashboard.DashboardService {
	return &dashboardServiceImpl{client: client}
}

// ContributionRates implements dashboard.DashboardService.
func (s *dashboardServiceImpl) ContributionRates(ctx context.Context, token string) (dashboard.RatesResponse, error) {
	return s.client.WithToken(token).ContributionRates(ctx)
}
