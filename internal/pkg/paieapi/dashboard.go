package paieapi

import (
	"context"

	"github.com/paielab/paie-gateway/internal/domain/dashboard"
)

// ContributionRates returns the contribution rates with the freshness
// status the backend computes from its last scrape.
func (s *Session) ContributionRates(ctx context.Context) (dashboard.RatesResponse, error) {
	var resp dashboard.RatesResponse
	if err := s.get(ctx, "/api/dashboard/contribution-rates", nil, &resp); err != nil {
		return dashboard.RatesResponse{}, err
	}
	return resp, nil
}
