package dashboard

import "context"

// DashboardService proxies the KPI endpoints of the payroll API.
type DashboardService interface {
	// ContributionRates returns the scraped contribution rates with
	// their freshness status.
	ContributionRates(ctx context.Context, token string) (RatesResponse, error)
}
