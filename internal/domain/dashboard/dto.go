// Package dashboard exposes the company KPI data the payroll backend
// derives for the landing views.
package dashboard

// ContributionRate is one scraped contribution rate with its freshness
// status (green/orange/red, aged backend-side from the last scrape).
// Salarial and Patronal are passed through untouched: the backend emits
// numbers, breakdown objects or display strings depending on the rate.
type ContributionRate struct {
	ID       string `json:"id"`
	Label    string `json:"libelle"`
	Salarial any    `json:"salarial"`
	Patronal any    `json:"patronal"`
	Status   string `json:"status"`
}

// RatesResponse is the contribution-rates KPI payload.
type RatesResponse struct {
	Rates     []ContributionRate `json:"rates"`
	LastCheck *string            `json:"last_check"`
}
