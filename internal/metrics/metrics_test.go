package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, RefreshListingsTotal)
	assert.NotNil(t, RefreshErrorsTotal)
	assert.NotNil(t, RefreshDuration)
	assert.NotNil(t, CatalogSize)
	assert.NotNil(t, ExtractionDuration)
	assert.NotNil(t, ExtractionFailuresTotal)
	assert.NotNil(t, RatingDistribution)
	assert.NotNil(t, FeedCallsTotal)
	assert.NotNil(t, FeedDailyUsage)
	assert.NotNil(t, FeedDailyLimitHits)
}
