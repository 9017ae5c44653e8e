package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordPointsAwarded(t *testing.T) {
	before := testutil.ToFloat64(PointsAwardedTotal.WithLabelValues("riddle"))

	RecordPointsAwarded("riddle", 10)

	after := testutil.ToFloat64(PointsAwardedTotal.WithLabelValues("riddle"))
	assert.Equal(t, before+10, after)
}

func TestRecordWalletTransaction(t *testing.T) {
	before := testutil.ToFloat64(WalletTransactionsTotal.WithLabelValues("earn"))

	RecordWalletTransaction("earn")

	after := testutil.ToFloat64(WalletTransactionsTotal.WithLabelValues("earn"))
	assert.Equal(t, before+1, after)
}

func TestRecordWelcomeBonus(t *testing.T) {
	before := testutil.ToFloat64(WelcomeBonusesTotal)

	RecordWelcomeBonus()

	assert.Equal(t, before+1, testutil.ToFloat64(WelcomeBonusesTotal))
}

func TestRecordGameSolved(t *testing.T) {
	before := testutil.ToFloat64(GamesSolvedTotal.WithLabelValues("sudoku"))

	RecordGameSolved("sudoku")

	assert.Equal(t, before+1, testutil.ToFloat64(GamesSolvedTotal.WithLabelValues("sudoku")))
}

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/wallet", "200"))

	RecordHTTPRequest("GET", "/wallet", "200", 0.05)

	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/wallet", "200")))
}
