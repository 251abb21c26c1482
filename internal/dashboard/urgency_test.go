package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func days(n int) *int {
	return &n
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days *int
		want Tier
	}{
		{nil, TierTBD},
		{days(-5), TierPassed},
		{days(-1), TierPassed},
		{days(0), TierHigh},
		{days(2), TierHigh},
		{days(15), TierHigh},
		{days(16), TierMedium},
		{days(20), TierMedium},
		{days(30), TierMedium},
		{days(31), TierLow},
		{days(400), TierLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.days), "days=%v", tt.days)
	}
}

func TestLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Fecha por definir", Label(nil))
	assert.Equal(t, "Vencido", Label(days(-5)))
	assert.Equal(t, "0d", Label(days(0)))
	assert.Equal(t, "2d", Label(days(2)))
	assert.Equal(t, "7d", Label(days(7)))
	assert.Equal(t, "8 días", Label(days(8)))
	assert.Equal(t, "20 días", Label(days(20)))
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, StatusPassed, StatusOf(nil))
	assert.Equal(t, StatusPassed, StatusOf(days(-5)))
	assert.Equal(t, StatusUrgent, StatusOf(days(0)))
	assert.Equal(t, StatusUrgent, StatusOf(days(30)))
	assert.Equal(t, StatusWarning, StatusOf(days(31)))
	assert.Equal(t, StatusWarning, StatusOf(days(90)))
	assert.Equal(t, StatusGood, StatusOf(days(91)))
}

func TestScalesAreIndependent(t *testing.T) {
	t.Parallel()

	// 20 days is a medium card tier but an urgent table status.
	assert.Equal(t, TierMedium, Classify(days(20)))
	assert.Equal(t, StatusUrgent, StatusOf(days(20)))

	// 60 days is low on cards and still a warning in the table.
	assert.Equal(t, TierLow, Classify(days(60)))
	assert.Equal(t, StatusWarning, StatusOf(days(60)))
}

func TestExpiredScenario(t *testing.T) {
	t.Parallel()

	d := days(-5)
	assert.Equal(t, TierPassed, Classify(d))
	assert.Equal(t, "Vencido", Label(d))
	assert.Equal(t, "status-passed", StatusOf(d).Class())
	assert.Equal(t, "urgency-passed", Classify(d).Class())
}
