package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2025-02-28")
	require.NoError(t, err)
	assert.Equal(t, domain.NewDate(2025, time.February, 28), d)
	assert.Equal(t, "2025-02-28", domain.FormatDate(d))

	for _, bad := range []string{"", "2025-02-30", "28/02/2025", "2025-2-28", "20250228"} {
		_, err := domain.ParseDate(bad)
		assert.Error(t, err, bad)
	}
}

func TestDateOf(t *testing.T) {
	bucharest := time.FixedZone("EET", 2*60*60)

	// 00:30 local on Jan 2 is still Jan 1 in UTC; the local calendar date wins.
	local := time.Date(2025, time.January, 2, 0, 30, 0, 0, bucharest)
	assert.Equal(t, domain.NewDate(2025, time.January, 2), domain.DateOf(local))
}

func TestParseDateField(t *testing.T) {
	v := &apperrors.ValidationFailedError{}

	assert.True(t, domain.ParseDateField(v, "start_date", "").IsZero())
	assert.True(t, domain.ParseDateField(v, "end_date", "2025-13-01").IsZero())
	got := domain.ParseDateField(v, "claim_date", "2025-01-31")

	assert.Equal(t, domain.NewDate(2025, time.January, 31), got)
	assert.Equal(t, map[string][]string{
		"start_date": {domain.MsgDateRequired},
		"end_date":   {domain.MsgDateFormat},
	}, v.Fields)
}
