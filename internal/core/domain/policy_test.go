package domain_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		start    time.Time
		end      time.Time
		want     map[string][]string
	}{
		{
			name:  "single day policy",
			start: domain.NewDate(2025, time.January, 1),
			end:   domain.NewDate(2025, time.January, 1),
		},
		{
			name:     "full year with provider",
			provider: "Allianz",
			start:    domain.NewDate(2025, time.January, 1),
			end:      domain.NewDate(2025, time.December, 31),
		},
		{
			name:  "end before start",
			start: domain.NewDate(2025, time.January, 2),
			end:   domain.NewDate(2025, time.January, 1),
			want:  map[string][]string{"end_date": {domain.MsgEndBeforeStart}},
		},
		{
			name:  "boundary years accepted",
			start: domain.NewDate(1900, time.January, 1),
			end:   domain.NewDate(2100, time.December, 31),
		},
		{
			name:  "years out of range",
			start: domain.NewDate(1899, time.December, 31),
			end:   domain.NewDate(2101, time.January, 1),
			want: map[string][]string{
				"start_date": {domain.MsgYearOutOfRange},
				"end_date":   {domain.MsgYearOutOfRange},
			},
		},
		{
			name:  "order not checked when a year is out of range",
			start: domain.NewDate(2025, time.January, 1),
			end:   domain.NewDate(1800, time.January, 1),
			want:  map[string][]string{"end_date": {domain.MsgYearOutOfRange}},
		},
		{
			name:     "provider too long",
			provider: strings.Repeat("é", domain.MaxProviderLength+1),
			start:    domain.NewDate(2025, time.January, 1),
			end:      domain.NewDate(2025, time.January, 1),
			want:     map[string][]string{"provider": {domain.MsgProviderTooLong}},
		},
		{
			name:     "provider at limit counted in characters",
			provider: strings.Repeat("é", domain.MaxProviderLength),
			start:    domain.NewDate(2025, time.January, 1),
			end:      domain.NewDate(2025, time.January, 1),
		},
		{
			name: "unparsed dates are skipped",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.ValidatePolicy(tt.provider, tt.start, tt.end)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperrors.ErrValidation)
			v, ok := apperrors.AsValidationFailed(err)
			require.True(t, ok)
			assert.Equal(t, tt.want, v.Fields)
		})
	}
}

func TestInsurancePolicy_Covers(t *testing.T) {
	p := domain.InsurancePolicy{
		StartDate: domain.NewDate(2025, time.January, 1),
		EndDate:   domain.NewDate(2025, time.December, 31),
	}

	assert.True(t, p.Covers(domain.NewDate(2025, time.January, 1)), "start is inclusive")
	assert.True(t, p.Covers(domain.NewDate(2025, time.June, 15)))
	assert.True(t, p.Covers(domain.NewDate(2025, time.December, 31)), "end is inclusive")
	assert.False(t, p.Covers(domain.NewDate(2024, time.December, 31)))
	assert.False(t, p.Covers(domain.NewDate(2026, time.January, 1)))
}

func TestInsurancePolicy_Overlaps(t *testing.T) {
	p := domain.InsurancePolicy{
		StartDate: domain.NewDate(2025, time.January, 1),
		EndDate:   domain.NewDate(2025, time.December, 31),
	}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{"shares the end day", domain.NewDate(2025, time.December, 31), domain.NewDate(2026, time.March, 1), true},
		{"shares the start day", domain.NewDate(2024, time.June, 1), domain.NewDate(2025, time.January, 1), true},
		{"contained", domain.NewDate(2025, time.March, 1), domain.NewDate(2025, time.March, 2), true},
		{"contains", domain.NewDate(2024, time.January, 1), domain.NewDate(2026, time.January, 1), true},
		{"adjacent after", domain.NewDate(2026, time.January, 1), domain.NewDate(2026, time.December, 31), false},
		{"adjacent before", domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.December, 31), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Overlaps(tt.start, tt.end))
		})
	}
}
