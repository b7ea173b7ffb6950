package dto

import (
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
)

// HistoryEntryResponse is one element of a car's timeline. Policy entries
// carry policyId/startDate/endDate/provider, claim entries carry
// claimId/claimDate/amount/description.
type HistoryEntryResponse struct {
	Type string `json:"type" example:"POLICY"`

	PolicyID  *string `json:"policyId,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Provider  *string `json:"provider,omitempty"`

	ClaimID     *string  `json:"claimId,omitempty"`
	ClaimDate   *string  `json:"claimDate,omitempty"`
	Amount      *float64 `json:"amount,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ToHistoryResponse converts a merged timeline to its wire form.
func ToHistoryResponse(entries []domain.TimelineEntry) []HistoryEntryResponse {
	res := make([]HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		switch e.Type {
		case domain.TimelineEntryPolicy:
			p := e.Policy
			res = append(res, HistoryEntryResponse{
				Type:      string(e.Type),
				PolicyID:  ptr(p.PolicyID),
				StartDate: ptr(domain.FormatDate(p.StartDate)),
				EndDate:   ptr(domain.FormatDate(p.EndDate)),
				Provider:  ptr(p.Provider),
			})
		case domain.TimelineEntryClaim:
			c := e.Claim
			res = append(res, HistoryEntryResponse{
				Type:        string(e.Type),
				ClaimID:     ptr(c.ClaimID),
				ClaimDate:   ptr(domain.FormatDate(c.ClaimDate)),
				Amount:      ptr(c.Amount.InexactFloat64()),
				Description: ptr(c.Description),
			})
		}
	}
	return res
}

func ptr[T any](v T) *T {
	return &v
}
