package models

import (
	"github.com/diegoclair/weekday-api/internal/domain/entity"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type HistoryResponse struct {
	Count   int              `json:"count"`
	Lookups []*entity.Lookup `json:"lookups"`
}

func NewHistoryResponse(lookups []*entity.Lookup) HistoryResponse {
	if lookups == nil {
		lookups = []*entity.Lookup{}
	}
	return HistoryResponse{
		Count:   len(lookups),
		Lookups: lookups,
	}
}
