package usecase

import (
	"testing"

	"compras/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCounts(t *testing.T) {
	build := func(statuses ...entity.Status) []*entity.PurchaseRequest {
		out := make([]*entity.PurchaseRequest, len(statuses))
		for i, s := range statuses {
			out[i] = &entity.PurchaseRequest{Status: s}
		}

		return out
	}

	tests := []struct {
		name             string
		requests         []*entity.PurchaseRequest
		pendingApprovals int
		pendingPurchases int
	}{
		{
			name: "mixed collection",
			requests: build(
				entity.StatusPendente, entity.StatusPendente, entity.StatusPendente,
				entity.StatusAprovado, entity.StatusAprovado,
				entity.StatusReprovado,
				entity.StatusComprado, entity.StatusComprado, entity.StatusComprado, entity.StatusComprado,
			),
			pendingApprovals: 3,
			pendingPurchases: 2,
		},
		{
			name:             "empty collection",
			requests:         nil,
			pendingApprovals: 0,
			pendingPurchases: 0,
		},
		{
			name:             "terminal statuses only",
			requests:         build(entity.StatusReprovado, entity.StatusComprado),
			pendingApprovals: 0,
			pendingPurchases: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counts := DeriveCounts(tt.requests)
			assert.Equal(t, tt.pendingApprovals, counts.PendingApprovals)
			assert.Equal(t, tt.pendingPurchases, counts.PendingPurchases)
		})
	}
}
