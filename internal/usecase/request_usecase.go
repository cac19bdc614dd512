// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"compras/internal/domain/entity"
)

// --- Input DTOs ---

// SubmitRequestInput defines the data required to submit a new purchase
// request. The shape-specific fields are validated against Tipo.
type SubmitRequestInput struct {
	Unidade  string
	Urgencia entity.Urgencia
	Tipo     entity.Categoria

	TemPrazo entity.SimNao
	Prazo    string // "2006-01-02", required when TemPrazo is "sim"

	// produto shape
	NomeProduto       string
	QuantidadeProduto int
	QuerLink          entity.SimNao
	LinkProduto       string

	// servico shape
	DescricaoServico string
	QuerIndicar      entity.SimNao
	NomeIndicacao    string
}

// FulfillmentInput carries the purchase details merged by ConfirmPurchase.
// Valor keeps the locale-formatted string as entered.
type FulfillmentInput struct {
	Valor          string
	Cotacoes       []string
	DataChegada    string
	DataRealizacao string
}

// AttachInvoiceInput carries the invoice pages for a purchased request.
type AttachInvoiceInput struct {
	Pages        []string
	MimeType     string
	OriginalName string
}

// --- Output DTOs ---

// SubmitRequestOutput returns the server-assigned id of the new request.
type SubmitRequestOutput struct {
	ID      string
	Request *entity.PurchaseRequest
}

// RequestCounts is the pure projection over the collection used by the
// approval and purchase screens.
type RequestCounts struct {
	PendingApprovals int `json:"pendingApprovals"`
	PendingPurchases int `json:"pendingPurchases"`
}

// RequestUsecase is the lifecycle engine contract the delivery layer depends
// on. Every state-changing call takes the asserted Actor; the engine gates on
// the actor's role before inspecting status.
type RequestUsecase interface {
	Submit(ctx context.Context, requester *entity.Actor, input *SubmitRequestInput) (*SubmitRequestOutput, error)

	Approve(ctx context.Context, id string, actor *entity.Actor) (*entity.PurchaseRequest, error)
	Reject(ctx context.Context, id string, actor *entity.Actor, justificativa string) (*entity.PurchaseRequest, error)
	ConfirmPurchase(ctx context.Context, id string, actor *entity.Actor, input *FulfillmentInput) (*entity.PurchaseRequest, error)

	AttachInvoice(ctx context.Context, id string, input *AttachInvoiceInput) error
	GetInvoice(ctx context.Context, id string) (*entity.Invoice, error)

	Get(ctx context.Context, id string) (*entity.PurchaseRequest, error)
	Track(ctx context.Context, qrData string) (*entity.PurchaseRequest, error)
	List(ctx context.Context) ([]*entity.PurchaseRequest, error)
	ListByRequester(ctx context.Context, uid string) ([]*entity.PurchaseRequest, error)
	ListByStatus(ctx context.Context, status entity.Status) ([]*entity.PurchaseRequest, error)
}

// DeriveCounts projects the collection into the two pending counters.
// Pure: no I/O, safe to call on any snapshot.
func DeriveCounts(requests []*entity.PurchaseRequest) RequestCounts {
	var counts RequestCounts
	for _, r := range requests {
		switch r.Status {
		case entity.StatusPendente:
			counts.PendingApprovals++
		case entity.StatusAprovado:
			counts.PendingPurchases++
		}
	}

	return counts
}
