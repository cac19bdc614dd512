package entity

import "time"

// Status is the lifecycle state of a purchase request.
//
// Legal graph: pendente -> aprovado | reprovado ; aprovado -> comprado.
// reprovado and comprado are terminal.
type Status string

const (
	StatusPendente  Status = "pendente"
	StatusAprovado  Status = "aprovado"
	StatusReprovado Status = "reprovado"
	StatusComprado  Status = "comprado"
)

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusReprovado, StatusComprado:
		return true
	default:
		return false
	}
}

// Urgencia is the requester-declared urgency of a purchase request.
type Urgencia string

const (
	UrgenciaBaixo Urgencia = "Baixo"
	UrgenciaMedio Urgencia = "Médio"
	UrgenciaAlto  Urgencia = "Alto"
)

// Categoria discriminates the two request shapes.
type Categoria string

const (
	CategoriaProduto Categoria = "produto"
	CategoriaServico Categoria = "servico"
)

// SimNao is a yes/no flag kept in the "sim"/"nao" wire form the documents use.
type SimNao string

const (
	SimNaoSim SimNao = "sim"
	SimNaoNao SimNao = "nao"
)

// Bool reports whether the flag is affirmative.
func (f SimNao) Bool() bool {
	return f == SimNaoSim
}

// Unidades are the six fixed unit labels a request may carry.
var Unidades = []string{
	"Administrativo",
	"Comercial",
	"Financeiro",
	"Marketing",
	"Operações",
	"TI",
}

// IsUnidade reports whether the label is one of the fixed units.
func IsUnidade(label string) bool {
	for _, u := range Unidades {
		if u == label {
			return true
		}
	}

	return false
}

// PurchaseRequest is the document stored under /compras/{id}.
//
// The lifecycle engine is the sole writer of Status and its transition
// timestamps; each timestamp is set exactly once, by the transition that
// produces its status, and never cleared.
type PurchaseRequest struct {
	// ID is the server-generated document key, not part of the stored body.
	ID string `json:"-"`

	SolicitanteNome  string `json:"solicitanteNome"`
	SolicitanteEmail string `json:"solicitanteEmail"`
	SolicitanteUID   string `json:"solicitanteUid"`

	Unidade  string   `json:"unidade,omitempty"`
	Urgencia Urgencia `json:"urgencia,omitempty"`

	TemPrazo SimNao     `json:"temPrazo,omitempty"`
	Prazo    *time.Time `json:"prazo,omitempty"`

	Tipo Categoria `json:"tipo,omitempty"`

	// Product-shaped fields.
	NomeProduto        string `json:"nomeProduto,omitempty"`
	QuantidadeProduto  int    `json:"quantidadeProduto,omitempty"`
	QuerLink           SimNao `json:"querLink,omitempty"`
	LinkProduto        string `json:"linkProduto,omitempty"`

	// Service-shaped fields.
	DescricaoServico string `json:"descricaoServico,omitempty"`
	QuerIndicar      SimNao `json:"querIndicar,omitempty"`
	NomeIndicacao    string `json:"nomeIndicacao,omitempty"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`
	PurchasedAt *time.Time `json:"purchasedAt,omitempty"`

	Justificativa string `json:"justificativa,omitempty"`

	// Fulfillment fields merged by ConfirmPurchase. Valor keeps the
	// locale-formatted string as entered ("R$ 1.234,56").
	Valor          string   `json:"valor,omitempty"`
	Cotacoes       []string `json:"cotacoes,omitempty"`
	DataChegada    string   `json:"dataChegada,omitempty"`
	DataRealizacao string   `json:"dataRealizacao,omitempty"`

	HasInvoice        bool `json:"hasInvoice,omitempty"`
	InvoicePagesCount int  `json:"invoicePagesCount,omitempty"`
}

// CanBeReviewed reports whether Approve/Reject preconditions hold.
func (r *PurchaseRequest) CanBeReviewed() bool {
	return r.Status == StatusPendente
}

// CanBePurchased reports whether the ConfirmPurchase precondition holds.
func (r *PurchaseRequest) CanBePurchased() bool {
	return r.Status == StatusAprovado
}
