package impl

import (
	"io"
	"log/slog"
	"time"

	"compras/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newActor(role entity.Role) *entity.Actor {
	return &entity.Actor{
		UID:   "maria_example_com",
		Nome:  "Maria Souza",
		Email: "maria@example.com",
		Role:  role,
	}
}

func newPendingProdutoRequest() *entity.PurchaseRequest {
	return &entity.PurchaseRequest{
		ID:                "-OTest123",
		SolicitanteNome:   "João Silva",
		SolicitanteEmail:  "joao@example.com",
		SolicitanteUID:    "joao_example_com",
		Unidade:           "TI",
		Urgencia:          entity.UrgenciaAlto,
		Tipo:              entity.CategoriaProduto,
		NomeProduto:       "Notebook",
		QuantidadeProduto: 2,
		Status:            entity.StatusPendente,
		CreatedAt:         time.Now().UTC().Add(-time.Hour),
	}
}

func newApprovedServicoRequest() *entity.PurchaseRequest {
	approvedAt := time.Now().UTC().Add(-time.Hour)

	return &entity.PurchaseRequest{
		ID:               "-OTest456",
		SolicitanteNome:  "João Silva",
		SolicitanteEmail: "joao@example.com",
		SolicitanteUID:   "joao_example_com",
		Unidade:          "Marketing",
		Urgencia:         entity.UrgenciaMedio,
		Tipo:             entity.CategoriaServico,
		DescricaoServico: "Manutenção do ar condicionado",
		Status:           entity.StatusAprovado,
		CreatedAt:        time.Now().UTC().Add(-2 * time.Hour),
		ApprovedAt:       &approvedAt,
	}
}
