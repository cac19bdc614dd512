// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"time"

	deliverycontext "compras/internal/delivery/context"
	"compras/internal/domain/entity"
	domainerrors "compras/internal/domain/errors"
	"compras/internal/domain/repository"
	"compras/internal/domain/service"
	"compras/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notifyTimeout bounds the detached notification dispatch after a transition
// commits. The relay client carries its own deadline; this one caps the whole
// fan-out including recipient lookups.
const notifyTimeout = 8 * time.Second

const prazoLayout = "2006-01-02"

// requestService implements the RequestUsecase interface. It is the only
// writer of request status and transition timestamps.
type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	invoiceRepo repository.InvoiceRepository
	notifier    service.Notifier
	publisher   service.EventPublisher
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	UserRepo    repository.UserRepository
	InvoiceRepo repository.InvoiceRepository
	Notifier    service.Notifier
	Publisher   service.EventPublisher
	QRCode      service.QRCodeService
	Logger      *slog.Logger
}

// NewRequestService is the constructor for requestService. It receives all dependencies as interfaces.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		userRepo:    params.UserRepo,
		invoiceRepo: params.InvoiceRepo,
		notifier:    params.Notifier,
		publisher:   params.Publisher,
		qrcode:      params.QRCode,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit validates the draft, persists it as pendente and fans out the
// submission mails. Validation is aggregated: the caller sees every missing
// field label at once, not just the first.
func (srv *requestService) Submit(ctx context.Context, requester *entity.Actor, input *usecase.SubmitRequestInput) (*usecase.SubmitRequestOutput, error) {
	request, err := buildRequest(requester, input)
	if err != nil {
		return nil, err
	}

	id, err := srv.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, errors.Wrap(err, "failed to persist purchase request")
	}
	request.ID = id

	srv.log(ctx).Info("Purchase request submitted",
		slog.String("pedido_id", id),
		slog.String("solicitante_uid", requester.UID),
		slog.String("tipo", string(request.Tipo)),
	)

	srv.dispatchSubmissionMails(ctx, request)
	srv.publishEvent(ctx, service.EventRequestCreated, request, requester.UID)

	return &usecase.SubmitRequestOutput{ID: id, Request: request}, nil
}

// buildRequest runs the aggregated draft validation and assembles the
// pendente document. The missing-field labels are the exact strings shown to
// the requester.
func buildRequest(requester *entity.Actor, input *usecase.SubmitRequestInput) (*entity.PurchaseRequest, error) {
	var missing []string

	if input.Unidade == "" || !entity.IsUnidade(input.Unidade) {
		missing = append(missing, "Unidade")
	}
	if input.Urgencia != entity.UrgenciaBaixo && input.Urgencia != entity.UrgenciaMedio && input.Urgencia != entity.UrgenciaAlto {
		missing = append(missing, "Urgência")
	}

	var prazo *time.Time
	if input.TemPrazo.Bool() {
		parsed, err := time.Parse(prazoLayout, input.Prazo)
		if err != nil {
			missing = append(missing, "Prazo")
		} else {
			prazo = &parsed
		}
	}

	switch input.Tipo {
	case entity.CategoriaProduto:
		if input.NomeProduto == "" {
			missing = append(missing, "Nome do produto")
		}
		if input.QuantidadeProduto <= 0 {
			missing = append(missing, "Quantidade")
		}
		if input.QuerLink.Bool() && input.LinkProduto == "" {
			missing = append(missing, "Link do produto")
		}

	case entity.CategoriaServico:
		if input.DescricaoServico == "" {
			missing = append(missing, "Descrição do serviço")
		}
		if input.QuerIndicar.Bool() && input.NomeIndicacao == "" {
			missing = append(missing, "Nome de quem quer indicar")
		}

	default:
		missing = append(missing, "Tipo")
	}

	if len(missing) > 0 {
		return nil, domainerrors.NewValidationError(missing...)
	}

	request := &entity.PurchaseRequest{
		SolicitanteNome:  requester.Nome,
		SolicitanteEmail: requester.Email,
		SolicitanteUID:   requester.UID,

		Unidade:  input.Unidade,
		Urgencia: input.Urgencia,
		Tipo:     input.Tipo,

		TemPrazo: input.TemPrazo,
		Prazo:    prazo,

		Status:    entity.StatusPendente,
		CreatedAt: time.Now().UTC(),
	}

	switch input.Tipo {
	case entity.CategoriaProduto:
		request.NomeProduto = input.NomeProduto
		request.QuantidadeProduto = input.QuantidadeProduto
		request.QuerLink = input.QuerLink
		request.LinkProduto = input.LinkProduto
	case entity.CategoriaServico:
		request.DescricaoServico = input.DescricaoServico
		request.QuerIndicar = input.QuerIndicar
		request.NomeIndicacao = input.NomeIndicacao
	}

	return request, nil
}

// Approve moves a pendente request to aprovado. The actor's role is checked
// before the status precondition, so an unauthorized caller learns nothing
// about the request's current state.
func (srv *requestService) Approve(ctx context.Context, id string, actor *entity.Actor) (*entity.PurchaseRequest, error) {
	if !actor.Role.CanApprove() {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	request, err := srv.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.CanBeReviewed() {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"status":     string(entity.StatusAprovado),
		"approvedAt": now.Format(time.RFC3339),
	}
	if err := srv.requestRepo.Patch(ctx, id, fields); err != nil {
		return nil, errors.Wrap(err, "failed to patch request status")
	}

	request.Status = entity.StatusAprovado
	request.ApprovedAt = &now

	srv.log(ctx).Info("Purchase request approved",
		slog.String("pedido_id", id),
		slog.String("actor_uid", actor.UID),
	)

	srv.dispatchAsync(ctx, &entity.NotificationPayload{
		NotificationType:  entity.NotificationPedidoAprovado,
		DestinatarioNome:  request.SolicitanteNome,
		DestinatarioEmail: request.SolicitanteEmail,
		PedidoID:          id,
		Pedido:            request,
	})
	srv.publishEvent(ctx, service.EventRequestApproved, request, actor.UID)

	return request, nil
}

// Reject moves a pendente request to reprovado, recording an optional
// justificativa. An empty justificativa is stored as the empty string.
func (srv *requestService) Reject(ctx context.Context, id string, actor *entity.Actor, justificativa string) (*entity.PurchaseRequest, error) {
	if !actor.Role.CanApprove() {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	request, err := srv.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.CanBeReviewed() {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"status":        string(entity.StatusReprovado),
		"rejectedAt":    now.Format(time.RFC3339),
		"justificativa": justificativa,
	}
	if err := srv.requestRepo.Patch(ctx, id, fields); err != nil {
		return nil, errors.Wrap(err, "failed to patch request status")
	}

	request.Status = entity.StatusReprovado
	request.RejectedAt = &now
	request.Justificativa = justificativa

	srv.log(ctx).Info("Purchase request rejected",
		slog.String("pedido_id", id),
		slog.String("actor_uid", actor.UID),
	)

	srv.dispatchAsync(ctx, &entity.NotificationPayload{
		NotificationType:  entity.NotificationPedidoReprovado,
		DestinatarioNome:  request.SolicitanteNome,
		DestinatarioEmail: request.SolicitanteEmail,
		PedidoID:          id,
		Pedido:            request,
		Justificativa:     justificativa,
	})
	srv.publishEvent(ctx, service.EventRequestRejected, request, actor.UID)

	return request, nil
}

// ConfirmPurchase moves an aprovado request to comprado, merging the
// fulfillment details. The in-transit mail carries a tracking QR.
func (srv *requestService) ConfirmPurchase(ctx context.Context, id string, actor *entity.Actor, input *usecase.FulfillmentInput) (*entity.PurchaseRequest, error) {
	if !actor.Role.CanPurchase() {
		return nil, domainerrors.ErrRoleNotAllowed
	}

	request, err := srv.findRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.CanBePurchased() {
		return nil, domainerrors.ErrInvalidTransition
	}

	if err := validateFulfillment(request.Tipo, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	fields := map[string]any{
		"status":      string(entity.StatusComprado),
		"purchasedAt": now.Format(time.RFC3339),
		"valor":       input.Valor,
	}
	switch request.Tipo {
	case entity.CategoriaProduto:
		fields["cotacoes"] = input.Cotacoes
		fields["dataChegada"] = input.DataChegada
	case entity.CategoriaServico:
		fields["dataRealizacao"] = input.DataRealizacao
	}
	if err := srv.requestRepo.Patch(ctx, id, fields); err != nil {
		return nil, errors.Wrap(err, "failed to patch request status")
	}

	request.Status = entity.StatusComprado
	request.PurchasedAt = &now
	request.Valor = input.Valor
	request.Cotacoes = input.Cotacoes
	request.DataChegada = input.DataChegada
	request.DataRealizacao = input.DataRealizacao

	srv.log(ctx).Info("Purchase confirmed",
		slog.String("pedido_id", id),
		slog.String("actor_uid", actor.UID),
	)

	srv.dispatchAsync(ctx, &entity.NotificationPayload{
		NotificationType:  entity.NotificationPedidoACaminho,
		DestinatarioNome:  request.SolicitanteNome,
		DestinatarioEmail: request.SolicitanteEmail,
		PedidoID:          id,
		Pedido:            request,
		RastreioQR:        srv.trackingQRDataURI(ctx, id),
	})
	srv.publishEvent(ctx, service.EventRequestPurchased, request, actor.UID)

	return request, nil
}

// validateFulfillment checks the shape-specific purchase details, aggregating
// the missing labels like the submit validation does.
func validateFulfillment(tipo entity.Categoria, input *usecase.FulfillmentInput) error {
	var missing []string

	if input.Valor == "" {
		missing = append(missing, "Valor")
	}

	switch tipo {
	case entity.CategoriaProduto:
		if len(input.Cotacoes) == 0 {
			missing = append(missing, "Cotações")
		}
		if input.DataChegada == "" {
			missing = append(missing, "Data de chegada")
		}
	case entity.CategoriaServico:
		if input.DataRealizacao == "" {
			missing = append(missing, "Data de realização")
		}
	}

	if len(missing) > 0 {
		return domainerrors.NewValidationError(missing...)
	}

	return nil
}

// AttachInvoice writes the invoice document, then marks the request. The two
// writes are not transactional; the invoice doc lands first so a reader never
// sees hasInvoice without a document behind it.
func (srv *requestService) AttachInvoice(ctx context.Context, id string, input *usecase.AttachInvoiceInput) error {
	if len(input.Pages) == 0 {
		return domainerrors.ErrInvoiceInvalidFormat
	}

	if _, err := srv.findRequest(ctx, id); err != nil {
		return err
	}

	invoice := &entity.Invoice{
		Pages:        input.Pages,
		MimeType:     input.MimeType,
		OriginalName: input.OriginalName,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := srv.invoiceRepo.Save(ctx, id, invoice); err != nil {
		return errors.Wrap(err, "failed to save invoice document")
	}

	fields := map[string]any{
		"hasInvoice":        true,
		"invoicePagesCount": len(input.Pages),
	}
	if err := srv.requestRepo.Patch(ctx, id, fields); err != nil {
		return errors.Wrap(err, "failed to mark request invoice")
	}

	srv.log(ctx).Info("Invoice attached",
		slog.String("pedido_id", id),
		slog.Int("pages", len(input.Pages)),
	)

	return nil
}

// GetInvoice retrieves the invoice document for a request.
func (srv *requestService) GetInvoice(ctx context.Context, id string) (*entity.Invoice, error) {
	invoice, err := srv.invoiceRepo.FindByRequestID(ctx, id)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, domainerrors.ErrInvoiceNotFound
	}
	if errors.Is(err, repository.ErrInvoiceMalformed) {
		return nil, domainerrors.ErrInvoiceInvalidFormat
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read invoice document")
	}

	return invoice, nil
}

// Get retrieves a single request.
func (srv *requestService) Get(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	return srv.findRequest(ctx, id)
}

// Track resolves a scanned tracking code back to its request.
func (srv *requestService) Track(ctx context.Context, qrData string) (*entity.PurchaseRequest, error) {
	id, err := srv.qrcode.ParseTrackingQR(qrData)
	if err != nil {
		srv.log(ctx).Warn("Rejected tracking code scan", slog.Any("error", err))

		return nil, domainerrors.ErrTrackingCodeInvalid
	}

	return srv.findRequest(ctx, id)
}

// List retrieves the full collection.
func (srv *requestService) List(ctx context.Context) ([]*entity.PurchaseRequest, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListByRequester retrieves every request submitted by the given uid.
func (srv *requestService) ListByRequester(ctx context.Context, uid string) ([]*entity.PurchaseRequest, error) {
	requests, err := srv.requestRepo.ListByRequester(ctx, uid)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests by requester")
	}

	return requests, nil
}

// ListByStatus filters the collection by lifecycle status.
func (srv *requestService) ListByStatus(ctx context.Context, status entity.Status) ([]*entity.PurchaseRequest, error) {
	requests, err := srv.requestRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	filtered := make([]*entity.PurchaseRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}

	return filtered, nil
}

func (srv *requestService) findRequest(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	request, err := srv.requestRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRequestNotFound) {
		return nil, domainerrors.ErrRequestNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find request")
	}

	return request, nil
}

// dispatchSubmissionMails sends the requester acknowledgment plus one mail
// per admin/aprovador, all on a single detached goroutine.
func (srv *requestService) dispatchSubmissionMails(ctx context.Context, request *entity.PurchaseRequest) {
	logger := srv.log(ctx)

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		payload := &entity.NotificationPayload{
			NotificationType:  entity.NotificationPedidoRecebido,
			DestinatarioNome:  request.SolicitanteNome,
			DestinatarioEmail: request.SolicitanteEmail,
			PedidoID:          request.ID,
			Pedido:            request,
		}
		if err := srv.notifier.Notify(notifyCtx, payload); err != nil {
			logger.Warn("Notification dispatch failed",
				slog.String("type", string(payload.NotificationType)),
				slog.Any("error", err),
			)
		}

		approvers, err := srv.userRepo.ListWithRoles(notifyCtx, entity.RoleAdmin, entity.RoleAprovador)
		if err != nil {
			logger.Warn("Approver lookup failed, skipping approval mails",
				slog.Any("error", err),
			)

			return
		}

		for _, approver := range approvers {
			approverPayload := &entity.NotificationPayload{
				NotificationType: entity.NotificationNovaSolicitacao,
				AprovadorNome:    approver.Nome,
				AprovadorEmail:   approver.Email,
				PedidoID:         request.ID,
				Pedido:           request,
			}
			if err := srv.notifier.Notify(notifyCtx, approverPayload); err != nil {
				logger.Warn("Notification dispatch failed",
					slog.String("type", string(approverPayload.NotificationType)),
					slog.String("destinatario", approver.Email),
					slog.Any("error", err),
				)
			}
		}
	}()
}

// dispatchAsync fires a single notification after the transition committed.
// Failures are logged and swallowed; mail is never part of the transition.
func (srv *requestService) dispatchAsync(ctx context.Context, payload *entity.NotificationPayload) {
	logger := srv.log(ctx)

	go func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := srv.notifier.Notify(notifyCtx, payload); err != nil {
			logger.Warn("Notification dispatch failed",
				slog.String("type", string(payload.NotificationType)),
				slog.Any("error", err),
			)
		}
	}()
}

// publishEvent emits a lifecycle event. Publish failures never block the
// caller; the transition already committed.
func (srv *requestService) publishEvent(ctx context.Context, kind string, request *entity.PurchaseRequest, actorUID string) {
	event := &service.LifecycleEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.New().String(),
		Kind:      kind,
		PedidoID:  request.ID,
		Status:    request.Status,
		ActorUID:  actorUID,
		Pedido:    request,
	}

	if err := srv.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Lifecycle event publish failed",
			slog.String("kind", kind),
			slog.String("pedido_id", request.ID),
			slog.Any("error", err),
		)
	}
}

// trackingQRDataURI renders the tracking QR as a PNG data URI, or empty on
// failure so the mail still goes out.
func (srv *requestService) trackingQRDataURI(ctx context.Context, id string) string {
	png, err := srv.qrcode.GenerateTrackingQR(id)
	if err != nil {
		srv.log(ctx).Warn("Tracking QR generation failed",
			slog.String("pedido_id", id),
			slog.Any("error", err),
		)

		return ""
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
