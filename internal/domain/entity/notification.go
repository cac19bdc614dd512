package entity

// NotificationType discriminates the email template rendered downstream
// by the relay.
type NotificationType string

const (
	NotificationPedidoRecebido   NotificationType = "pedido_recebido"
	NotificationPedidoAprovado   NotificationType = "pedido_aprovado"
	NotificationPedidoReprovado  NotificationType = "pedido_reprovado"
	NotificationPedidoACaminho   NotificationType = "pedido_a_caminho"
	NotificationNovaSolicitacao  NotificationType = "nova_solicitacao_aprovacao"
	NotificationVerificacaoConta NotificationType = "verificacao_conta"
	NotificationRedefinicaoSenha NotificationType = "redefinicao_senha"
)

// NotificationPayload is the opaque structured payload posted to the relay.
// It always carries NotificationType plus the full request snapshot for
// lifecycle mails; approver mails additionally carry the approver addressing
// fields.
type NotificationPayload struct {
	NotificationType NotificationType `json:"notificationType"`

	DestinatarioNome  string `json:"destinatarioNome,omitempty"`
	DestinatarioEmail string `json:"destinatarioEmail,omitempty"`

	PedidoID string           `json:"pedidoId,omitempty"`
	Pedido   *PurchaseRequest `json:"pedido,omitempty"`

	Justificativa string `json:"justificativa,omitempty"`

	// Addressing for nova_solicitacao_aprovacao mails.
	AprovadorNome  string `json:"aprovadorNome,omitempty"`
	AprovadorEmail string `json:"aprovadorEmail,omitempty"`

	// One-time code for identity mails.
	Codigo string `json:"codigo,omitempty"`

	// RastreioQR is a PNG data URI with the request tracking QR, attached
	// to pedido_a_caminho mails.
	RastreioQR string `json:"rastreioQr,omitempty"`
}
