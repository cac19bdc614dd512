package entity

import "time"

// Invoice is the attached fiscal document kept in the attribute store,
// keyed by the purchase request id. All pages share one MIME type.
//
// The request's HasInvoice/InvoicePagesCount flags are maintained by a
// second write against the document tree; the two writes are not atomic.
type Invoice struct {
	Pages        []string  `json:"pages" firestore:"pages"`
	MimeType     string    `json:"mimeType" firestore:"mimeType"`
	OriginalName string    `json:"originalName,omitempty" firestore:"originalName,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}
