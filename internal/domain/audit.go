package domain

import "time"

const (
	AuditActionCreateSlot = "CREATE_SLOT"
	AuditActionDeleteSlot = "DELETE_SLOT"
	AuditActionBook       = "BOOK"
	AuditActionCancel     = "CANCEL"
)

type AuditRecord struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	UserID    string         `json:"user_id"`
	Meta      map[string]any `json:"meta"`
	CreatedAt time.Time      `json:"created_at"`
}
