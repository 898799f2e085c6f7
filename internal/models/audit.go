package models

// AuditRecord is an immutable, server-owned log entry describing a past
// change to an entity. The portal only reads these.
type AuditRecord struct {
	EntityID   int64          `json:"entityId"`
	Entity     string         `json:"entity"`
	Operation  AuditOperation `json:"operation"`
	Revision   int64          `json:"revision"`
	Timestamp  string         `json:"timestamp"`
	ModifiedBy string         `json:"modifiedBy"`
}
