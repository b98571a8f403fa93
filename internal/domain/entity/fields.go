package entity

// Timestamp fields stamped by the store on every catalog document.
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)
