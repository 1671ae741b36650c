// internal/types/types.go
package types

// EntityID — стабильный идентификатор сущности в арене.
// Ноль зарезервирован под «нет сущности».
type EntityID uint64
