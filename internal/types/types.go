// internal/types/types.go
package types

// EntityID — сквозной идентификатор сущности (враг, башня, снаряд).
type EntityID uint64
