package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	ModelScore() ModelScoreRepository

	// Close releases backend resources. Safe to call on in-memory
	// implementations.
	Close() error
}
