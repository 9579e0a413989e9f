package ports

// Port: a boundary for persisting rendered images.
type ImageStore interface {
	// Write data to path, replacing any existing content.
	WriteImage(path string, data []byte) error
}
