package config

// Validator is implemented by configurations that can check themselves
// after loading, filling in defaults as they go.
type Validator interface {
	Validate() error
}
