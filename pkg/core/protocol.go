package core

// Protocol defines the request-building half of an exchange binding.
type Protocol interface {
	// Name returns the exchange identifier.
	Name() string

	// Version returns the API version segment placed before every endpoint path.
	Version() string

	// BuildRequest constructs the HTTP request for op from its parameters.
	BuildRequest(op Operation, params Params) (*Request, error)

	// SupportedOperations returns the operations BuildRequest accepts.
	SupportedOperations() []Operation
}
