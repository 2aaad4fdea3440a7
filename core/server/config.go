package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key the operator presents on mutating requests.
	ApiKey string `mapstructure:"api_key" default:""`
	// Operator is the identity new item identifiers are minted to.
	Operator string `mapstructure:"operator" default:"operator"`
}

// HasOperator reports whether an operator identity is configured.
func (c Config) HasOperator() bool {
	return c.Operator != ""
}
