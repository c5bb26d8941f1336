package log

// ZapConfig selects level, mode and encoding for the zap backend.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey struct{}

// requestIDKey is the context key middleware uses to carry the request id.
var requestIDKey = ctxKey{}
