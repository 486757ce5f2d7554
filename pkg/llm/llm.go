package llm

import "context"

// MIMETypeJSON asks the provider for a JSON-formatted text response.
const MIMETypeJSON = "application/json"

// Part is one piece of a multimodal prompt: either inline data or text.
type Part struct {
	MIMEType string // set for inline data
	Data     []byte // raw bytes of the inline document
	Filename string // optional hint for providers that want a file name
	Text     string
}

// IsInline reports whether the part carries a binary document.
func (p Part) IsInline() bool { return len(p.Data) > 0 }

// Request describes a single structured-output generation.
type Request struct {
	Parts            []Part
	Schema           *Schema
	ResponseMIMEType string
}

// DocumentModel is a minimal abstraction over generative models that accept
// inline documents and return text constrained by a schema.
// It hides concrete providers to preserve dependency direction.
type DocumentModel interface {
	Generate(ctx context.Context, req Request) (string, error)
	// Name returns the provider model id, used in logs and responses.
	Name() string
}

// Pinger is implemented by models that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
