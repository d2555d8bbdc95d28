package llm

import "context"

// ChatRequest is a single system+user exchange with a hosted model.
type ChatRequest struct {
	System      string
	User        string
	Temperature float32
}

// Completer is the model invoker both pipelines depend on. It returns the
// model's raw text; callers recover JSON from it themselves.
type Completer interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// CompleterFunc adapts a function to Completer.
type CompleterFunc func(ctx context.Context, req ChatRequest) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, req ChatRequest) (string, error) {
	return f(ctx, req)
}
