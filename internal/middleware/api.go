package middleware

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/five82/cuer/internal/action"
	"github.com/five82/cuer/internal/cuer"
	"github.com/five82/cuer/internal/state"
)

// Ensure API implements state.Middleware at compile time.
var _ state.Middleware = (*API)(nil)

// API turns intents into HTTP calls and dispatches their outcome.
type API struct {
	client cuer.Doer
	logger *log.Logger
}

// NewAPI builds the middleware. A nil logger discards output.
func NewAPI(client cuer.Doer, logger *log.Logger) *API {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &API{client: client, logger: logger}
}

// Handle passes non-intent actions to next unchanged. An intent is performed
// on its own goroutine; its outcome goes to next and then to the channel.
func (m *API) Handle(ctx context.Context, a action.Action, next func(action.Action)) <-chan action.Action {
	out := make(chan action.Action, 1)
	intent, ok := a.(action.Intent)
	if !ok {
		next(a)
		out <- a
		close(out)
		return out
	}

	m.logger.Debug("dispatch intent", "id", intent.ID, "origin", intent.Origin,
		"method", intent.Target.Method, "url", intent.Target.URL)
	go func() {
		defer close(out)
		outcome := m.Perform(ctx, intent)
		next(outcome)
		out <- outcome
	}()
	return out
}

// Perform issues the intent's request once and returns the terminal action:
// the typed success action or a Failure. It never returns nil.
func (m *API) Perform(ctx context.Context, in action.Intent) action.Action {
	req := cuer.Request{
		Method:  in.Target.Method,
		Path:    in.Target.URL,
		Body:    in.Target.Body,
		Headers: make(map[string]string, len(in.Target.Headers)+1),
	}
	for k, v := range in.Target.Headers {
		req.Headers[k] = v
	}

	switch in.Target.Method {
	case http.MethodGet:
	case http.MethodPut, http.MethodDelete:
		req.Headers["Content-Type"] = "application/json"
	default:
		return m.fail(in, fmt.Errorf("%w: %q", cuer.ErrUnsupportedMethod, in.Target.Method))
	}

	if m.client == nil {
		return m.fail(in, fmt.Errorf("%w: no api client configured", cuer.ErrTransport))
	}
	resp, err := m.client.Do(ctx, req)
	if err != nil {
		return m.fail(in, err)
	}

	success, err := action.Decode(in, resp.Body)
	if err != nil {
		return m.fail(in, fmt.Errorf("%s %s: %w", in.Target.Method, in.Target.URL, err))
	}
	m.logger.Debug("intent succeeded", "id", in.ID, "origin", in.Origin, "kind", success.Kind())
	return success
}

func (m *API) fail(in action.Intent, err error) action.Failure {
	m.logger.Warn("intent failed", "id", in.ID, "origin", in.Origin, "err", err)
	return action.Failure{
		IntentID: in.ID,
		Origin:   in.Origin,
		Expected: in.Target.Success,
		Err:      err,
	}
}
