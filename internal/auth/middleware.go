package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

const (
	identityKey  = "auth_identity"
	bearerPrefix = "Bearer "
)

// TokenVerifier turns a bearer token into an identity.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// DecisionRecorder observes the final phase of every pipeline run.
type DecisionRecorder interface {
	RecordAuthDecision(phase string)
}

type authenticateStage struct {
	tokens TokenVerifier
}

// Authenticate is the authentication gate. It requires an exact
// "Bearer <token>" header and attaches the verified identity.
func Authenticate(tokens TokenVerifier) Stage {
	return authenticateStage{tokens: tokens}
}

func (authenticateStage) Name() string      { return "authenticate" }
func (authenticateStage) providesIdentity() {}

func (s authenticateStage) Apply(_ context.Context, st State) (State, error) {
	token, ok := bearerToken(st.Authorization)
	if !ok {
		return st, missingCredential()
	}

	identity, err := s.tokens.Verify(token)
	if err != nil {
		return st, invalidCredential(err)
	}

	st.Identity = &identity
	st.Phase = PhaseTokenChecked
	return st, nil
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// Middleware adapts pipelines to Fiber handlers.
type Middleware struct {
	base     *Pipeline
	logger   *zap.Logger
	recorder DecisionRecorder
}

// NewMiddleware builds the adapter around a base pipeline, usually one that
// starts with Authenticate.
func NewMiddleware(base *Pipeline, logger *zap.Logger, recorder DecisionRecorder) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{base: base, logger: logger, recorder: recorder}
}

// Authenticated returns a handler running only the base pipeline.
func (m *Middleware) Authenticated() fiber.Handler {
	return m.Handler(m.base)
}

// withRoles returns a handler that also runs the authorization gate for roles.
func (m *Middleware) withRoles(roles ...domain.Role) fiber.Handler {
	return m.Handler(m.base.With(RequireRole(roles...)))
}

// Admin returns a handler for admin-only routes.
func (m *Middleware) Admin() fiber.Handler {
	return m.Handler(m.base.With(RequireAdmin()))
}

// Handler runs p for each request. On success the identity is stored in the
// request locals; on failure the error goes to the error middleware and the
// remaining handlers never run.
func (m *Middleware) Handler(p *Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := p.Run(c.UserContext(), c.Get(fiber.HeaderAuthorization))
		if err != nil {
			m.record(st.Phase)
			if st.Phase == PhaseFailed {
				m.logger.Error("auth pipeline failed", zap.String("path", c.Path()), zap.Error(err))
			} else {
				m.logger.Warn("request rejected",
					zap.String("path", c.Path()),
					zap.String("state", st.Phase.String()),
					zap.String("remote_addr", c.IP()),
					zap.Error(err))
			}
			return err
		}

		m.record(st.Phase)
		if st.Identity != nil {
			c.Locals(identityKey, *st.Identity)
		}
		return c.Next()
	}
}

func (m *Middleware) record(p Phase) {
	if m.recorder != nil {
		m.recorder.RecordAuthDecision(p.String())
	}
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (domain.Identity, bool) {
	identity, ok := c.Locals(identityKey).(domain.Identity)
	return identity, ok
}
