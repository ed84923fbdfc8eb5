package auth

import (
	"context"
	"errors"

	"github.com/mentorverse/mentorverse-api/internal/domain"
)

// Phase records how far a request got through the auth pipeline.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseTokenChecked
	PhaseRoleChecked
	PhaseRejectedNoToken
	PhaseRejectedBadToken
	PhaseRejectedWrongRole
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseTokenChecked:
		return "TOKEN_CHECKED"
	case PhaseRoleChecked:
		return "ROLE_CHECKED"
	case PhaseRejectedNoToken:
		return "REJECTED_NO_TOKEN"
	case PhaseRejectedBadToken:
		return "REJECTED_BAD_TOKEN"
	case PhaseRejectedWrongRole:
		return "REJECTED_WRONG_ROLE"
	case PhaseFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Terminal reports whether p ends the request without reaching the handler.
func (p Phase) Terminal() bool {
	return p >= PhaseRejectedNoToken
}

// State is the per-request value threaded through the stages. A fresh State
// is built for every run and never outlives it.
type State struct {
	Authorization string
	Identity      *domain.Identity
	Phase         Phase
}

// Stage is one step of the pipeline. It either returns the state to continue
// with or an error that short-circuits the run.
type Stage interface {
	Name() string
	Apply(ctx context.Context, st State) (State, error)
}

// identityProvider is implemented by stages that populate State.Identity.
type identityProvider interface {
	providesIdentity()
}

// identityConsumer is implemented by stages that read State.Identity.
type identityConsumer interface {
	requiresIdentity()
}

// Pipeline runs an ordered list of stages.
type Pipeline struct {
	stages []Stage
}

// NewPipeline builds a pipeline. It panics when a stage that reads the
// identity is placed before any stage that provides one.
func NewPipeline(stages ...Stage) *Pipeline {
	provided := false
	for _, s := range stages {
		if _, ok := s.(identityConsumer); ok && !provided {
			panic("auth: stage " + s.Name() + " needs an identity but runs before authentication")
		}
		if _, ok := s.(identityProvider); ok {
			provided = true
		}
	}
	return &Pipeline{stages: append([]Stage(nil), stages...)}
}

// With returns a new pipeline with extra stages appended.
func (p *Pipeline) With(stages ...Stage) *Pipeline {
	all := make([]Stage, 0, len(p.stages)+len(stages))
	all = append(all, p.stages...)
	all = append(all, stages...)
	return NewPipeline(all...)
}

// Stages lists stage names in execution order.
func (p *Pipeline) Stages() []string {
	names := make([]string, len(p.stages))
	for i, s := range p.stages {
		names[i] = s.Name()
	}
	return names
}

// Run evaluates every stage in order for the given Authorization header value.
// On failure the returned state carries the terminal phase.
func (p *Pipeline) Run(ctx context.Context, authorization string) (State, error) {
	st := State{Authorization: authorization, Phase: PhaseStart}
	for _, stage := range p.stages {
		if err := ctx.Err(); err != nil {
			return State{Authorization: authorization, Phase: PhaseFailed}, err
		}
		next, err := stage.Apply(ctx, st)
		if err != nil {
			return State{Authorization: authorization, Phase: PhaseOf(err)}, err
		}
		st = next
	}
	return st, nil
}

// PhaseOf maps a stage error onto its terminal phase.
func PhaseOf(err error) Phase {
	switch {
	case err == nil:
		return PhaseStart
	case errors.Is(err, ErrMissingCredential):
		return PhaseRejectedNoToken
	case errors.Is(err, ErrInvalidCredential):
		return PhaseRejectedBadToken
	case errors.Is(err, ErrForbidden):
		return PhaseRejectedWrongRole
	default:
		return PhaseFailed
	}
}
