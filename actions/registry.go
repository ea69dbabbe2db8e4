package actions

import "github.com/pthm-cable/longhaul/model"

// ValidateFunc checks an action's pre-conditions against the given
// state. It must be pure and read-only over its arguments.
type ValidateFunc func(action model.Action, state model.WorldState) bool

// HandleFunc computes the updates an action produces. It must also be
// pure; an empty return signals "no effect" (used when an action that
// passed isolated validation turns out to be invalid mid-permutation).
type HandleFunc func(action model.Action, ctx Context) []model.EntityUpdate

// Entry is the {validate, handler} pair the registry stores per kind.
type Entry struct {
	Validate ValidateFunc
	Handle   HandleFunc
}

// Registry is an immutable, build-time-constant mapping from action
// kind to its Entry.
type Registry struct {
	entries map[model.ActionKind]Entry
}

// NewRegistry builds the registry with every canonical handler
// registered. The returned Registry is never mutated after
// construction.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[model.ActionKind]Entry, 9)}
	r.register(model.ActionThrust, Entry{Validate: ValidateThrust, Handle: HandleThrust})
	r.register(model.ActionExtract, Entry{Validate: ValidateExtract, Handle: HandleExtract})
	r.register(model.ActionRefine, Entry{Validate: ValidateRefine, Handle: HandleRefine})
	r.register(model.ActionLoad, Entry{Validate: ValidateLoad, Handle: HandleLoad})
	r.register(model.ActionUnload, Entry{Validate: ValidateUnload, Handle: HandleUnload})
	r.register(model.ActionWeld, Entry{Validate: ValidateWeld, Handle: HandleWeld})
	r.register(model.ActionUnweld, Entry{Validate: ValidateUnweld, Handle: HandleUnweld})
	r.register(model.ActionSealAirlock, Entry{Validate: ValidateSealAirlock, Handle: HandleSealAirlock})
	r.register(model.ActionUnsealAirlock, Entry{Validate: ValidateUnsealAirlock, Handle: HandleUnsealAirlock})
	return r
}

func (r *Registry) register(kind model.ActionKind, e Entry) {
	r.entries[kind] = e
}

// Lookup returns the Entry for kind and whether it was found. An
// unknown kind reaching the registry is tolerated: the caller drops
// the action rather than treating it as fatal.
func (r *Registry) Lookup(kind model.ActionKind) (Entry, bool) {
	e, ok := r.entries[kind]
	return e, ok
}

// Validate looks up and runs the validator for action.Kind, returning
// false for an unknown kind.
func (r *Registry) Validate(action model.Action, state model.WorldState) bool {
	e, ok := r.Lookup(action.Kind)
	if !ok {
		return false
	}
	return e.Validate(action, state)
}

// Handle looks up and runs the handler for action.Kind, returning nil
// for an unknown kind.
func (r *Registry) Handle(action model.Action, ctx Context) []model.EntityUpdate {
	e, ok := r.Lookup(action.Kind)
	if !ok {
		return nil
	}
	return e.Handle(action, ctx)
}

// Targets extracts the target entity-id list for action: the origin
// for EXTRACT, content and container for LOAD/UNLOAD, the weld target
// for WELD/UNWELD. Everything else an action carries is input, not
// target.
func Targets(action model.Action) []string {
	var out []string
	switch action.Kind {
	case model.ActionExtract:
		if action.OriginID != "" {
			out = append(out, action.OriginID)
		}
	case model.ActionLoad, model.ActionUnload:
		if action.ContentID != "" {
			out = append(out, action.ContentID)
		}
		if action.ContainerID != "" {
			out = append(out, action.ContainerID)
		}
	case model.ActionWeld, model.ActionUnweld:
		if action.TargetID != "" {
			out = append(out, action.TargetID)
		}
	}
	return out
}
