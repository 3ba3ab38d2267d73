package events

// Handler processes specific effect types within a context T
// Observers of the game (metrics, journal) implement this interface
type Handler[T any] interface {
	// HandleEffect processes a single effect
	// Called synchronously from the main loop
	HandleEffect(ctx T, effect Effect)

	// EffectTypes returns the effect types this handler processes
	// The router uses this for registration
	EffectTypes() []EffectType
}

// Router dispatches effects to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same effect type
//   - Handlers are invoked in registration order
//   - Context T is passed to handlers
type Router[T any] struct {
	handlers map[EffectType][]Handler[T]
}

// NewRouter creates an empty router
func NewRouter[T any]() *Router[T] {
	return &Router[T]{
		handlers: make(map[EffectType][]Handler[T]),
	}
}

// Register adds a handler for its declared effect types
func (r *Router[T]) Register(handler Handler[T]) {
	for _, t := range handler.EffectTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll routes effects to handlers in the order given
func (r *Router[T]) DispatchAll(ctx T, effects []Effect) {
	for _, eff := range effects {
		for _, h := range r.handlers[eff.Type] {
			h.HandleEffect(ctx, eff)
		}
	}
}
