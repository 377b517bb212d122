package glue

// StringNameOption configures a StringName during creation.
//
// Example:
//
//	// Use the registered runtime
//	name, err := glue.NewStringNameFrom("player")
//
//	// Use a specific runtime (dependency injection)
//	name, err := glue.NewStringNameFrom("player", glue.WithRuntime(rt))
type StringNameOption func(*stringNameOptions)

// stringNameOptions holds optional configuration for StringName creation.
type stringNameOptions struct {
	runtime Runtime
}

// WithRuntime makes the StringName use r instead of the registered runtime.
// A nil r is ignored.
func WithRuntime(r Runtime) StringNameOption {
	return func(o *stringNameOptions) {
		if r != nil {
			o.runtime = r
		}
	}
}

// resolveRuntime applies opts and falls back to the registered runtime.
func resolveRuntime(opts []StringNameOption) (Runtime, error) {
	var o stringNameOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.runtime == nil {
		o.runtime = CurrentRuntime()
	}
	if o.runtime == nil {
		return nil, ErrNoRuntime
	}
	return o.runtime, nil
}
