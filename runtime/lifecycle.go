package runtime

// Initializer is implemented by components that need setup before their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to every render pass.
type ParameterReceiver interface {
	OnParametersSet()
}

// Cleaner is implemented by components that release resources when unmounted.
type Cleaner interface {
	OnDestroy()
}

// PropUpdater copies props from a freshly built component onto a retained instance.
type PropUpdater interface {
	ApplyProps(source Component)
}
