package runtime

import (
	"fmt"

	"github.com/vcrobe/supasite/vdom"
)

// Compile-time assertion to ensure the concrete RendererImpl implements the Renderer interface.
var _ Renderer = (*RendererImpl)(nil)

const rootKey = "__root__"

// RendererImpl is the concrete implementation of the Renderer interface.
// It manages the component instance tree and handles rendering lifecycle.
// The DOM is reached only through the mount callback, so the type builds
// and tests natively; in the browser the callback is vdom.Mount.
type RendererImpl struct {
	instances        map[string]Component
	activeKeys       map[string]bool // Track which components are active in the current render
	currentComponent Component       // The currently active root component
	currentKey       string
	rootInitialized  bool
	navManager       NavigationManager // Optional: router for client-side navigation
	mount            func(*vdom.VNode)
	lastVDOM         *vdom.VNode
}

// NewRenderer creates a new runtime renderer.
// If navManager is nil, the renderer works without routing.
// mount receives every rendered root tree; nil discards it.
func NewRenderer(navManager NavigationManager, mount func(*vdom.VNode)) *RendererImpl {
	return &RendererImpl{
		instances:  make(map[string]Component),
		activeKeys: make(map[string]bool),
		navManager: navManager,
		mount:      mount,
	}
}

// SetNavigationManager attaches the router after construction.
func (r *RendererImpl) SetNavigationManager(nav NavigationManager) {
	r.navManager = nav
}

// SetCurrentComponent sets the root component to be rendered.
// A different key resets the root lifecycle so OnInit runs again.
func (r *RendererImpl) SetCurrentComponent(comp Component, key string) {
	if key != r.currentKey {
		r.rootInitialized = false
	}
	r.currentComponent = comp
	r.currentKey = key
}

// RenderRoot starts the rendering process for the entire application.
func (r *RendererImpl) RenderRoot() {
	if r.currentComponent == nil {
		return
	}

	// Reset activeKeys for this render cycle
	r.activeKeys = make(map[string]bool)

	r.currentComponent.SetRenderer(r)

	if !r.rootInitialized {
		// Call OnInit only once, before first render
		if initializer, ok := r.currentComponent.(Initializer); ok {
			r.callOnInit(initializer, rootKey)
		}
		r.rootInitialized = true
	}

	// Call OnParametersSet before every render (including first)
	if paramReceiver, ok := r.currentComponent.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, rootKey)
	}

	newVDOM := r.currentComponent.Render(r)
	if r.mount != nil {
		r.mount(newVDOM)
	}
	r.lastVDOM = newVDOM

	// Clean up components that were not rendered in this cycle
	r.cleanupUnmountedComponents()
}

// RenderChild renders a child component.
// It handles the core logic of instance creation and reuse.
func (r *RendererImpl) RenderChild(key string, childWithProps Component) *vdom.VNode {
	// Mark this component as active in the current render cycle
	r.activeKeys[key] = true

	instance, exists := r.instances[key]
	isFirstRender := false

	if !exists {
		// First time seeing this component at this location, so store the new instance.
		instance = childWithProps
		r.instances[key] = instance
		isFirstRender = true
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state, applying new props to it.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	// Ensure the instance knows about the renderer so it can call StateHasChanged.
	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			r.callOnInit(initializer, key)
		}
	}

	if paramReceiver, ok := instance.(ParameterReceiver); ok {
		r.callOnParametersSet(paramReceiver, key)
	}

	return instance.Render(r)
}

// cleanupUnmountedComponents removes components that are no longer in the tree
// and calls their OnDestroy lifecycle method if they implement the Cleaner interface.
func (r *RendererImpl) cleanupUnmountedComponents() {
	for key, instance := range r.instances {
		if !r.activeKeys[key] {
			if cleaner, ok := instance.(Cleaner); ok {
				r.callOnDestroy(cleaner, key)
			}
			delete(r.instances, key)
		}
	}
}

// ReRender re-runs the render cycle from the root.
func (r *RendererImpl) ReRender() {
	r.RenderRoot()
}

// LastVDOM returns the tree produced by the most recent root render.
func (r *RendererImpl) LastVDOM() *vdom.VNode {
	return r.lastVDOM
}

// LiveInstances returns the number of child instances retained by the renderer.
func (r *RendererImpl) LiveInstances() int {
	return len(r.instances)
}

// Navigate delegates to the NavigationManager (router) to perform client-side navigation.
// Returns an error if no router is configured.
func (r *RendererImpl) Navigate(path string) error {
	if r.navManager == nil {
		return fmt.Errorf("no router configured for navigation")
	}
	return r.navManager.Navigate(path)
}
