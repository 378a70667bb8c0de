//go:build !dev

package runtime

import (
	"fmt"

	"github.com/vcrobe/supasite/console"
)

// callOnInit invokes the OnInit lifecycle method in production mode.
// In production mode, panics are recovered and logged to prevent application crashes.
func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	defer recoverHook("OnInit", key)
	initializer.OnInit()
}

// callOnParametersSet invokes the OnParametersSet lifecycle method in production mode.
func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	defer recoverHook("OnParametersSet", key)
	receiver.OnParametersSet()
}

// callOnDestroy invokes the OnDestroy lifecycle method in production mode.
func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	defer recoverHook("OnDestroy", key)
	cleaner.OnDestroy()
}

func recoverHook(hook, key string) {
	if rec := recover(); rec != nil {
		console.Error(fmt.Sprintf("%s panic in component %s: %v", hook, key, rec))
	}
}
