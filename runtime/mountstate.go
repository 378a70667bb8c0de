package runtime

// MountState distinguishes the first render of a component instance from the
// ones that follow. The zero value is a freshly mounted instance. It belongs to
// exactly one instance and is discarded with it.
type MountState struct {
	rendered bool
}

// First reports whether this is the first call for the owning instance.
// It returns true once and false on every later call.
func (m *MountState) First() bool {
	if m.rendered {
		return false
	}
	m.rendered = true
	return true
}

// Mounted reports whether First has already been consumed.
func (m *MountState) Mounted() bool {
	return m.rendered
}
