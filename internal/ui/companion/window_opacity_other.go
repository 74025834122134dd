//go:build !windows

package companion

// applyNativeOpacity is a no-op outside Windows; the background
// rectangle alpha is the only translucency there.
func (companion *Window) applyNativeOpacity(alpha uint8) {}
