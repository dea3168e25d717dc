package style

import "fmt"

// MobileBreakpoint is the widest viewport, in CSS pixels, treated as mobile.
const MobileBreakpoint = 640

// Device is the class of viewport a configuration is built for.
type Device int

// Device classes.
const (
	Desktop Device = iota
	Mobile
)

// Devices lists every device class in bundle order.
var Devices = []Device{Desktop, Mobile}

// DeviceForWidth classifies a viewport width in CSS pixels against
// breakpoint, the widest mobile viewport. A non-positive breakpoint means
// MobileBreakpoint. The bundled mount script applies the same rule.
func DeviceForWidth(px, breakpoint int) Device {
	if breakpoint <= 0 {
		breakpoint = MobileBreakpoint
	}
	if px <= breakpoint {
		return Mobile
	}
	return Desktop
}

// String returns the bundle key for d ("desktop" or "mobile").
func (d Device) String() string {
	switch d {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return fmt.Sprintf("device(%d)", int(d))
	}
}

// ParseDevice is the inverse of Device.String.
func ParseDevice(s string) (Device, error) {
	switch s {
	case "desktop":
		return Desktop, nil
	case "mobile":
		return Mobile, nil
	}
	return Desktop, fmt.Errorf("unknown device %q (must be 'desktop' or 'mobile')", s)
}

// pick returns desktop or mobile depending on d.
func pick[T any](d Device, desktop, mobile T) T {
	if d == Mobile {
		return mobile
	}
	return desktop
}
