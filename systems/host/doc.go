// Package host holds the systems that need a window: keyboard and gamepad
// polling, the pause toggle, and every renderer. The gameplay systems in
// package systems build without a display.
package host
