// SPDX-License-Identifier: Unlicense OR MIT

// Package egl manages EGL displays, contexts and window surfaces for a
// host that renders into several native windows from one thread.
//
// The EGL library itself is reached through a Driver; package libegl
// provides the system one.
package egl

type (
	Int    int32
	Enum   uint32
	Attrib int

	Display       uintptr
	Config        uintptr
	Context       uintptr
	Surface       uintptr
	NativeDisplay uintptr
	NativeWindow  uintptr
)

// WindowID identifies a window of the host window system. IDs are small
// non-negative integers; the manager indexes its window table by them.
type WindowID int

// InvalidWindow is the "no window" sentinel.
const InvalidWindow WindowID = -1

// maxWindowID bounds the window table.
const maxWindowID WindowID = 1 << 16

const (
	NoDisplay Display = 0
	NoConfig  Config  = 0
	NoContext Context = 0
	NoSurface Surface = 0
)

const (
	_EGL_SUCCESS = 0x3000

	_EGL_ALPHA_SIZE             = 0x3021
	_EGL_BLUE_SIZE              = 0x3022
	_EGL_GREEN_SIZE             = 0x3023
	_EGL_RED_SIZE               = 0x3024
	_EGL_DEPTH_SIZE             = 0x3025
	_EGL_NATIVE_VISUAL_ID       = 0x302e
	_EGL_NONE                   = 0x3038
	_EGL_VENDOR                 = 0x3053
	_EGL_VERSION                = 0x3054
	_EGL_EXTENSIONS             = 0x3055
	_EGL_CONTEXT_CLIENT_VERSION = 0x3098
	_EGL_OPENGL_ES_API          = 0x30a0
	_EGL_OPENGL_API             = 0x30a2

	_EGL_CONTEXT_MAJOR_VERSION              = 0x3098
	_EGL_CONTEXT_MINOR_VERSION              = 0x30fb
	_EGL_CONTEXT_OPENGL_PROFILE_MASK        = 0x30fd
	_EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT    = 0x1
	_EGL_PLATFORM_ANDROID_KHR               = 0x3141
	_EGL_PLATFORM_X11_KHR                   = 0x31d5
	_EGL_PLATFORM_WAYLAND_KHR               = 0x31d8
	_EGL_PLATFORM_ANGLE_ANGLE               = 0x3202
	_EGL_PLATFORM_ANGLE_TYPE_ANGLE          = 0x3203
	_EGL_PLATFORM_ANGLE_TYPE_D3D11_ANGLE    = 0x3208
	_EGL_OPTIMAL_SURFACE_ORIENTATION_ANGLE  = 0x33a7
	_EGL_SURFACE_ORIENTATION_ANGLE          = 0x33a8
	_EGL_SURFACE_ORIENTATION_INVERT_X_ANGLE = 0x0001
	_EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE = 0x0002
)

// Values shared with driver implementations.
const (
	Success          Int = _EGL_SUCCESS
	None             Int = _EGL_NONE
	VendorString     Int = _EGL_VENDOR
	VersionString    Int = _EGL_VERSION
	ExtensionsString Int = _EGL_EXTENSIONS
)
