// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"runtime"

	"golang.org/x/exp/slices"
)

// Platform describes how to obtain displays and contexts on one native
// window system.
type Platform struct {
	Name string
	// Extension is the client extension the platform requires.
	Extension string
	// Enum is passed to eglGetPlatformDisplay.
	Enum Enum
	// DisplayAttribs and ContextAttribs are attribute pairs without the
	// terminating EGL_NONE.
	DisplayAttribs []Attrib
	API            Enum
	ContextAttribs []Int
	// SurfaceOrientation enables EGL_ANGLE_surface_orientation probing.
	SurfaceOrientation bool
}

var (
	PlatformX11 = Platform{
		Name:           "x11",
		Extension:      "EGL_KHR_platform_x11",
		Enum:           _EGL_PLATFORM_X11_KHR,
		API:            _EGL_OPENGL_ES_API,
		ContextAttribs: []Int{_EGL_CONTEXT_CLIENT_VERSION, 3},
	}
	PlatformWayland = Platform{
		Name:      "wayland",
		Extension: "EGL_KHR_platform_wayland",
		Enum:      _EGL_PLATFORM_WAYLAND_KHR,
		API:       _EGL_OPENGL_API,
		ContextAttribs: []Int{
			_EGL_CONTEXT_MAJOR_VERSION, 3,
			_EGL_CONTEXT_MINOR_VERSION, 3,
			_EGL_CONTEXT_OPENGL_PROFILE_MASK, _EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT,
		},
	}
	PlatformWaylandGLES = Platform{
		Name:           "wayland-gles",
		Extension:      "EGL_KHR_platform_wayland",
		Enum:           _EGL_PLATFORM_WAYLAND_KHR,
		API:            _EGL_OPENGL_ES_API,
		ContextAttribs: []Int{_EGL_CONTEXT_CLIENT_VERSION, 3},
	}
	PlatformAndroid = Platform{
		Name:           "android",
		Extension:      "EGL_KHR_platform_android",
		Enum:           _EGL_PLATFORM_ANDROID_KHR,
		API:            _EGL_OPENGL_ES_API,
		ContextAttribs: []Int{_EGL_CONTEXT_CLIENT_VERSION, 3},
	}
	// PlatformANGLE renders through ANGLE's Direct3D 11 backend.
	PlatformANGLE = Platform{
		Name:      "angle",
		Extension: "EGL_ANGLE_platform_angle",
		Enum:      _EGL_PLATFORM_ANGLE_ANGLE,
		DisplayAttribs: []Attrib{
			_EGL_PLATFORM_ANGLE_TYPE_ANGLE, _EGL_PLATFORM_ANGLE_TYPE_D3D11_ANGLE,
		},
		API:                _EGL_OPENGL_ES_API,
		ContextAttribs:     []Int{_EGL_CONTEXT_CLIENT_VERSION, 3},
		SurfaceOrientation: true,
	}
)

var platforms = map[string]Platform{
	PlatformX11.Name:         PlatformX11,
	PlatformWayland.Name:     PlatformWayland,
	PlatformWaylandGLES.Name: PlatformWaylandGLES,
	PlatformAndroid.Name:     PlatformAndroid,
	PlatformANGLE.Name:       PlatformANGLE,
}

// LookupPlatform returns the built-in platform with the given name.
func LookupPlatform(name string) (Platform, bool) {
	p, ok := platforms[name]
	return p, ok
}

// PlatformNames lists the built-in platforms.
func PlatformNames() []string {
	names := make([]string, 0, len(platforms))
	for n := range platforms {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func (p Platform) displayAttribs() []Attrib {
	if len(p.DisplayAttribs) == 0 {
		return nil
	}
	return append(append([]Attrib(nil), p.DisplayAttribs...), _EGL_NONE)
}

// displayAttribsEXT narrows the display attributes to EGLint, the type
// eglGetPlatformDisplayEXT expects.
func (p Platform) displayAttribsEXT() []Int {
	attribs := p.displayAttribs()
	if attribs == nil {
		return nil
	}
	narrow := make([]Int, len(attribs))
	for i, a := range attribs {
		narrow[i] = Int(a)
	}
	return narrow
}

func (p Platform) contextAttribs() []Int {
	if len(p.ContextAttribs) == 0 {
		return nil
	}
	return append(append([]Int(nil), p.ContextAttribs...), _EGL_NONE)
}

var defaultPlatform = func() string {
	switch runtime.GOOS {
	case "windows":
		return PlatformANGLE.Name
	case "android":
		return PlatformAndroid.Name
	default:
		return PlatformX11.Name
	}
}()
