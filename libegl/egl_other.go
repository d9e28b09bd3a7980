// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows && !((linux || freebsd || openbsd) && cgo)

package libegl

import (
	"errors"
	"runtime"

	"gioui.org/eglmgr/egl"
)

func loadEGL() error {
	return errors.New("libegl: EGL is not supported on " + runtime.GOOS + " without cgo")
}

func eglGetError() egl.Int                                 { return egl.Success }
func eglQueryString(disp egl.Display, name egl.Int) string { return "" }
func eglGetDisplay(native egl.NativeDisplay) egl.Display   { return egl.NoDisplay }

func eglGetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Attrib) egl.Display {
	return egl.NoDisplay
}

func eglGetPlatformDisplayEXT(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	return egl.NoDisplay
}

func eglInitialize(disp egl.Display) (egl.Int, egl.Int, bool) { return 0, 0, false }
func eglTerminate(disp egl.Display) bool                      { return false }
func eglBindAPI(api egl.Enum) bool                            { return false }

func eglChooseConfig(disp egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	return egl.NoConfig, 0, false
}

func eglGetConfigAttrib(disp egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	return 0, false
}

func eglCreateContext(disp egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	return egl.NoContext
}

func eglCreateWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	return egl.NoSurface
}

func eglCreatePlatformWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Attrib) egl.Surface {
	return egl.NoSurface
}

func eglDestroySurface(disp egl.Display, surf egl.Surface) bool { return false }

func eglQuerySurface(disp egl.Display, surf egl.Surface, attr egl.Int) (egl.Int, bool) {
	return 0, false
}

func eglMakeCurrent(disp egl.Display, draw, read egl.Surface, ctx egl.Context) bool { return false }
func eglSwapBuffers(disp egl.Display, surf egl.Surface) bool                        { return false }
func eglSwapInterval(disp egl.Display, interval egl.Int) bool                       { return false }
func eglSetBlobCacheFuncs(disp egl.Display) bool                                    { return false }
