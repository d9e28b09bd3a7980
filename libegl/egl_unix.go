// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux || freebsd || openbsd) && cgo

package libegl

/*
#cgo linux,!android pkg-config: egl
#cgo android LDFLAGS: -lEGL
#cgo freebsd openbsd LDFLAGS: -lEGL
#cgo freebsd CFLAGS: -I/usr/local/include
#cgo freebsd LDFLAGS: -L/usr/local/lib
#cgo openbsd CFLAGS: -I/usr/X11R6/include
#cgo openbsd LDFLAGS: -L/usr/X11R6/lib
#cgo CFLAGS: -DEGL_NO_X11 -DMESA_EGL_NO_X11_HEADERS

#include <stdint.h>
#include <EGL/egl.h>
#include <EGL/eglext.h>

extern void gio_eglmgr_setBlob(void *key, EGLsizeiANDROID keySize, void *value, EGLsizeiANDROID valueSize);
extern EGLsizeiANDROID gio_eglmgr_getBlob(void *key, EGLsizeiANDROID keySize, void *value, EGLsizeiANDROID valueSize);

static void setBlobTrampoline(const void *key, EGLsizeiANDROID keySize, const void *value, EGLsizeiANDROID valueSize) {
	gio_eglmgr_setBlob((void *)key, keySize, (void *)value, valueSize);
}

static EGLsizeiANDROID getBlobTrampoline(const void *key, EGLsizeiANDROID keySize, void *value, EGLsizeiANDROID valueSize) {
	return gio_eglmgr_getBlob((void *)key, keySize, value, valueSize);
}

static EGLBoolean setBlobCacheFuncs(EGLDisplay disp) {
	PFNEGLSETBLOBCACHEFUNCSANDROIDPROC f = (PFNEGLSETBLOBCACHEFUNCSANDROIDPROC)eglGetProcAddress("eglSetBlobCacheFuncsANDROID");
	if (f == NULL) {
		return EGL_FALSE;
	}
	f(disp, setBlobTrampoline, getBlobTrampoline);
	return EGL_TRUE;
}

static EGLDisplay getPlatformDisplay(EGLenum platform, uintptr_t native, const EGLAttrib *attribs) {
	PFNEGLGETPLATFORMDISPLAYPROC f = (PFNEGLGETPLATFORMDISPLAYPROC)eglGetProcAddress("eglGetPlatformDisplay");
	if (f == NULL) {
		return EGL_NO_DISPLAY;
	}
	return f(platform, (void *)native, attribs);
}

static EGLDisplay getPlatformDisplayEXT(EGLenum platform, uintptr_t native, const EGLint *attribs) {
	PFNEGLGETPLATFORMDISPLAYEXTPROC f = (PFNEGLGETPLATFORMDISPLAYEXTPROC)eglGetProcAddress("eglGetPlatformDisplayEXT");
	if (f == NULL) {
		return EGL_NO_DISPLAY;
	}
	return f(platform, (void *)native, attribs);
}

static EGLSurface createPlatformWindowSurface(EGLDisplay disp, EGLConfig cfg, uintptr_t win, const EGLAttrib *attribs) {
	PFNEGLCREATEPLATFORMWINDOWSURFACEPROC f = (PFNEGLCREATEPLATFORMWINDOWSURFACEPROC)eglGetProcAddress("eglCreatePlatformWindowSurface");
	if (f == NULL) {
		return EGL_NO_SURFACE;
	}
	return f(disp, cfg, (void *)win, attribs);
}

static EGLDisplay getDisplay(uintptr_t native) {
	return eglGetDisplay((EGLNativeDisplayType)native);
}

static EGLSurface createWindowSurface(EGLDisplay disp, EGLConfig cfg, uintptr_t win, const EGLint *attribs) {
	return eglCreateWindowSurface(disp, cfg, (EGLNativeWindowType)win, attribs);
}
*/
import "C"

import (
	"unsafe"

	"gioui.org/eglmgr/egl"
)

// The library is linked at build time.
func loadEGL() error {
	return nil
}

func dispPtr(d egl.Display) C.EGLDisplay {
	return C.EGLDisplay(unsafe.Pointer(uintptr(d)))
}

func cfgPtr(c egl.Config) C.EGLConfig {
	return C.EGLConfig(unsafe.Pointer(uintptr(c)))
}

func ctxPtr(c egl.Context) C.EGLContext {
	return C.EGLContext(unsafe.Pointer(uintptr(c)))
}

func surfPtr(s egl.Surface) C.EGLSurface {
	return C.EGLSurface(unsafe.Pointer(uintptr(s)))
}

func intAttribs(attribs []egl.Int) *C.EGLint {
	return (*C.EGLint)(unsafe.Pointer(attribPtr(attribs)))
}

func ptrAttribs(attribs []egl.Attrib) *C.EGLAttrib {
	return (*C.EGLAttrib)(unsafe.Pointer(attribPtr(attribs)))
}

func eglGetError() egl.Int {
	return egl.Int(C.eglGetError())
}

func eglQueryString(disp egl.Display, name egl.Int) string {
	s := C.eglQueryString(dispPtr(disp), C.EGLint(name))
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

func eglGetDisplay(native egl.NativeDisplay) egl.Display {
	return egl.Display(uintptr(unsafe.Pointer(C.getDisplay(C.uintptr_t(native)))))
}

func eglGetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Attrib) egl.Display {
	d := C.getPlatformDisplay(C.EGLenum(platform), C.uintptr_t(native), ptrAttribs(attribs))
	return egl.Display(uintptr(unsafe.Pointer(d)))
}

func eglGetPlatformDisplayEXT(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	d := C.getPlatformDisplayEXT(C.EGLenum(platform), C.uintptr_t(native), intAttribs(attribs))
	return egl.Display(uintptr(unsafe.Pointer(d)))
}

func eglInitialize(disp egl.Display) (egl.Int, egl.Int, bool) {
	var major, minor C.EGLint
	ret := C.eglInitialize(dispPtr(disp), &major, &minor)
	return egl.Int(major), egl.Int(minor), ret == C.EGL_TRUE
}

func eglTerminate(disp egl.Display) bool {
	return C.eglTerminate(dispPtr(disp)) == C.EGL_TRUE
}

func eglBindAPI(api egl.Enum) bool {
	return C.eglBindAPI(C.EGLenum(api)) == C.EGL_TRUE
}

func eglChooseConfig(disp egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	var cfg C.EGLConfig
	var ncfg C.EGLint
	ret := C.eglChooseConfig(dispPtr(disp), intAttribs(attribs), &cfg, 1, &ncfg)
	return egl.Config(uintptr(unsafe.Pointer(cfg))), egl.Int(ncfg), ret == C.EGL_TRUE
}

func eglGetConfigAttrib(disp egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	var val C.EGLint
	ret := C.eglGetConfigAttrib(dispPtr(disp), cfgPtr(cfg), C.EGLint(attr), &val)
	return egl.Int(val), ret == C.EGL_TRUE
}

func eglCreateContext(disp egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	c := C.eglCreateContext(dispPtr(disp), cfgPtr(cfg), ctxPtr(share), intAttribs(attribs))
	return egl.Context(uintptr(unsafe.Pointer(c)))
}

func eglCreateWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	s := C.createWindowSurface(dispPtr(disp), cfgPtr(cfg), C.uintptr_t(win), intAttribs(attribs))
	return egl.Surface(uintptr(unsafe.Pointer(s)))
}

func eglCreatePlatformWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Attrib) egl.Surface {
	s := C.createPlatformWindowSurface(dispPtr(disp), cfgPtr(cfg), C.uintptr_t(win), ptrAttribs(attribs))
	return egl.Surface(uintptr(unsafe.Pointer(s)))
}

func eglDestroySurface(disp egl.Display, surf egl.Surface) bool {
	return C.eglDestroySurface(dispPtr(disp), surfPtr(surf)) == C.EGL_TRUE
}

func eglQuerySurface(disp egl.Display, surf egl.Surface, attr egl.Int) (egl.Int, bool) {
	var val C.EGLint
	ret := C.eglQuerySurface(dispPtr(disp), surfPtr(surf), C.EGLint(attr), &val)
	return egl.Int(val), ret == C.EGL_TRUE
}

func eglMakeCurrent(disp egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	return C.eglMakeCurrent(dispPtr(disp), surfPtr(draw), surfPtr(read), ctxPtr(ctx)) == C.EGL_TRUE
}

func eglSwapBuffers(disp egl.Display, surf egl.Surface) bool {
	return C.eglSwapBuffers(dispPtr(disp), surfPtr(surf)) == C.EGL_TRUE
}

func eglSwapInterval(disp egl.Display, interval egl.Int) bool {
	return C.eglSwapInterval(dispPtr(disp), C.EGLint(interval)) == C.EGL_TRUE
}

func eglSetBlobCacheFuncs(disp egl.Display) bool {
	return C.setBlobCacheFuncs(dispPtr(disp)) == C.EGL_TRUE
}
