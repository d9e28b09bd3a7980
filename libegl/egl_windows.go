// SPDX-License-Identifier: Unlicense OR MIT

package libegl

import (
	"fmt"
	"runtime"
	"sync"
	gosyscall "syscall"
	"unsafe"

	syscall "golang.org/x/sys/windows"

	"gioui.org/eglmgr/egl"
)

var (
	libEGL                  = syscall.DLL{}
	_eglBindAPI             *syscall.Proc
	_eglChooseConfig        *syscall.Proc
	_eglCreateContext       *syscall.Proc
	_eglCreateWindowSurface *syscall.Proc
	_eglDestroySurface      *syscall.Proc
	_eglGetConfigAttrib     *syscall.Proc
	_eglGetDisplay          *syscall.Proc
	_eglGetError            *syscall.Proc
	_eglGetProcAddress      *syscall.Proc
	_eglInitialize          *syscall.Proc
	_eglMakeCurrent         *syscall.Proc
	_eglQueryString         *syscall.Proc
	_eglQuerySurface        *syscall.Proc
	_eglSwapBuffers         *syscall.Proc
	_eglSwapInterval        *syscall.Proc
	_eglTerminate           *syscall.Proc
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Callbacks for EGL_ANDROID_blob_cache.
var (
	setBlobCallback = syscall.NewCallback(func(key, keySize, value, valueSize uintptr) uintptr {
		setBlob(unsafe.Slice((*byte)(unsafe.Pointer(key)), keySize), unsafe.Slice((*byte)(unsafe.Pointer(value)), valueSize))
		return 0
	})
	getBlobCallback = syscall.NewCallback(func(key, keySize, value, valueSize uintptr) uintptr {
		return uintptr(getBlob(unsafe.Slice((*byte)(unsafe.Pointer(key)), keySize), unsafe.Slice((*byte)(unsafe.Pointer(value)), valueSize)))
	})
)

func loadEGL() error {
	loadOnce.Do(func() {
		loadErr = loadDLLs()
	})
	return loadErr
}

func loadDLLs() error {
	if err := loadDLL(&libEGL, "libEGL.dll"); err != nil {
		return err
	}

	procs := map[string]**syscall.Proc{
		"eglBindAPI":             &_eglBindAPI,
		"eglChooseConfig":        &_eglChooseConfig,
		"eglCreateContext":       &_eglCreateContext,
		"eglCreateWindowSurface": &_eglCreateWindowSurface,
		"eglDestroySurface":      &_eglDestroySurface,
		"eglGetConfigAttrib":     &_eglGetConfigAttrib,
		"eglGetDisplay":          &_eglGetDisplay,
		"eglGetError":            &_eglGetError,
		"eglGetProcAddress":      &_eglGetProcAddress,
		"eglInitialize":          &_eglInitialize,
		"eglMakeCurrent":         &_eglMakeCurrent,
		"eglQueryString":         &_eglQueryString,
		"eglQuerySurface":        &_eglQuerySurface,
		"eglSwapBuffers":         &_eglSwapBuffers,
		"eglSwapInterval":        &_eglSwapInterval,
		"eglTerminate":           &_eglTerminate,
	}
	for name, proc := range procs {
		p, err := libEGL.FindProc(name)
		if err != nil {
			return fmt.Errorf("failed to locate %s in %s: %w", name, libEGL.Name, err)
		}
		*proc = p
	}
	return nil
}

func loadDLL(dll *syscall.DLL, name string) error {
	handle, err := syscall.LoadLibraryEx(name, 0, syscall.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS)
	if err != nil {
		return fmt.Errorf("libegl: failed to load %s: %v", name, err)
	}
	dll.Handle = handle
	dll.Name = name
	return nil
}

// getProcAddress resolves an EGL 1.5 or extension entry point.
func getProcAddress(name string) uintptr {
	cname, err := syscall.BytePtrFromString(name)
	if err != nil {
		return 0
	}
	r, _, _ := _eglGetProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	issue34474KeepAlive(cname)
	return r
}

func eglBindAPI(api egl.Enum) bool {
	r, _, _ := _eglBindAPI.Call(uintptr(api))
	return r != 0
}

func eglChooseConfig(disp egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	var cfg egl.Config
	var ncfg egl.Int
	a := attribPtr(attribs)
	r, _, _ := _eglChooseConfig.Call(uintptr(disp), uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(&cfg)), 1, uintptr(unsafe.Pointer(&ncfg)))
	issue34474KeepAlive(a)
	return cfg, ncfg, r != 0
}

func eglCreateContext(disp egl.Display, cfg egl.Config, shareCtx egl.Context, attribs []egl.Int) egl.Context {
	a := attribPtr(attribs)
	c, _, _ := _eglCreateContext.Call(uintptr(disp), uintptr(cfg), uintptr(shareCtx), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return egl.Context(c)
}

func eglCreateWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	a := attribPtr(attribs)
	s, _, _ := _eglCreateWindowSurface.Call(uintptr(disp), uintptr(cfg), uintptr(win), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return egl.Surface(s)
}

func eglCreatePlatformWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Attrib) egl.Surface {
	f := getProcAddress("eglCreatePlatformWindowSurface")
	if f == 0 {
		return egl.NoSurface
	}
	a := attribPtr(attribs)
	s, _, _ := gosyscall.SyscallN(f, uintptr(disp), uintptr(cfg), uintptr(win), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return egl.Surface(s)
}

func eglDestroySurface(disp egl.Display, surf egl.Surface) bool {
	r, _, _ := _eglDestroySurface.Call(uintptr(disp), uintptr(surf))
	return r != 0
}

func eglGetConfigAttrib(disp egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	var val uintptr
	r, _, _ := _eglGetConfigAttrib.Call(uintptr(disp), uintptr(cfg), uintptr(attr), uintptr(unsafe.Pointer(&val)))
	return egl.Int(val), r != 0
}

func eglGetDisplay(disp egl.NativeDisplay) egl.Display {
	d, _, _ := _eglGetDisplay.Call(uintptr(disp))
	return egl.Display(d)
}

func eglGetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Attrib) egl.Display {
	f := getProcAddress("eglGetPlatformDisplay")
	if f == 0 {
		return egl.NoDisplay
	}
	a := attribPtr(attribs)
	d, _, _ := gosyscall.SyscallN(f, uintptr(platform), uintptr(native), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return egl.Display(d)
}

func eglGetPlatformDisplayEXT(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	f := getProcAddress("eglGetPlatformDisplayEXT")
	if f == 0 {
		return egl.NoDisplay
	}
	a := attribPtr(attribs)
	d, _, _ := gosyscall.SyscallN(f, uintptr(platform), uintptr(native), uintptr(unsafe.Pointer(a)))
	issue34474KeepAlive(a)
	return egl.Display(d)
}

func eglGetError() egl.Int {
	e, _, _ := _eglGetError.Call()
	return egl.Int(e)
}

func eglInitialize(disp egl.Display) (egl.Int, egl.Int, bool) {
	var major, minor egl.Int
	r, _, _ := _eglInitialize.Call(uintptr(disp), uintptr(unsafe.Pointer(&major)), uintptr(unsafe.Pointer(&minor)))
	return major, minor, r != 0
}

func eglMakeCurrent(disp egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	r, _, _ := _eglMakeCurrent.Call(uintptr(disp), uintptr(draw), uintptr(read), uintptr(ctx))
	return r != 0
}

func eglQuerySurface(disp egl.Display, surf egl.Surface, attr egl.Int) (egl.Int, bool) {
	var val egl.Int
	r, _, _ := _eglQuerySurface.Call(uintptr(disp), uintptr(surf), uintptr(attr), uintptr(unsafe.Pointer(&val)))
	return val, r != 0
}

func eglSwapInterval(disp egl.Display, interval egl.Int) bool {
	r, _, _ := _eglSwapInterval.Call(uintptr(disp), uintptr(interval))
	return r != 0
}

func eglSwapBuffers(disp egl.Display, surf egl.Surface) bool {
	r, _, _ := _eglSwapBuffers.Call(uintptr(disp), uintptr(surf))
	return r != 0
}

func eglTerminate(disp egl.Display) bool {
	r, _, _ := _eglTerminate.Call(uintptr(disp))
	return r != 0
}

func eglQueryString(disp egl.Display, name egl.Int) string {
	r, _, _ := _eglQueryString.Call(uintptr(disp), uintptr(name))
	if r == 0 {
		return ""
	}
	return syscall.BytePtrToString((*byte)(unsafe.Pointer(r)))
}

func eglSetBlobCacheFuncs(disp egl.Display) bool {
	f := getProcAddress("eglSetBlobCacheFuncsANDROID")
	if f == 0 {
		return false
	}
	gosyscall.SyscallN(f, uintptr(disp), setBlobCallback, getBlobCallback)
	return true
}

// issue34474KeepAlive calls runtime.KeepAlive as a
// workaround for golang.org/issue/34474.
func issue34474KeepAlive(v any) {
	runtime.KeepAlive(v)
}
