// SPDX-License-Identifier: Unlicense OR MIT

/*
Package libegl implements egl.Driver on top of the system EGL library.

On Linux and the BSDs the library is linked through cgo. On Windows
libEGL.dll, typically ANGLE, is loaded at run time. Other platforms get a
driver that always fails to load.

EGL 1.5 and extension entry points are resolved through eglGetProcAddress
and report failure when the implementation lacks them.
*/
package libegl

import (
	"errors"
	"sync/atomic"

	"gioui.org/eglmgr/egl"
)

// blobCache holds the cache installed by SetBlobCacheFuncs. The
// EGL_ANDROID_blob_cache callbacks carry no user data, so there is one
// cache per process. Drivers may call them from their own threads.
var blobCache atomic.Pointer[blobCacheRef]

type blobCacheRef struct {
	cache egl.BlobCache
}

// Driver is the system EGL driver.
type Driver struct{}

var _ egl.Driver = Driver{}

// Open returns the system EGL driver. The library is loaded by the first
// call to Load.
func Open() Driver {
	return Driver{}
}

func attribPtr[T egl.Int | egl.Attrib](attribs []T) *T {
	if len(attribs) == 0 {
		return nil
	}
	return &attribs[0]
}

func (Driver) Load(disp egl.Display) (egl.Version, error) {
	if err := loadEGL(); err != nil {
		return egl.Version{}, err
	}
	if disp == egl.NoDisplay {
		return egl.Version{Major: 1, Minor: 0}, nil
	}
	v, ok := egl.ParseVersion(eglQueryString(disp, egl.VersionString))
	if !ok {
		return egl.Version{}, errors.New("libegl: can't parse EGL_VERSION")
	}
	return v, nil
}

func (Driver) GetError() egl.Int {
	return eglGetError()
}

func (Driver) QueryString(disp egl.Display, name egl.Int) string {
	return eglQueryString(disp, name)
}

func (Driver) GetDisplay(native egl.NativeDisplay) egl.Display {
	return eglGetDisplay(native)
}

func (Driver) GetPlatformDisplay(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Attrib) egl.Display {
	return eglGetPlatformDisplay(platform, native, attribs)
}

func (Driver) GetPlatformDisplayEXT(platform egl.Enum, native egl.NativeDisplay, attribs []egl.Int) egl.Display {
	return eglGetPlatformDisplayEXT(platform, native, attribs)
}

func (Driver) Initialize(disp egl.Display) (egl.Int, egl.Int, bool) {
	return eglInitialize(disp)
}

func (Driver) Terminate(disp egl.Display) bool {
	return eglTerminate(disp)
}

func (Driver) BindAPI(api egl.Enum) bool {
	return eglBindAPI(api)
}

func (Driver) ChooseConfig(disp egl.Display, attribs []egl.Int) (egl.Config, egl.Int, bool) {
	return eglChooseConfig(disp, attribs)
}

func (Driver) GetConfigAttrib(disp egl.Display, cfg egl.Config, attr egl.Int) (egl.Int, bool) {
	return eglGetConfigAttrib(disp, cfg, attr)
}

func (Driver) CreateContext(disp egl.Display, cfg egl.Config, share egl.Context, attribs []egl.Int) egl.Context {
	return eglCreateContext(disp, cfg, share, attribs)
}

func (Driver) CreateWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Int) egl.Surface {
	return eglCreateWindowSurface(disp, cfg, win, attribs)
}

func (Driver) CreatePlatformWindowSurface(disp egl.Display, cfg egl.Config, win egl.NativeWindow, attribs []egl.Attrib) egl.Surface {
	return eglCreatePlatformWindowSurface(disp, cfg, win, attribs)
}

func (Driver) DestroySurface(disp egl.Display, surf egl.Surface) bool {
	return eglDestroySurface(disp, surf)
}

func (Driver) QuerySurface(disp egl.Display, surf egl.Surface, attr egl.Int) (egl.Int, bool) {
	return eglQuerySurface(disp, surf, attr)
}

func (Driver) MakeCurrent(disp egl.Display, draw, read egl.Surface, ctx egl.Context) bool {
	return eglMakeCurrent(disp, draw, read, ctx)
}

func (Driver) SwapBuffers(disp egl.Display, surf egl.Surface) bool {
	return eglSwapBuffers(disp, surf)
}

func (Driver) SwapInterval(disp egl.Display, interval egl.Int) bool {
	return eglSwapInterval(disp, interval)
}

func (Driver) SetBlobCacheFuncs(disp egl.Display, cache egl.BlobCache) bool {
	setBlobCache(cache)
	return eglSetBlobCacheFuncs(disp)
}

func setBlobCache(c egl.BlobCache) {
	if c == nil {
		blobCache.Store(nil)
		return
	}
	blobCache.Store(&blobCacheRef{cache: c})
}

// getBlob and setBlob back the blob cache callbacks.
func getBlob(key, value []byte) int {
	ref := blobCache.Load()
	if ref == nil {
		return 0
	}
	return ref.cache.Get(key, value)
}

func setBlob(key, value []byte) {
	if ref := blobCache.Load(); ref != nil {
		ref.cache.Set(key, value)
	}
}
