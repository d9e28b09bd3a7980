// SPDX-License-Identifier: Unlicense OR MIT

//go:build (linux || freebsd || openbsd) && cgo

package libegl

/*
#include <EGL/egl.h>
#include <EGL/eglext.h>
*/
import "C"

import "unsafe"

//export gio_eglmgr_setBlob
func gio_eglmgr_setBlob(key unsafe.Pointer, keySize C.EGLsizeiANDROID, value unsafe.Pointer, valueSize C.EGLsizeiANDROID) {
	setBlob(unsafe.Slice((*byte)(key), keySize), unsafe.Slice((*byte)(value), valueSize))
}

//export gio_eglmgr_getBlob
func gio_eglmgr_getBlob(key unsafe.Pointer, keySize C.EGLsizeiANDROID, value unsafe.Pointer, valueSize C.EGLsizeiANDROID) C.EGLsizeiANDROID {
	return C.EGLsizeiANDROID(getBlob(unsafe.Slice((*byte)(key), keySize), unsafe.Slice((*byte)(value), valueSize)))
}
