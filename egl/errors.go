// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"fmt"
)

var (
	// ErrCreation is wrapped by errors from EGL calls that returned a
	// null handle or failed.
	ErrCreation = errors.New("egl: creation failed")
	// ErrUnavailable is wrapped by errors reporting a missing driver,
	// an unsupported EGL version or a missing required extension.
	ErrUnavailable = errors.New("egl: unavailable")
)

func creationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrCreation}, args...)...)
}

func unavailableError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrUnavailable}, args...)...)
}

// ErrorString describes an eglGetError code.
func ErrorString(code Int) string {
	switch code {
	case 0x3000:
		return "EGL_SUCCESS"
	case 0x3001:
		return "EGL_NOT_INITIALIZED"
	case 0x3002:
		return "EGL_BAD_ACCESS"
	case 0x3003:
		return "EGL_BAD_ALLOC"
	case 0x3004:
		return "EGL_BAD_ATTRIBUTE"
	case 0x3005:
		return "EGL_BAD_CONFIG"
	case 0x3006:
		return "EGL_BAD_CONTEXT"
	case 0x3007:
		return "EGL_BAD_CURRENT_SURFACE"
	case 0x3008:
		return "EGL_BAD_DISPLAY"
	case 0x3009:
		return "EGL_BAD_MATCH"
	case 0x300a:
		return "EGL_BAD_NATIVE_PIXMAP"
	case 0x300b:
		return "EGL_BAD_NATIVE_WINDOW"
	case 0x300c:
		return "EGL_BAD_PARAMETER"
	case 0x300d:
		return "EGL_BAD_SURFACE"
	case 0x300e:
		return "EGL_CONTEXT_LOST"
	default:
		return fmt.Sprintf("unknown EGL error 0x%x", uint32(code))
	}
}
