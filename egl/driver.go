// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"
	"strconv"
	"strings"
)

// Driver is the EGL implementation the Manager drives. Methods mirror the
// EGL entry points of the same name; handles are zero on failure.
//
// A Driver is not safe for concurrent use. EGL binds contexts per thread,
// so callers must invoke every method from the thread that owns the
// rendering context.
type Driver interface {
	// Load resolves the EGL entry points. Called with NoDisplay it loads
	// the library and the display independent subset of the API; called
	// with an initialized display it reports the version the display
	// supports.
	Load(disp Display) (Version, error)

	GetError() Int
	QueryString(disp Display, name Int) string
	GetDisplay(native NativeDisplay) Display
	GetPlatformDisplay(platform Enum, native NativeDisplay, attribs []Attrib) Display
	GetPlatformDisplayEXT(platform Enum, native NativeDisplay, attribs []Int) Display
	Initialize(disp Display) (major, minor Int, ok bool)
	Terminate(disp Display) bool
	BindAPI(api Enum) bool
	ChooseConfig(disp Display, attribs []Int) (cfg Config, n Int, ok bool)
	GetConfigAttrib(disp Display, cfg Config, attr Int) (Int, bool)
	CreateContext(disp Display, cfg Config, share Context, attribs []Int) Context
	CreateWindowSurface(disp Display, cfg Config, win NativeWindow, attribs []Int) Surface
	CreatePlatformWindowSurface(disp Display, cfg Config, win NativeWindow, attribs []Attrib) Surface
	DestroySurface(disp Display, surf Surface) bool
	QuerySurface(disp Display, surf Surface, attr Int) (Int, bool)
	MakeCurrent(disp Display, draw, read Surface, ctx Context) bool
	SwapBuffers(disp Display, surf Surface) bool
	SwapInterval(disp Display, interval Int) bool

	// SetBlobCacheFuncs installs cache as the shader binary cache of disp
	// through EGL_ANDROID_blob_cache. It reports false if the driver
	// lacks the extension.
	SetBlobCacheFuncs(disp Display, cache BlobCache) bool
}

// BlobCache stores compiled shader blobs on behalf of the driver.
type BlobCache interface {
	// Get copies the blob stored under key into value if it fits, and
	// returns the size of the stored blob, or 0 if there is none.
	Get(key, value []byte) int
	// Set stores value under key.
	Set(key, value []byte)
}

// Version is an EGL major.minor version.
type Version struct {
	Major, Minor int
}

func (v Version) AtLeast(major, minor int) bool {
	return v.Major > major || v.Major == major && v.Minor >= minor
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses the EGL_VERSION string format
// "<major>.<minor><space><vendor specific info>".
func ParseVersion(s string) (Version, bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	majStr, minStr, ok := strings.Cut(s, ".")
	if !ok {
		return Version{}, false
	}
	major, err := strconv.Atoi(majStr)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.Atoi(minStr)
	if err != nil {
		return Version{}, false
	}
	return Version{Major: major, Minor: minor}, true
}

// SplitExtensions splits an EGL extension string.
func SplitExtensions(s string) []string {
	return strings.Fields(s)
}
