// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/exp/slices"
)

func TestSwapPresentsCurrentWindowOnly(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.CreateWindow(0, testDisplay, 0xa0); err != nil {
		t.Fatal(err)
	}
	if err := m.CreateWindow(1, testDisplay, 0xa1); err != nil {
		t.Fatal(err)
	}
	m.MakeCurrent(0)
	m.SwapBuffers()
	if len(f.swaps) != 1 {
		t.Fatalf("%d presentations, want 1", len(f.swaps))
	}
	if win := f.surfaces[f.swaps[0]]; win != 0xa0 {
		t.Errorf("presented window 0x%x, want 0xa0", win)
	}
}

func TestCreateWindowMakesCurrent(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if m.Current() != InvalidWindow {
		t.Fatal("new manager has a current window")
	}
	if err := m.CreateWindow(2, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	if m.Current() != 2 {
		t.Errorf("current window %d, want 2", m.Current())
	}
	if len(f.makeCurrent) != 1 {
		t.Errorf("%d eglMakeCurrent calls, want 1", len(f.makeCurrent))
	}
}

func TestMakeCurrentIdempotent(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	for id := WindowID(0); id < 2; id++ {
		if err := m.CreateWindow(id, testDisplay, testWindow); err != nil {
			t.Fatal(err)
		}
	}
	m.MakeCurrent(0)
	n := len(f.makeCurrent)
	m.MakeCurrent(0)
	if len(f.makeCurrent) != n {
		t.Errorf("MakeCurrent of the current window rebound the context")
	}
	m.MakeCurrent(InvalidWindow)
	m.MakeCurrent(42)
	if len(f.makeCurrent) != n || m.Current() != 0 {
		t.Errorf("MakeCurrent of missing windows changed state")
	}
}

func TestMakeCurrentUninitialized(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.CreateWindow(4, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	n := len(f.makeCurrent)
	m.MakeCurrent(1)
	if len(f.makeCurrent) != n || m.Current() != 4 {
		t.Error("uninitialized window was made current")
	}
}

func TestDestroyWindowNoop(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	m.DestroyWindow(3)
	if err := m.CreateWindow(1, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	m.DestroyWindow(0)
	m.DestroyWindow(100)
	m.DestroyWindow(-2)
	if len(f.destroyed) != 0 {
		t.Errorf("%d surfaces destroyed, want 0", len(f.destroyed))
	}
}

func TestDestroyWindow(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.CreateWindow(1, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	m.DestroyWindow(1)
	m.DestroyWindow(1)
	if len(f.destroyed) != 1 {
		t.Fatalf("%d surfaces destroyed, want 1", len(f.destroyed))
	}
	if m.Context(1) != NoContext {
		t.Error("destroyed window still has a context")
	}
	// The destroyed window stays current but is not presented.
	if m.Current() != 1 {
		t.Errorf("current window %d, want 1", m.Current())
	}
	m.SwapBuffers()
	if len(f.swaps) != 0 {
		t.Error("destroyed window was presented")
	}
}

func TestRecreateCurrentWindow(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.CreateWindow(0, testDisplay, 0xa0); err != nil {
		t.Fatal(err)
	}
	m.DestroyWindow(0)
	if err := m.CreateWindow(0, testDisplay, 0xb0); err != nil {
		t.Fatal(err)
	}
	last := f.makeCurrent[len(f.makeCurrent)-1]
	if f.surfaces[last] != 0xb0 {
		t.Errorf("new surface not bound")
	}
	m.SwapBuffers()
	if len(f.swaps) != 1 || f.surfaces[f.swaps[0]] != 0xb0 {
		t.Errorf("expected the new surface to be presented")
	}
}

func TestCreateWindowFailure(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	f.noSurface = true
	err := m.CreateWindow(5, testDisplay, testWindow)
	if !errors.Is(err, ErrCreation) {
		t.Fatalf("got %v, want ErrCreation", err)
	}
	if m.Context(5) != NoContext || m.Current() != InvalidWindow {
		t.Error("failed window left initialized or current")
	}
	f.noSurface = false
	if err := m.CreateWindow(5, testDisplay, testWindow); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	for _, id := range []WindowID{-3, maxWindowID + 1, 1 << 40, math.MaxInt} {
		if err := m.CreateWindow(id, testDisplay, testWindow); !errors.Is(err, ErrCreation) {
			t.Errorf("id %d: got %v", id, err)
		}
	}
	if len(m.windows) != 6 {
		t.Errorf("window table grew to %d entries", len(m.windows))
	}
}

func TestCreateWindowInvalidIDOpensNoDisplay(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.CreateWindow(math.MaxInt, testDisplay, testWindow); !errors.Is(err, ErrCreation) {
		t.Fatalf("got %v, want ErrCreation", err)
	}
	if len(m.displays) != 0 || f.platformCalls != 0 {
		t.Error("invalid window id created a display")
	}
}

func TestCreateWindowSurfacePaths(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		legacy  bool
	}{
		{"1.5", Version{1, 5}, false},
		{"1.4", Version{1, 4}, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeDriver()
			f.version = test.version
			f.clientExts = "EGL_EXT_platform_base EGL_ANGLE_platform_angle"
			f.displayExts = "EGL_ANGLE_surface_orientation"
			f.optimalOrient = _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE
			f.surfaceOrient = _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE
			m := newTestManager(t, f, Settings{DisableShaderCache: true}, WithPlatform(PlatformANGLE))
			if err := m.Initialize(testDisplay); err != nil {
				t.Fatal(err)
			}
			if err := m.CreateWindow(0, testDisplay, testWindow); err != nil {
				t.Fatal(err)
			}
			if got := f.legacySurfaces == 1; got != test.legacy {
				t.Fatalf("eglCreateWindowSurface used = %v, want %v", got, test.legacy)
			}
			want := []Int{_EGL_SURFACE_ORIENTATION_ANGLE, _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE, _EGL_NONE}
			if test.legacy {
				if !slices.Equal(f.legacyAttribs, want) {
					t.Errorf("surface attributes %v, want %v", f.legacyAttribs, want)
				}
				if f.surfaceAttribs != nil {
					t.Error("eglCreatePlatformWindowSurface called on EGL 1.4")
				}
			} else if len(f.surfaceAttribs) != len(want) {
				t.Errorf("surface attributes %v, want %v", f.surfaceAttribs, want)
			}
			if f.surfaces[f.makeCurrent[len(f.makeCurrent)-1]] != testWindow {
				t.Error("new surface not made current")
			}
		})
	}
}

func TestReleaseCurrent(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	m.ReleaseCurrent()
	if len(f.makeCurrent) != 0 {
		t.Fatal("ReleaseCurrent without a current window called the driver")
	}
	if err := m.CreateWindow(0, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	m.ReleaseCurrent()
	if last := f.makeCurrent[len(f.makeCurrent)-1]; last != NoSurface {
		t.Errorf("ReleaseCurrent bound surface %v", last)
	}
	if m.Current() != 0 {
		t.Error("ReleaseCurrent forgot the current window")
	}
}

func TestVSync(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	m.SetVSync(true)
	if m.VSync() || len(f.intervals) != 0 {
		t.Fatal("SetVSync without a current window had an effect")
	}
	if err := m.CreateWindow(0, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	f.failInterval = true
	m.SetVSync(true)
	if !m.VSync() {
		t.Error("vsync not recorded after driver failure")
	}
	f.failInterval = false
	m.SetVSync(false)
	if m.VSync() {
		t.Error("vsync still enabled")
	}
	if len(f.intervals) != 2 || f.intervals[0] != 1 || f.intervals[1] != 0 {
		t.Errorf("swap intervals %v, want [1 0]", f.intervals)
	}
}

func TestSurfaceOrientation(t *testing.T) {
	tests := []struct {
		name    string
		exts    string
		orient  Int
		flipped bool
	}{
		{"invert-y", "EGL_ANGLE_surface_orientation", _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE, true},
		{"invert-xy", "EGL_ANGLE_surface_orientation", _EGL_SURFACE_ORIENTATION_INVERT_X_ANGLE | _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE, false},
		{"unsupported", "", _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeDriver()
			f.clientExts = "EGL_EXT_platform_base EGL_ANGLE_platform_angle"
			f.displayExts = test.exts
			f.optimalOrient = test.orient
			f.surfaceOrient = test.orient
			var flips []bool
			m := newTestManager(t, f, Settings{DisableShaderCache: true}, WithPlatform(PlatformANGLE), WithFlipYHandler(func(flipped bool) {
				flips = append(flips, flipped)
			}))
			if err := m.Initialize(testDisplay); err != nil {
				t.Fatal(err)
			}
			if err := m.CreateWindow(0, testDisplay, testWindow); err != nil {
				t.Fatal(err)
			}
			if len(flips) != 1 || flips[0] != test.flipped {
				t.Errorf("flip reports %v, want [%v]", flips, test.flipped)
			}
			requested := len(f.surfaceAttribs) > 0
			if requested != test.flipped {
				t.Errorf("orientation attributes %v, want requested=%v", f.surfaceAttribs, test.flipped)
			}
		})
	}
}
