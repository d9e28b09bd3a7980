// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	ilog "gioui.org/eglmgr/internal/log"
)

const (
	testDisplay NativeDisplay = 0xd1
	testWindow  NativeWindow  = 0xa1
)

func newTestManager(t *testing.T, f *fakeDriver, cfg Settings, opts ...Option) *Manager {
	t.Helper()
	if cfg.Platform == "" {
		cfg.Platform = PlatformX11.Name
	}
	opts = append([]Option{WithLogger(ilog.Discard())}, opts...)
	m, err := NewManager(f, cfg, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func initManager(t *testing.T, f *fakeDriver, opts ...Option) *Manager {
	t.Helper()
	m := newTestManager(t, f, Settings{DisableShaderCache: true}, opts...)
	if err := m.Initialize(testDisplay); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestInitialize(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if got := m.Version(); got != (Version{1, 5}) {
		t.Errorf("version %v, want 1.5", got)
	}
	if f.platformEXTCalls != 1 {
		t.Errorf("expected the probe display to use eglGetPlatformDisplayEXT, got %d calls", f.platformEXTCalls)
	}
	if len(f.terminated) != 1 {
		t.Errorf("probe display not terminated")
	}
	if m.ShaderCacheDir() != "" {
		t.Errorf("shader cache enabled despite being disabled")
	}
}

func TestInitializeErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fakeDriver)
	}{
		{"load", func(f *fakeDriver) { f.loadErr = errors.New("no libEGL") }},
		{"display", func(f *fakeDriver) { f.noDisplay = true }},
		{"version", func(f *fakeDriver) { f.version = Version{1, 3} }},
		{"extension", func(f *fakeDriver) { f.clientExts = "EGL_EXT_platform_base EGL_KHR_platform_wayland" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeDriver()
			test.setup(f)
			m := newTestManager(t, f, Settings{DisableShaderCache: true})
			err := m.Initialize(testDisplay)
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("got %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestInitializeWithoutPlatformBase(t *testing.T) {
	f := newFakeDriver()
	f.clientExts = "EGL_KHR_platform_x11"
	initManager(t, f)
	if f.getDisplayCalls != 1 || f.platformEXTCalls != 0 {
		t.Errorf("expected eglGetDisplay fallback, got %d/%d", f.getDisplayCalls, f.platformEXTCalls)
	}
}

func TestInitializeShaderCache(t *testing.T) {
	f := newFakeDriver()
	f.blobCache = true
	root := t.TempDir()
	m := newTestManager(t, f, Settings{ShaderCacheRoot: root, DriverName: "Mesa"})
	if err := m.Initialize(testDisplay); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "shader_cache", "Mesa")
	if got := m.ShaderCacheDir(); got != want {
		t.Fatalf("cache dir %q, want %q", got, want)
	}
	if fi, err := os.Stat(want); err != nil || !fi.IsDir() {
		t.Fatalf("cache dir not created: %v", err)
	}
	if err := m.Open(testDisplay); err != nil {
		t.Fatal(err)
	}
	if f.cache == nil {
		t.Fatal("blob cache not installed")
	}
	f.cache.Set([]byte("key"), []byte("blob"))
	buf := make([]byte, 16)
	if n := f.cache.Get([]byte("key"), buf); n != 4 || string(buf[:n]) != "blob" {
		t.Errorf("Get = %d %q", n, buf[:n])
	}
}

func TestInitializeShaderCacheFallback(t *testing.T) {
	f := newFakeDriver()
	f.blobCache = true
	missing := filepath.Join(t.TempDir(), "missing")
	m := newTestManager(t, f, Settings{ShaderCacheRoot: missing})
	if err := m.Initialize(testDisplay); err != nil {
		t.Fatal(err)
	}
	if m.ShaderCacheDir() != "" {
		t.Errorf("shader cache enabled for a missing root")
	}
	if err := m.Open(testDisplay); err != nil {
		t.Fatal(err)
	}
	if f.cache != nil {
		t.Error("blob cache installed without a cache directory")
	}
}

func TestOpenSameDisplayOnce(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	created := f.platformCalls
	i1, err := m.displayIndex(testDisplay)
	if err != nil {
		t.Fatal(err)
	}
	i2, err := m.displayIndex(testDisplay)
	if err != nil {
		t.Fatal(err)
	}
	if i1 != i2 {
		t.Errorf("indices differ: %d != %d", i1, i2)
	}
	if n := f.platformCalls - created; n != 1 {
		t.Errorf("created %d EGL displays, want 1", n)
	}
}

func TestDisplayCreationPaths(t *testing.T) {
	tests := []struct {
		name    string
		version Version
		exts    string
		check   func(f *fakeDriver) int
	}{
		{"1.5", Version{1, 5}, "EGL_EXT_platform_base EGL_KHR_platform_x11", func(f *fakeDriver) int { return f.platformCalls }},
		{"platform_base", Version{1, 4}, "EGL_EXT_platform_base EGL_KHR_platform_x11", func(f *fakeDriver) int { return f.platformEXTCalls - 1 }},
		{"legacy", Version{1, 4}, "EGL_KHR_platform_x11", func(f *fakeDriver) int { return f.getDisplayCalls - 1 }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeDriver()
			f.version = test.version
			f.clientExts = test.exts
			m := initManager(t, f)
			if err := m.Open(testDisplay); err != nil {
				t.Fatal(err)
			}
			if n := test.check(f); n != 1 {
				t.Errorf("expected 1 display from the %s path, got %d", test.name, n)
			}
		})
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(f *fakeDriver)
		terminate bool
	}{
		{"display", func(f *fakeDriver) { f.noDisplay = true }, false},
		{"initialize", func(f *fakeDriver) { f.failInit = true }, false},
		{"bind", func(f *fakeDriver) { f.failBindAPI = true }, false},
		{"config", func(f *fakeDriver) { f.noConfigs = true }, true},
		{"context", func(f *fakeDriver) { f.noContext = true }, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFakeDriver()
			m := initManager(t, f)
			test.setup(f)
			before := len(f.terminated)
			err := m.Open(testDisplay)
			if !errors.Is(err, ErrCreation) {
				t.Fatalf("got %v, want ErrCreation", err)
			}
			if terminated := len(f.terminated) > before; terminated != test.terminate {
				t.Errorf("display terminated = %v, want %v", terminated, test.terminate)
			}
			if len(m.displays) != 0 {
				t.Errorf("failed display was recorded")
			}
		})
	}
}

func TestConfigSelection(t *testing.T) {
	f := newFakeDriver()
	m := newTestManager(t, f, Settings{DisableShaderCache: true, Layered: true})
	if err := m.Initialize(testDisplay); err != nil {
		t.Fatal(err)
	}
	if err := m.Open(testDisplay); err != nil {
		t.Fatal(err)
	}
	if !hasAttrib(f.lastConfig, _EGL_ALPHA_SIZE, 8) {
		t.Errorf("layered config without alpha: %v", f.lastConfig)
	}

	f = newFakeDriver()
	m = initManager(t, f)
	if err := m.Open(testDisplay); err != nil {
		t.Fatal(err)
	}
	if hasAttrib(f.lastConfig, _EGL_ALPHA_SIZE, 8) || !hasAttrib(f.lastConfig, _EGL_DEPTH_SIZE, 24) {
		t.Errorf("unexpected baseline config: %v", f.lastConfig)
	}
}

func hasAttrib(attribs []Int, key, val Int) bool {
	for i := 0; i+1 < len(attribs); i += 2 {
		if attribs[i] == key && attribs[i+1] == val {
			return true
		}
	}
	return false
}

func TestNativeVisualID(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	id, err := m.NativeVisualID(testDisplay)
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x21 {
		t.Errorf("visual id 0x%x, want 0x21", id)
	}
}

func TestRelease(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	probes := len(f.terminated)
	natives := []NativeDisplay{1, 2, 3, 2, 1}
	for _, n := range natives {
		if err := m.Open(n); err != nil {
			t.Fatal(err)
		}
	}
	m.Release()
	if got := len(f.terminated) - probes; got != 3 {
		t.Errorf("terminated %d displays, want 3", got)
	}
	for _, n := range []NativeDisplay{1, 2, 3} {
		found := false
		for _, d := range f.terminated[probes:] {
			if d == f.displays[n] {
				found = true
			}
		}
		if !found {
			t.Errorf("display for native %d not terminated", n)
		}
	}
}

func TestEndToEnd(t *testing.T) {
	f := newFakeDriver()
	m := initManager(t, f)
	if err := m.Open(testDisplay); err != nil {
		t.Fatal(err)
	}
	if err := m.CreateWindow(7, testDisplay, testWindow); err != nil {
		t.Fatal(err)
	}
	if got, want := m.Display(7), f.displays[testDisplay]; got != want || got == NoDisplay {
		t.Errorf("Display(7) = %v, want %v", got, want)
	}
	if m.Context(7) == NoContext || m.Config(7) == NoConfig {
		t.Error("missing context or config for window 7")
	}
	if got := m.Context(99); got != NoContext {
		t.Errorf("Context(99) = %v, want NoContext", got)
	}
	if got := m.Context(3); got != NoContext {
		t.Errorf("Context(3) = %v, want NoContext", got)
	}
	if m.Display(-5) != NoDisplay || m.Config(99) != NoConfig {
		t.Error("out of range accessors must return null handles")
	}
}

func TestWithLoggerKeepsLevel(t *testing.T) {
	l := ilog.Discard()
	l.SetLevel(log.ErrorLevel)
	if _, err := NewManager(newFakeDriver(), Settings{Platform: "x11", LogLevel: "debug"}, WithLogger(l)); err != nil {
		t.Fatal(err)
	}
	if l.GetLevel() != log.ErrorLevel {
		t.Errorf("supplied logger level changed to %v", l.GetLevel())
	}
}

func TestNewManagerErrors(t *testing.T) {
	f := newFakeDriver()
	if _, err := NewManager(f, Settings{Platform: "amiga"}); err == nil {
		t.Error("expected an error for an unknown platform")
	}
	if _, err := NewManager(f, Settings{Platform: "x11", LogLevel: "loud"}); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}
