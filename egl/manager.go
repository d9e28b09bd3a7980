// SPDX-License-Identifier: Unlicense OR MIT

package egl

import (
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/slices"

	ilog "gioui.org/eglmgr/internal/log"
	"gioui.org/eglmgr/internal/shadercache"
)

// Manager binds native displays and windows to EGL displays, contexts
// and surfaces. It keeps one EGL display and context per native display
// and one surface per window, and tracks which window is current.
//
// A Manager must only be used from the thread that owns the rendering
// context; it performs no locking.
type Manager struct {
	drv      Driver
	cfg      Settings
	platform Platform
	logger   *log.Logger
	flipY    func(bool)

	version      Version
	platformBase bool
	clientExts   []string
	cache        *shadercache.Cache

	displays []display
	windows  []window
	current  WindowID
	vsync    bool
}

type display struct {
	native NativeDisplay
	disp   Display
	config Config
	ctx    Context
	// EGL_ANGLE_surface_orientation is available.
	orientation bool
}

type window struct {
	display     int
	surf        Surface
	initialized bool
	flippedY    bool
}

// Option configures a Manager.
type Option func(m *Manager)

// WithLogger replaces the default logger. The logger is used as is;
// Settings.LogLevel only applies to the default logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

// WithPlatform overrides the platform named by the Settings.
func WithPlatform(p Platform) Option {
	return func(m *Manager) {
		m.platform = p
	}
}

// WithFlipYHandler registers f to be told whether the window made current
// renders with an inverted Y axis.
func WithFlipYHandler(f func(flipped bool)) Option {
	return func(m *Manager) {
		m.flipY = f
	}
}

// NewManager returns a Manager driving drv.
func NewManager(drv Driver, cfg Settings, opts ...Option) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Platform == "" {
		cfg.Platform = defaultPlatform
	}
	if cfg.DriverName == "" {
		cfg.DriverName = defaultDriverName
	}
	m := &Manager{
		drv:     drv,
		cfg:     cfg,
		current: InvalidWindow,
	}
	m.platform, _ = LookupPlatform(cfg.Platform)
	for _, o := range opts {
		o(m)
	}
	if m.logger == nil {
		m.logger = ilog.Default().With()
		if err := ilog.SetLevel(m.logger, cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("egl: log level: %w", err)
		}
	}
	return m, nil
}

// Initialize loads the driver, checks that it is recent enough and
// supports the platform, and prepares the shader cache. native is used to
// create a temporary display for probing the driver version.
func (m *Manager) Initialize(native NativeDisplay) error {
	if _, err := m.drv.Load(NoDisplay); err != nil {
		return unavailableError("can't load EGL library: %v", err)
	}
	m.clientExts = nil
	exts := m.drv.QueryString(NoDisplay, _EGL_EXTENSIONS)
	clientExtsOK := m.drv.GetError() == _EGL_SUCCESS
	if clientExtsOK {
		m.clientExts = SplitExtensions(exts)
	}
	m.platformBase = slices.Contains(m.clientExts, "EGL_EXT_platform_base")

	var tmp Display
	if m.platformBase {
		tmp = m.drv.GetPlatformDisplayEXT(m.platform.Enum, native, m.platform.displayAttribsEXT())
	} else {
		m.logger.Warn("EGL_EXT_platform_base not found during init, using default platform")
		tmp = m.drv.GetDisplay(native)
	}
	if tmp == NoDisplay {
		return unavailableError("can't get a valid initial EGL display")
	}
	m.drv.Initialize(tmp)
	v, err := m.drv.Load(tmp)
	if err != nil {
		m.drv.Terminate(tmp)
		return unavailableError("can't load EGL library: %v", err)
	}
	m.logger.Debug("loaded EGL", "version", v)
	m.drv.Terminate(tmp)
	if !v.AtLeast(1, 4) {
		return unavailableError("EGL version is too old: %s < 1.4", v)
	}
	m.version = v

	m.cache = nil
	if !m.cfg.DisableShaderCache {
		m.cache = m.openShaderCache()
	}

	if clientExtsOK && !slices.Contains(m.clientExts, m.platform.Extension) {
		return unavailableError("EGL platform extension %q not found", m.platform.Extension)
	}
	return nil
}

func (m *Manager) openShaderCache() *shadercache.Cache {
	root := m.cfg.ShaderCacheRoot
	if root == "" {
		var err error
		root, err = shadercache.DefaultRoot()
		if err != nil {
			m.logger.Error("can't find a shader cache folder, no shader caching will happen", "err", err)
			return nil
		}
	}
	c, err := shadercache.Open(root, m.cfg.DriverName, m.logger)
	if err != nil {
		m.logger.Error("can't create shader cache folder, no shader caching will happen", "root", root, "err", err)
		return nil
	}
	return c
}

// Release terminates every display opened by the manager. Window surfaces
// are destroyed along with their display.
func (m *Manager) Release() {
	for _, d := range m.displays {
		m.drv.Terminate(d.disp)
	}
	m.displays = nil
	m.windows = nil
	m.current = InvalidWindow
}

// Version returns the EGL version found by Initialize.
func (m *Manager) Version() Version {
	return m.version
}

// ClientExtensions returns the client extensions found by Initialize.
func (m *Manager) ClientExtensions() []string {
	return m.clientExts
}

// ShaderCacheDir returns the shader cache directory, or the empty string
// if shader caching is disabled.
func (m *Manager) ShaderCacheDir() string {
	if m.cache == nil {
		return ""
	}
	return m.cache.Dir()
}

// Platform returns the platform the manager creates displays for.
func (m *Manager) Platform() Platform {
	return m.platform
}
