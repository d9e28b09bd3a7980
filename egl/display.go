// SPDX-License-Identifier: Unlicense OR MIT

package egl

import "golang.org/x/exp/slices"

// Open makes sure an EGL display and context exist for native.
func (m *Manager) Open(native NativeDisplay) error {
	_, err := m.displayIndex(native)
	return err
}

// NativeVisualID returns the native visual id of the config chosen for
// native, for hosts that must create windows matching it.
func (m *Manager) NativeVisualID(native NativeDisplay) (int, error) {
	idx, err := m.displayIndex(native)
	if err != nil {
		return -1, err
	}
	d := &m.displays[idx]
	id, ok := m.drv.GetConfigAttrib(d.disp, d.config, _EGL_NATIVE_VISUAL_ID)
	if !ok {
		return -1, creationError("eglGetConfigAttrib(EGL_NATIVE_VISUAL_ID) failed: %s", ErrorString(m.drv.GetError()))
	}
	return int(id), nil
}

// displayIndex returns the index of the display record for native,
// creating the EGL display and context on first use.
func (m *Manager) displayIndex(native NativeDisplay) (int, error) {
	for i := range m.displays {
		if m.displays[i].native == native {
			return i, nil
		}
	}

	d := display{native: native}
	switch {
	case m.version.AtLeast(1, 5):
		d.disp = m.drv.GetPlatformDisplay(m.platform.Enum, native, m.platform.displayAttribs())
	case m.platformBase:
		d.disp = m.drv.GetPlatformDisplayEXT(m.platform.Enum, native, m.platform.displayAttribsEXT())
	default:
		d.disp = m.drv.GetDisplay(native)
	}
	if code := m.drv.GetError(); code != _EGL_SUCCESS {
		return -1, creationError("can't get an EGL display: %s", ErrorString(code))
	}
	if d.disp == NoDisplay {
		return -1, creationError("can't create an EGL display")
	}
	if _, _, ok := m.drv.Initialize(d.disp); !ok {
		return -1, creationError("can't initialize an EGL display: %s", ErrorString(m.drv.GetError()))
	}
	if !m.drv.BindAPI(m.platform.API) {
		return -1, creationError("eglBindAPI(0x%x) failed: %s", uint32(m.platform.API), ErrorString(m.drv.GetError()))
	}
	if err := m.createContext(&d); err != nil {
		m.drv.Terminate(d.disp)
		return -1, err
	}

	if m.cache != nil && m.drv.SetBlobCacheFuncs(d.disp, m.cache) {
		m.logger.Debug("shader blob cache enabled", "dir", m.cache.Dir())
	}

	if m.platform.SurfaceOrientation {
		exts := m.drv.QueryString(d.disp, _EGL_EXTENSIONS)
		if m.drv.GetError() == _EGL_SUCCESS && slices.Contains(SplitExtensions(exts), "EGL_ANGLE_surface_orientation") {
			d.orientation = true
			m.logger.Debug("EGL_ANGLE_surface_orientation is supported")
		}
	}

	m.displays = append(m.displays, d)
	return len(m.displays) - 1, nil
}

func (m *Manager) createContext(d *display) error {
	attribs := []Int{
		_EGL_RED_SIZE, 1,
		_EGL_GREEN_SIZE, 1,
		_EGL_BLUE_SIZE, 1,
		_EGL_DEPTH_SIZE, 24,
		_EGL_NONE,
	}
	if m.cfg.Layered {
		attribs = []Int{
			_EGL_RED_SIZE, 8,
			_EGL_GREEN_SIZE, 8,
			_EGL_BLUE_SIZE, 8,
			_EGL_ALPHA_SIZE, 8,
			_EGL_DEPTH_SIZE, 24,
			_EGL_NONE,
		}
	}
	cfg, n, _ := m.drv.ChooseConfig(d.disp, attribs)
	if code := m.drv.GetError(); code != _EGL_SUCCESS {
		return creationError("eglChooseConfig failed: %s", ErrorString(code))
	}
	if n == 0 {
		return creationError("eglChooseConfig returned 0 configs")
	}
	d.config = cfg

	ctx := m.drv.CreateContext(d.disp, d.config, NoContext, m.platform.contextAttribs())
	if ctx == NoContext {
		return creationError("can't create an EGL context: %s", ErrorString(m.drv.GetError()))
	}
	d.ctx = ctx
	return nil
}
