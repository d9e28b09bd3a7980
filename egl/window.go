// SPDX-License-Identifier: Unlicense OR MIT

package egl

// CreateWindow creates a surface for the native window win on native and
// makes it current.
func (m *Manager) CreateWindow(id WindowID, native NativeDisplay, win NativeWindow) error {
	if id < 0 || id > maxWindowID {
		return creationError("invalid window id %d", id)
	}
	idx, err := m.displayIndex(native)
	if err != nil {
		return err
	}
	d := &m.displays[idx]

	// Index the window table directly by id.
	if n := int(id) + 1 - len(m.windows); n > 0 {
		m.windows = append(m.windows, make([]window, n)...)
	}
	w := &m.windows[id]
	if w.initialized {
		m.DestroyWindow(id)
	}
	w.display = idx

	var attribs []Attrib
	if d.orientation {
		if opt, ok := m.drv.GetConfigAttrib(d.disp, d.config, _EGL_OPTIMAL_SURFACE_ORIENTATION_ANGLE); ok {
			// Only inverting Y is worth it, for ANGLE on Direct3D 11.
			if invertsYOnly(opt) {
				attribs = append(attribs, _EGL_SURFACE_ORIENTATION_ANGLE, _EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE)
			}
		} else {
			m.logger.Warn("failed to get EGL_OPTIMAL_SURFACE_ORIENTATION_ANGLE", "err", ErrorString(m.drv.GetError()))
		}
	}
	if len(attribs) > 0 {
		attribs = append(attribs, _EGL_NONE)
	}

	var surf Surface
	if m.version.AtLeast(1, 5) {
		surf = m.drv.CreatePlatformWindowSurface(d.disp, d.config, win, attribs)
	} else {
		var narrow []Int
		for _, a := range attribs {
			narrow = append(narrow, Int(a))
		}
		surf = m.drv.CreateWindowSurface(d.disp, d.config, win, narrow)
	}
	if surf == NoSurface {
		return creationError("eglCreateWindowSurface failed: %s", ErrorString(m.drv.GetError()))
	}
	w.surf = surf
	w.initialized = true
	w.flippedY = false

	if d.orientation {
		if o, ok := m.drv.QuerySurface(d.disp, surf, _EGL_SURFACE_ORIENTATION_ANGLE); ok {
			if invertsYOnly(o) {
				w.flippedY = true
				m.logger.Debug("using optimal surface orientation: invert Y", "window", id)
			}
		} else {
			m.logger.Warn("failed to get EGL_SURFACE_ORIENTATION_ANGLE", "err", ErrorString(m.drv.GetError()))
		}
	}

	// A recreated current window must be bound again.
	if m.current == id {
		m.current = InvalidWindow
	}
	m.MakeCurrent(id)
	return nil
}

func invertsYOnly(orientation Int) bool {
	return orientation&_EGL_SURFACE_ORIENTATION_INVERT_Y_ANGLE != 0 &&
		orientation&_EGL_SURFACE_ORIENTATION_INVERT_X_ANGLE == 0
}

// DestroyWindow destroys the surface of the window. It does nothing for
// windows that don't exist. Destroying the current window leaves it
// current; callers must make another window current before presenting.
func (m *Manager) DestroyWindow(id WindowID) {
	w := m.window(id)
	if w == nil || !w.initialized {
		return
	}
	w.initialized = false
	d := &m.displays[w.display]
	if w.surf != NoSurface {
		m.drv.DestroySurface(d.disp, w.surf)
		w.surf = NoSurface
	}
}

// MakeCurrent binds the context and surface of the window to the calling
// thread. It does nothing for InvalidWindow, for the current window and
// for windows without a surface.
func (m *Manager) MakeCurrent(id WindowID) {
	if id == InvalidWindow {
		return
	}
	w := m.window(id)
	if w == nil || id == m.current || !w.initialized {
		return
	}
	m.current = id
	d := &m.displays[w.display]
	if !m.drv.MakeCurrent(d.disp, w.surf, w.surf, d.ctx) {
		m.logger.Warn("eglMakeCurrent failed", "window", id, "err", ErrorString(m.drv.GetError()))
	}
	if m.flipY != nil {
		m.flipY(w.flippedY)
	}
}

// ReleaseCurrent unbinds the current context from the calling thread. The
// manager still considers the window current.
func (m *Manager) ReleaseCurrent() {
	w := m.currentWindow()
	if w == nil {
		return
	}
	d := &m.displays[w.display]
	m.drv.MakeCurrent(d.disp, NoSurface, NoSurface, NoContext)
}

// SwapBuffers presents the current window.
func (m *Manager) SwapBuffers() {
	w := m.currentWindow()
	if w == nil {
		return
	}
	if !w.initialized {
		m.logger.Warn("current OpenGL window is uninitialized", "window", m.current)
		return
	}
	d := &m.displays[w.display]
	if !m.drv.SwapBuffers(d.disp, w.surf) {
		m.logger.Warn("eglSwapBuffers failed", "window", m.current, "err", ErrorString(m.drv.GetError()))
	}
}

// SetVSync sets the swap interval of the current window's display. The
// setting is recorded even if the driver rejects it. Without a current
// window it does nothing.
func (m *Manager) SetVSync(enable bool) {
	w := m.currentWindow()
	if w == nil {
		return
	}
	d := &m.displays[w.display]
	var interval Int
	if enable {
		interval = 1
	}
	if !m.drv.SwapInterval(d.disp, interval) {
		m.logger.Warn("could not set V-Sync mode", "enable", enable)
	}
	m.vsync = enable
}

// VSync reports the last mode requested with SetVSync.
func (m *Manager) VSync() bool {
	return m.vsync
}

// Current returns the current window, or InvalidWindow.
func (m *Manager) Current() WindowID {
	return m.current
}

// Context returns the EGL context of the window, or NoContext.
func (m *Manager) Context(id WindowID) Context {
	if d := m.windowDisplay(id); d != nil {
		return d.ctx
	}
	return NoContext
}

// Display returns the EGL display of the window, or NoDisplay.
func (m *Manager) Display(id WindowID) Display {
	if d := m.windowDisplay(id); d != nil {
		return d.disp
	}
	return NoDisplay
}

// Config returns the EGL config of the window, or NoConfig.
func (m *Manager) Config(id WindowID) Config {
	if d := m.windowDisplay(id); d != nil {
		return d.config
	}
	return NoConfig
}

func (m *Manager) window(id WindowID) *window {
	if id < 0 || int(id) >= len(m.windows) {
		return nil
	}
	return &m.windows[id]
}

func (m *Manager) currentWindow() *window {
	return m.window(m.current)
}

func (m *Manager) windowDisplay(id WindowID) *display {
	w := m.window(id)
	if w == nil || !w.initialized {
		return nil
	}
	return &m.displays[w.display]
}
