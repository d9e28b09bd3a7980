// SPDX-License-Identifier: Unlicense OR MIT

// Command eglinfo initializes the EGL manager against the system driver
// and prints what it found.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gioui.org/eglmgr/egl"
	"gioui.org/eglmgr/libegl"
)

var (
	platform   = flag.String("platform", "", "EGL platform ("+strings.Join(egl.PlatformNames(), ", ")+").")
	configPath = flag.String("config", "", "settings file (.toml, .yaml or .yml).")
	cacheRoot  = flag.String("cache", "", "shader cache root directory (default: the user cache directory).")
	noCache    = flag.Bool("nocache", false, "disable the shader cache.")
	logLevel   = flag.String("log", "", "log level (debug, info, warn, error).")
)

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "eglinfo: %v\n", err)
		os.Exit(1)
	}
}

func mainErr(w io.Writer) error {
	if flag.NArg() > 0 {
		return errors.New("unexpected arguments")
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	m, err := egl.NewManager(libegl.Open(), settings)
	if err != nil {
		return err
	}
	defer m.Release()
	if err := m.Initialize(0); err != nil {
		return err
	}
	printInfo(w, m)
	id, err := m.NativeVisualID(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "native visual id: 0x%x\n", id)
	return nil
}

func loadSettings() (egl.Settings, error) {
	settings := egl.DefaultSettings()
	if *configPath != "" {
		var err error
		settings, err = egl.LoadSettings(*configPath)
		if err != nil {
			return egl.Settings{}, err
		}
	}
	if *platform != "" {
		settings.Platform = *platform
	}
	if *cacheRoot != "" {
		settings.ShaderCacheRoot = *cacheRoot
	}
	if *noCache {
		settings.DisableShaderCache = true
	}
	if *logLevel != "" {
		settings.LogLevel = *logLevel
	}
	return settings, nil
}

func printInfo(w io.Writer, m *egl.Manager) {
	fmt.Fprintf(w, "platform: %s\n", m.Platform().Name)
	fmt.Fprintf(w, "EGL version: %s\n", m.Version())
	dir := m.ShaderCacheDir()
	if dir == "" {
		dir = "(disabled)"
	}
	fmt.Fprintf(w, "shader cache: %s\n", dir)
	fmt.Fprintln(w, "client extensions:")
	for _, ext := range m.ClientExtensions() {
		fmt.Fprintf(w, "\t%s\n", ext)
	}
}

const mainUsage = `The eglinfo command initializes EGL for a platform and prints the
driver version, client extensions, shader cache directory and the native
visual of the default display.

Usage:

	eglinfo [flags]

`
