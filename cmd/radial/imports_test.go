// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"testing"
)

// The overlay links cgo-only Vulkan and GLFW bindings, the headless presenter
// links goffi, which refuses cgo. One binary cannot carry both.
func TestOverlayDoesNotLinkHeadless(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatal(err)
	}
	fset := token.NewFileSet()
	for _, name := range files {
		f, err := parser.ParseFile(fset, name, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatal(err)
		}
		for _, imp := range f.Imports {
			path, _ := strconv.Unquote(imp.Path.Value)
			switch path {
			case "github.com/gogpu/radial/internal/headless", "github.com/gogpu/wgpu/hal/vulkan":
				t.Errorf("%s imports %s", name, path)
			}
		}
	}
}
