// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

// Package main holds the mage targets for registrar.
//
// Usage:
//
//	mage build       Compile registrar to bin/
//	mage test:all    Run every test
//	mage test:unit   Run tests in short mode
//	mage test:cover  Write coverage.out and print per-function coverage
//	mage lint        Run golangci-lint
//	mage clean       Remove build artifacts
//	mage install     Install registrar to GOPATH/bin
//	mage stats       Print Go line counts per package
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "registrar"
	binaryDir  = "bin"
	cmdDir     = "./cmd/registrar"
)

// ldflags stamps the version from `git describe` when it is available.
func ldflags() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(v) == "" {
		return ""
	}
	return "-X main.version=" + strings.TrimSpace(v)
}

// Build compiles the registrar binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
