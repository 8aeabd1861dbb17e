//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

type Build mg.Namespace

// Builds geomtool into ./bin.
func (Build) Geomtool() error {
	return sh.RunV("go", "build", "-o", "bin/geomtool", "./cmd/geomtool")
}

// Builds with invariant assertions compiled out.
func (Build) Release() error {
	return sh.RunV("go", "build", "-tags", "geometry_noassert", "-o", "bin/geomtool", "./cmd/geomtool")
}

type Test mg.Namespace

// Runs the unit tests.
func (Test) Unit() error {
	return sh.RunV("go", "test", "./...")
}

// Runs the geometry tests with assertions disabled.
func (Test) NoAssert() error {
	return sh.RunV("go", "test", "-tags", "geometry_noassert", "./pkg/...")
}

// Runs the geometry tests under the race detector.
func (Test) Race() error {
	return sh.RunV("go", "test", "-race", "./pkg/...")
}

// Bakes the default shapes into ./baked.
func Bake() error {
	mg.Deps(Build.Geomtool)
	fmt.Println("Baking shapes...")
	return sh.RunV("bin/geomtool", "bake", "-out", "baked")
}
