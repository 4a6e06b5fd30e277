//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// Runs every package test.
func (Test) All() error {
	if _, err := executeCmd("go", withArgs("test", "./..."), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs the tests that need neither a window nor a GPU.
func (Test) Unit() error {
	packages := []string{
		"./engine/core/...",
		"./engine/math/...",
		"./engine/assets/...",
		"./engine/renderer/...",
		"./testbed/...",
	}
	args := append([]string{"test", "-count=1"}, packages...)
	if _, err := executeCmd("go", withArgs(args...), withStream()); err != nil {
		return err
	}
	return nil
}
