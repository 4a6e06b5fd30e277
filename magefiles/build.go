//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Tidies the module and downloads its dependencies.
func (Build) Deps() error {
	return goTidy()
}

// Builds the engine binary into bin/facet.
func (Build) Engine() error {
	mg.Deps(Build.Deps)
	if _, err := executeCmd("go", withArgs("build", "-o", "bin/facet", "."), withStream()); err != nil {
		return err
	}
	return nil
}
