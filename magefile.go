//go:build mage
// +build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
	"github.com/mattn/go-shellwords"
	"github.com/mattn/go-zglob"
)

var Default = Test

func init() {
	os.Setenv("GO111MODULE", "on")
}

func runVWithArgs(cmd string, args ...string) error {
	envArgs, err := shellwords.Parse(os.Getenv("ARGS"))
	if err != nil {
		return err
	}
	return sh.RunV(cmd, append(args, envArgs...)...)
}

func sources() ([]string, error) {
	files, err := zglob.Glob("./**/*.go")
	if err != nil {
		return nil, err
	}
	result := []string{}
	for _, file := range files {
		if ok, err := zglob.Match("./_*/**", file); ok || err != nil {
			continue
		}
		result = append(result, file)
	}
	return result, nil
}

// Format code
func Fmt() error {
	files, err := sources()
	if err != nil {
		return err
	}
	return sh.RunV("goimports", append([]string{"-w"}, files...)...)
}

// Check coding style
func Lint() error {
	return sh.RunV("golangci-lint", "run")
}

// Run test
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Run test with coverage report (coverage.out)
func Cover() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Run program (arguments are given by ARGS)
func Run() error {
	return runVWithArgs("go", "run", ".")
}

// Build binary
func Build() error {
	version, err := sh.Output("git", "describe", "--tags", "--always")
	if err != nil {
		version = "unknown"
	}
	return sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", "grin", ".")
}
