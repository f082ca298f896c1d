package main

import (
	"io"
	"os"
	"time"

	md2book "github.com/alnah/go-md2book"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now       func() time.Time
	Stdout    io.Writer
	Stderr    io.Writer
	Getenv    func(string) string
	Environ   func() []string
	Getwd     func() (string, error)
	LookPath  md2book.LookPathFunc
	Paginator md2book.Paginator // nil uses headless Chrome
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:      time.Now,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		Getwd:    os.Getwd,
		LookPath: md2book.DefaultLookPath,
	}
}
