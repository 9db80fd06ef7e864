package main

import (
	"os"

	"golang.org/x/xerrors"
)

type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return "input " + e.Path + ": " + e.Err.Error()
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

func OpenInput(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &MissingInputError{Path: name, Err: err}
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &MissingInputError{Path: name, Err: xerrors.Errorf("stat: %w", err)}
	}
	if info.IsDir() {
		f.Close()
		return nil, &MissingInputError{Path: name, Err: xerrors.New("is a directory")}
	}
	return f, nil
}
