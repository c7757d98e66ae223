package logic

import "errors"

var (
	// ErrInputNotFound is returned when the input path does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrInputNotRegularFile is returned when the input path is a directory or a special file.
	ErrInputNotRegularFile = errors.New("input file is not a regular file")
	// ErrOutputExists is returned when the output path exists and overwriting was not requested.
	ErrOutputExists = errors.New("output file already exists, use --force to overwrite")
	// ErrIO is returned when reading the input or writing the output fails.
	ErrIO = errors.New("i/o failure")
)
