package service

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrProjectNotFound = errors.New("project not found")

	ErrUserAlreadyExists = errors.New("user already exists")
	ErrWrongCredentials  = errors.New("wrong username or password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrValidation            = errors.New("validation failed")
)
