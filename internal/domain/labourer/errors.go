package labourer

import "errors"

var (
	ErrLabourerNotFound = errors.New("labourer not found")
)
