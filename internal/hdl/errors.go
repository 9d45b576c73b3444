package hdl

import "errors"

var ErrInternal = errors.New("internal error")
var ErrDecodeRequest = errors.New("decode request")
var ErrMethodNotAllowed = errors.New("method not allowed")
var ErrPageNotFound = errors.New("page not found")
