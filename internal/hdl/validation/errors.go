package validation

import "errors"

var IdentifierIsRequired = errors.New("identifier is required")
var IdentifierIsTooLong = errors.New("identifier is too long")

var ItemNameIsRequired = errors.New("item name is required")
var QueryIsRequired = errors.New("query is required")
var AppNameIsRequired = errors.New("app name is required")
var AppIDIsInvalid = errors.New("app_id must be a positive integer")
var ContextIDIsInvalid = errors.New("context_id must be numeric")
