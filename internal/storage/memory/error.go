package memory

import "errors"

var ErrReferenceExists = errors.New("booking reference already exists")
