package mandala

import "errors"

// Element and attribute errors.
var (
	ErrInvalidRadiusRange          = errors.New("invalid radius range")
	ErrInvalidElementConfiguration = errors.New("invalid element configuration")
	ErrInvalidAttributes           = errors.New("invalid mandala attributes")
)
