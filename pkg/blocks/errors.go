package blocks

import "errors"

// Projection and catalog errors.
var (
	ErrRadiusNotDefined = errors.New("radius not defined")
	ErrCenterNotDefined = errors.New("center not defined")
	ErrGridSizeMismatch = errors.New("grid size does not match region")
	ErrGridConsumed     = errors.New("grid already drawn")
	ErrEmptyGrid        = errors.New("empty pixel grid")
	ErrNoMaterials      = errors.New("no materials supplied")
	ErrUnknownMaterial  = errors.New("unknown material")
)
