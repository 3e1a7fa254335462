package material

import "errors"

var (
	ErrMaterialNotFound  = errors.New("material not found")
	ErrInsufficientStock = errors.New("quantity used exceeds current stock")
)
