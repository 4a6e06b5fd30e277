package core

import (
	"errors"
)

var (
	ErrAdapterUnavailable = errors.New("no suitable GPU adapter")
	ErrDeviceUnavailable  = errors.New("failed to create GPU device")
	ErrSurfaceAcquire     = errors.New("failed to acquire next swap chain texture")
	ErrTextureDecode      = errors.New("failed to decode texture")
	ErrInvalidMesh        = errors.New("invalid mesh")
	ErrInvalidCamera      = errors.New("invalid camera")
	ErrUnknown            = errors.New("unknown")
)
