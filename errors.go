package storeshots

import "errors"

var (
	// ErrTooFewStops is returned when a gradient has fewer than two color stops.
	ErrTooFewStops = errors.New("storeshots: gradient needs at least 2 color stops")

	// ErrInvalidSize is returned for a canvas with non-positive dimensions.
	ErrInvalidSize = errors.New("storeshots: canvas size must be positive")

	// ErrEmptyImage is returned when a source screenshot has zero area.
	ErrEmptyImage = errors.New("storeshots: source image is empty")

	// ErrFrameTooSmall is returned when the requested frame width leaves no
	// room for the screen after the bezels.
	ErrFrameTooSmall = errors.New("storeshots: frame width too small for bezels")

	// ErrUnknownDevice is returned for an unrecognized device kind.
	ErrUnknownDevice = errors.New("storeshots: unknown device kind")

	// ErrInvalidChartRegion is returned when a chart region has no area.
	ErrInvalidChartRegion = errors.New("storeshots: chart region must have positive width and height")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("storeshots: invalid hex color")

	// ErrTooFewSamples is returned when a curve is requested with fewer than two samples.
	ErrTooFewSamples = errors.New("storeshots: growth curve needs at least 2 samples")
)
