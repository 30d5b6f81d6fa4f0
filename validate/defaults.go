package validate

import "github.com/serverless/stream-functions/function"

// validateWindowConfig is the default window-parameter range check. The
// window length is given either as a count or as a duration, and the sliding
// interval must be of the same kind and no larger than the length.
func validateWindowConfig(windowConfig *function.WindowConfig) error {
	count := windowConfig.WindowLengthCount
	duration := windowConfig.WindowLengthDurationMs

	if count == nil && duration == nil {
		return &function.ErrInvalidConfiguration{Message: "Window length is not specified"}
	}
	if count != nil && duration != nil {
		return &function.ErrInvalidConfiguration{Message: "Window length for time and count are set; only one is allowed"}
	}
	if count != nil && *count <= 0 {
		return &function.ErrInvalidConfiguration{Message: "Window length must be positive"}
	}
	if duration != nil && *duration <= 0 {
		return &function.ErrInvalidConfiguration{Message: "Window length must be positive"}
	}

	if windowConfig.SlidingIntervalCount != nil {
		if count == nil {
			return &function.ErrInvalidConfiguration{Message: "Window length and sliding interval must be of the same type"}
		}
		if *windowConfig.SlidingIntervalCount <= 0 || *windowConfig.SlidingIntervalCount > *count {
			return &function.ErrInvalidConfiguration{Message: "Sliding interval must be positive and no larger than the window length"}
		}
	}
	if windowConfig.SlidingIntervalDurationMs != nil {
		if duration == nil {
			return &function.ErrInvalidConfiguration{Message: "Window length and sliding interval must be of the same type"}
		}
		if *windowConfig.SlidingIntervalDurationMs <= 0 || *windowConfig.SlidingIntervalDurationMs > *duration {
			return &function.ErrInvalidConfiguration{Message: "Sliding interval must be positive and no larger than the window length"}
		}
	}

	return nil
}

// validateResources is the default resource-limit range check.
func validateResources(resources *function.Resources) error {
	if resources.CPU <= 0 {
		return &function.ErrInvalidConfiguration{Message: "CPU request must be positive"}
	}
	if resources.RAM <= 0 {
		return &function.ErrInvalidConfiguration{Message: "RAM request must be positive"}
	}
	if resources.Disk < 0 {
		return &function.ErrInvalidConfiguration{Message: "Disk request cannot be negative"}
	}
	return nil
}
