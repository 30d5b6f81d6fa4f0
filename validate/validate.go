// Package validate gates function configs before they are translated and
// submitted to the runtime. Validation runs in three stages: common checks
// for every runtime, runtime-specific checks dispatched through a capability
// table, and (for the Java runtime) resolution of the function package, whose
// handle is returned to the caller for reuse. The first violation aborts the
// whole pipeline.
package validate

import (
	"go.uber.org/zap"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/function"
	"github.com/serverless/stream-functions/internal/topics"
)

// TypeValidator checks that a named serde class or schema type exists in the
// function package and is compatible with the function's resolved type.
type TypeValidator interface {
	ValidateSerde(serdeClassName string, typeArg string, h artifact.Handle, isInput bool) error
	ValidateSchema(schemaType string, typeArg string, h artifact.Handle, isInput bool) error
}

// Validator runs the validation pipeline. All collaborators are injected;
// New fills in the defaults.
type Validator struct {
	Loader            artifact.Loader
	Types             TypeValidator
	IsValidTopic      func(topic string) bool
	ValidateWindow    func(windowConfig *function.WindowConfig) error
	ValidateResources func(resources *function.Resources) error
	Log               *zap.Logger
}

// New creates a Validator with the default topic grammar and window/resource
// range checks.
func New(loader artifact.Loader, types TypeValidator, log *zap.Logger) *Validator {
	return &Validator{
		Loader:            loader,
		Types:             types,
		IsValidTopic:      topics.IsValid,
		ValidateWindow:    validateWindowConfig,
		ValidateResources: validateResources,
		Log:               log,
	}
}

// Validate runs the full pipeline over a config. For the Java runtime the
// function package is resolved from, in priority order, packageURL, the
// already-uploaded file, or the config's jar path, and the opened handle is
// returned for reuse; other runtimes return a nil handle. Closing the handle
// is the caller's responsibility.
func (v *Validator) Validate(config *function.Config, packageURL string, uploadedFile string) (artifact.Handle, error) {
	if err := v.commonChecks(config); err != nil {
		return nil, err
	}

	checker, ok := runtimeCheckers[config.Runtime]
	if !ok {
		return nil, &function.ErrInvalidConfiguration{Message: "runtime " + string(config.Runtime) + " is not supported"}
	}
	handle, err := checker(v, config, packageURL, uploadedFile)
	if err != nil {
		return nil, err
	}

	v.Log.Debug("Function config validated.", zap.Object("config", config))
	return handle, nil
}
