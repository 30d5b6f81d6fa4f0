package validate

import (
	"os"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/function"
)

type runtimeChecker func(v *Validator, config *function.Config, packageURL string, uploadedFile string) (artifact.Handle, error)

// runtimeCheckers dispatches the runtime-specific validation stage. Adding a
// runtime is an entry here, not a branch elsewhere. Runtimes without
// generic-type introspection share the capability-restricted checker.
var runtimeCheckers = map[function.Runtime]runtimeChecker{
	function.RuntimeJava:   javaChecks,
	function.RuntimePython: restrictedChecks,
	function.RuntimeGo:     restrictedChecks,
}

// javaChecks resolves the function package, introspects the function's
// generic types, and validates every declared serde and schema against them.
// The opened handle is returned for reuse on success and closed on failure.
func javaChecks(v *Validator, config *function.Config, packageURL string, uploadedFile string) (artifact.Handle, error) {
	handle, err := v.resolvePackage(config, packageURL, uploadedFile)
	if err != nil {
		return nil, err
	}

	typeArgs, err := v.Loader.FunctionTypes(handle)
	if err != nil {
		handle.Close()
		return nil, err
	}

	if err := javaInputChecks(v, config, typeArgs, handle); err != nil {
		handle.Close()
		return nil, err
	}
	if err := javaOutputChecks(v, config, typeArgs, handle); err != nil {
		handle.Close()
		return nil, err
	}

	return handle, nil
}

func javaInputChecks(v *Validator, config *function.Config, typeArgs *artifact.TypeArguments, handle artifact.Handle) error {
	// Plain input topics use the default schema; nothing to check for them.
	for _, serdeClassName := range config.CustomSerdeInputs {
		if err := v.Types.ValidateSerde(serdeClassName, typeArgs.Input, handle, true); err != nil {
			return err
		}
	}
	for _, schemaType := range config.CustomSchemaInputs {
		if err := v.Types.ValidateSchema(schemaType, typeArgs.Input, handle, true); err != nil {
			return err
		}
	}
	for _, conf := range config.InputSpecs {
		if conf.SchemaType != "" && conf.SerdeClassName != "" {
			return &function.ErrInvalidConfiguration{Message: "Only one of schemaType or serdeClassName should be set in inputSpec"}
		}
		if conf.SerdeClassName != "" {
			if err := v.Types.ValidateSerde(conf.SerdeClassName, typeArgs.Input, handle, true); err != nil {
				return err
			}
		}
		if conf.SchemaType != "" {
			if err := v.Types.ValidateSchema(conf.SchemaType, typeArgs.Input, handle, true); err != nil {
				return err
			}
		}
	}
	return nil
}

func javaOutputChecks(v *Validator, config *function.Config, typeArgs *artifact.TypeArguments, handle artifact.Handle) error {
	// A void output type means the function produces nothing; the output side
	// is skipped entirely.
	if typeArgs.Output == artifact.VoidType {
		return nil
	}

	if config.OutputSerdeClassName != "" && config.OutputSchemaType != "" {
		return &function.ErrInvalidConfiguration{Message: "Only one of outputSchemaType or outputSerdeClassName should be set"}
	}
	if config.OutputSchemaType != "" {
		if err := v.Types.ValidateSchema(config.OutputSchemaType, typeArgs.Output, handle, false); err != nil {
			return err
		}
	}
	if config.OutputSerdeClassName != "" {
		if err := v.Types.ValidateSerde(config.OutputSerdeClassName, typeArgs.Output, handle, false); err != nil {
			return err
		}
	}
	return nil
}

// restrictedChecks applies to runtimes that cannot introspect generic types.
// Capabilities that depend on runtime support fail fast instead of being
// silently ignored.
func restrictedChecks(_ *Validator, config *function.Config, _ string, _ string) (artifact.Handle, error) {
	runtime := string(config.Runtime)
	if config.ProcessingGuarantees == function.EffectivelyOnce {
		return nil, &function.ErrInvalidConfiguration{Message: "Effectively-once processing guarantees are not supported by the " + runtime + " runtime"}
	}
	if config.WindowConfig != nil {
		return nil, &function.ErrInvalidConfiguration{Message: "Windowing is not supported by the " + runtime + " runtime"}
	}
	if config.MaxMessageRetries >= 0 {
		return nil, &function.ErrInvalidConfiguration{Message: "Message retries are not supported by the " + runtime + " runtime"}
	}
	return nil, nil
}

// resolvePackage picks the function package in priority order: an explicit
// package URL, an already-uploaded local file, the config's jar path.
func (v *Validator) resolvePackage(config *function.Config, packageURL string, uploadedFile string) (artifact.Handle, error) {
	switch {
	case packageURL != "":
		return v.Loader.Load(packageURL)
	case uploadedFile != "":
		return v.Loader.Load(uploadedFile)
	case config.Jar != "":
		if _, err := os.Stat(config.Jar); err != nil {
			return nil, &function.ErrInvalidConfiguration{Message: "Jar file does not exist"}
		}
		return v.Loader.Load(config.Jar)
	default:
		return nil, &function.ErrInvalidConfiguration{Message: "Function package is not provided"}
	}
}
