package validate

import (
	"fmt"
	"os"
	"strings"

	validator "gopkg.in/go-playground/validator.v9"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/function"
	"github.com/serverless/stream-functions/translate"
)

// commonChecks enforces the runtime-independent invariants.
func (v *Validator) commonChecks(config *function.Config) error {
	validate := validator.New()
	validate.RegisterValidation("topic", v.topicValidator)
	if err := validate.Struct(config); err != nil {
		return &function.ErrInvalidConfiguration{Message: err.Error()}
	}

	allInputTopics := translate.CollectInputTopics(config)
	if len(allInputTopics) == 0 {
		return &function.ErrInvalidConfiguration{Message: "No input topic(s) specified for the function"}
	}
	for _, topic := range allInputTopics {
		if !v.IsValidTopic(topic) {
			return &function.ErrInvalidConfiguration{Message: fmt.Sprintf("Input topic %s is invalid", topic)}
		}
	}

	if config.Output != "" {
		if err := verifyNoTopicClash(allInputTopics, config.Output); err != nil {
			return err
		}
	}

	if config.WindowConfig != nil {
		// The windowing layer owns acknowledgment.
		if config.AutoAck {
			return &function.ErrInvalidConfiguration{Message: "Cannot enable auto ack when using windowing functionality"}
		}
		if err := v.ValidateWindow(config.WindowConfig); err != nil {
			return err
		}
	}

	if config.Resources != nil {
		if err := v.ValidateResources(config.Resources); err != nil {
			return err
		}
	}

	if config.TimeoutMs != nil {
		if *config.TimeoutMs <= 0 {
			return &function.ErrInvalidConfiguration{Message: "Function timeout must be a positive number"}
		}
		if config.ProcessingGuarantees != "" && config.ProcessingGuarantees != function.AtLeastOnce {
			return &function.ErrInvalidConfiguration{
				Message: "Message timeout can only be specified with processing guarantee " + string(function.AtLeastOnce),
			}
		}
	}

	if config.MaxMessageRetries >= 0 && config.ProcessingGuarantees == function.EffectivelyOnce {
		return &function.ErrInvalidConfiguration{Message: "MaxMessageRetries and effectively-once processing guarantees are mutually exclusive"}
	}
	if config.MaxMessageRetries < 0 && config.DeadLetterTopic != "" {
		return &function.ErrInvalidConfiguration{Message: "Dead letter topic specified, however max retries is set to infinity"}
	}

	if err := checkPackageFile(config.Jar, "jar"); err != nil {
		return err
	}
	return checkPackageFile(config.Py, "python")
}

func (v *Validator) topicValidator(fl validator.FieldLevel) bool {
	return v.IsValidTopic(fl.Field().String())
}

func verifyNoTopicClash(inputTopics []string, outputTopic string) error {
	for _, topic := range inputTopics {
		if topic == outputTopic {
			return &function.ErrInvalidConfiguration{
				Message: fmt.Sprintf("Output topic %s is also being used as an input topic (topics must be one or the other)", outputTopic),
			}
		}
	}
	return nil
}

// checkPackageFile requires a plain-path artifact locator to point at an
// existing file. URL and builtin locators are resolved elsewhere.
func checkPackageFile(locator, kind string) error {
	if locator == "" || artifact.IsPackageURLSupported(locator) || strings.HasPrefix(locator, artifact.BuiltinPrefix) {
		return nil
	}
	if _, err := os.Stat(locator); err != nil {
		return &function.ErrInvalidConfiguration{Message: fmt.Sprintf("The supplied %s file does not exist", kind)}
	}
	return nil
}
