// Package translate maps between the user-facing function config and the
// canonical descriptor submitted to the runtime. Both directions are total
// structural mappings: they never reject a well-formed record and rely on the
// validate package having gated semantic correctness beforehand.
package translate

import (
	"encoding/json"

	"github.com/jinzhu/copier"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/descriptor"
	"github.com/serverless/stream-functions/function"
)

// ToDetails builds the canonical descriptor for a config. typeArgs carries the
// function's resolved generic types when the runtime supports introspection
// (Java); pass nil otherwise.
func ToDetails(config *function.Config, typeArgs *artifact.TypeArguments) (*descriptor.FunctionDetails, error) {
	details := &descriptor.FunctionDetails{
		Tenant:               config.Tenant,
		Namespace:            config.Namespace,
		Name:                 config.Name,
		LogTopic:             config.LogTopic,
		Runtime:              config.Runtime,
		ProcessingGuarantees: config.ProcessingGuarantees,
		AutoAck:              config.AutoAck,
		Parallelism:          config.Parallelism,
	}

	source := descriptor.SourceSpec{
		InputSpecs:       buildInputSpecs(config),
		SubscriptionType: descriptor.DeriveSubscriptionType(config.RetainOrdering, config.ProcessingGuarantees),
	}
	if config.SubName != "" {
		source.SubscriptionName = config.SubName
	}
	if config.TimeoutMs != nil {
		timeout := *config.TimeoutMs
		source.TimeoutMs = &timeout
	}
	if typeArgs != nil {
		source.TypeClassName = typeArgs.Input
	}
	details.Source = source

	sink := descriptor.SinkSpec{
		Topic:          config.Output,
		SerdeClassName: config.OutputSerdeClassName,
		SchemaType:     config.OutputSchemaType,
	}
	if typeArgs != nil {
		sink.TypeClassName = typeArgs.Output
	}
	details.Sink = sink

	if config.MaxMessageRetries >= 0 {
		retry := &descriptor.RetryDetails{MaxMessageRetries: config.MaxMessageRetries}
		if config.DeadLetterTopic != "" {
			retry.DeadLetterTopic = config.DeadLetterTopic
		}
		details.RetryDetails = retry
	}

	configs := map[string]interface{}{}
	for key, value := range config.UserConfig {
		configs[key] = value
	}

	if config.WindowConfig != nil {
		// The window executor wraps the user's class; the original class name
		// rides along inside the window block.
		stashWindowConfig(configs, config.WindowConfig, config.ClassName)
		details.ClassName = function.WindowFunctionExecutorClassName
	} else {
		details.ClassName = config.ClassName
	}

	if len(configs) > 0 {
		serialized, err := json.Marshal(configs)
		if err != nil {
			return nil, err
		}
		details.UserConfig = string(serialized)
	}

	if config.Resources != nil {
		resources := &descriptor.Resources{}
		copier.Copy(resources, config.Resources)
		details.Resources = resources
	}

	return details, nil
}

// FromDetails reconstructs a config from a descriptor, for display or editing.
// All input topics come back in the full consumer-spec form: the descriptor
// cannot distinguish which of the legacy declaration forms produced them.
// Ordering and processing guarantee come back from the subscription mode, so
// an original at-most-once guarantee reads back as at-least-once.
func FromDetails(details *descriptor.FunctionDetails) (*function.Config, error) {
	config := function.NewConfig()
	config.Tenant = details.Tenant
	config.Namespace = details.Namespace
	config.Name = details.Name
	config.Runtime = details.Runtime
	config.Parallelism = details.Parallelism
	config.AutoAck = details.AutoAck

	if len(details.Source.InputSpecs) > 0 {
		inputSpecs := map[string]function.ConsumerConfig{}
		for topic, spec := range details.Source.InputSpecs {
			conf := function.ConsumerConfig{}
			copier.Copy(&conf, &spec)
			inputSpecs[topic] = conf
		}
		config.InputSpecs = inputSpecs
	}
	if details.Source.SubscriptionName != "" {
		config.SubName = details.Source.SubscriptionName
	}
	config.RetainOrdering, config.ProcessingGuarantees = details.Source.SubscriptionType.Reconstruct()
	if details.Source.TimeoutMs != nil {
		timeout := *details.Source.TimeoutMs
		config.TimeoutMs = &timeout
	}

	config.Output = details.Sink.Topic
	config.OutputSerdeClassName = details.Sink.SerdeClassName
	config.OutputSchemaType = details.Sink.SchemaType
	config.LogTopic = details.LogTopic

	if details.RetryDetails != nil {
		config.MaxMessageRetries = details.RetryDetails.MaxMessageRetries
		config.DeadLetterTopic = details.RetryDetails.DeadLetterTopic
	}

	userConfig, windowConfig, err := extractWindowConfig(details.UserConfig)
	if err != nil {
		return nil, err
	}
	if windowConfig != nil {
		config.ClassName = windowConfig.ActualWindowFunctionClassName
		config.WindowConfig = windowConfig
	} else {
		config.ClassName = details.ClassName
	}
	if len(userConfig) > 0 {
		config.UserConfig = userConfig
	}

	if details.Resources != nil {
		resources := &function.Resources{}
		copier.Copy(resources, details.Resources)
		config.Resources = resources
	}

	return config, nil
}
