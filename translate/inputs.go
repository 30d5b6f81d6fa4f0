package translate

import (
	"github.com/serverless/stream-functions/descriptor"
	"github.com/serverless/stream-functions/function"
)

// CollectInputTopics returns every topic the config references as input,
// across all five declaration forms. The regex pattern counts as one entry.
// Duplicates are kept; validation only needs membership and non-emptiness.
func CollectInputTopics(config *function.Config) []string {
	topics := []string{}
	topics = append(topics, config.Inputs...)
	if config.TopicsPattern != "" {
		topics = append(topics, config.TopicsPattern)
	}
	for topic := range config.CustomSerdeInputs {
		topics = append(topics, topic)
	}
	for topic := range config.CustomSchemaInputs {
		topics = append(topics, topic)
	}
	for topic := range config.InputSpecs {
		topics = append(topics, topic)
	}
	return topics
}

// buildInputSpecs normalizes all input declaration forms into the descriptor's
// topic to consumer-spec map. When several forms name the same topic, later
// forms overwrite earlier ones in declaration order: plain inputs, pattern,
// custom serde, custom schema, full specs.
func buildInputSpecs(config *function.Config) map[string]descriptor.ConsumerSpec {
	specs := map[string]descriptor.ConsumerSpec{}

	for _, topic := range config.Inputs {
		specs[topic] = descriptor.ConsumerSpec{}
	}
	if config.TopicsPattern != "" {
		specs[config.TopicsPattern] = descriptor.ConsumerSpec{IsRegexPattern: true}
	}
	for topic, serdeClassName := range config.CustomSerdeInputs {
		specs[topic] = descriptor.ConsumerSpec{SerdeClassName: serdeClassName}
	}
	for topic, schemaType := range config.CustomSchemaInputs {
		specs[topic] = descriptor.ConsumerSpec{SchemaType: schemaType}
	}
	for topic, conf := range config.InputSpecs {
		spec := descriptor.ConsumerSpec{IsRegexPattern: conf.IsRegexPattern}
		// Translation is permissive about an entry carrying both: schema type
		// wins here, and validation rejects the combination.
		if conf.SchemaType != "" {
			spec.SchemaType = conf.SchemaType
		} else if conf.SerdeClassName != "" {
			spec.SerdeClassName = conf.SerdeClassName
		}
		specs[topic] = spec
	}

	return specs
}
