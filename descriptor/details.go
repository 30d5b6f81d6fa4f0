// Package descriptor defines the canonical function descriptor submitted to
// the execution runtime. It is produced from a user config by the translate
// package and is the runtime's contract; nothing here is user-authored.
package descriptor

import (
	"go.uber.org/zap/zapcore"

	"github.com/serverless/stream-functions/function"
)

// ConsumerSpec is the normalized per-input-topic consumer specification.
type ConsumerSpec struct {
	SchemaType     string `json:"schemaType,omitempty"`
	SerdeClassName string `json:"serdeClassName,omitempty"`
	IsRegexPattern bool   `json:"isRegexPattern"`
}

// SourceSpec describes the input side of a function.
type SourceSpec struct {
	InputSpecs       map[string]ConsumerSpec `json:"inputSpecs,omitempty"`
	SubscriptionType SubscriptionType        `json:"subscriptionType,omitempty"`
	SubscriptionName string                  `json:"subscriptionName,omitempty"`
	TimeoutMs        *int64                  `json:"timeoutMs,omitempty"`
	TypeClassName    string                  `json:"typeClassName,omitempty"`
}

// SinkSpec describes the output side of a function.
type SinkSpec struct {
	Topic          string `json:"topic,omitempty"`
	SerdeClassName string `json:"serdeClassName,omitempty"`
	SchemaType     string `json:"schemaType,omitempty"`
	TypeClassName  string `json:"typeClassName,omitempty"`
}

// RetryDetails is present only when message retries are configured.
type RetryDetails struct {
	MaxMessageRetries int    `json:"maxMessageRetries"`
	DeadLetterTopic   string `json:"deadLetterTopic,omitempty"`
}

// Resources are the per-instance resource limits carried by the descriptor.
type Resources struct {
	CPU  float64 `json:"cpu"`
	RAM  int64   `json:"ram"`
	Disk int64   `json:"disk"`
}

// FunctionDetails is the canonical descriptor of a function.
type FunctionDetails struct {
	Tenant               string                       `json:"tenant,omitempty"`
	Namespace            string                       `json:"namespace,omitempty"`
	Name                 string                       `json:"name,omitempty"`
	ClassName            string                       `json:"className,omitempty"`
	LogTopic             string                       `json:"logTopic,omitempty"`
	Runtime              function.Runtime             `json:"runtime,omitempty"`
	ProcessingGuarantees function.ProcessingGuarantee `json:"processingGuarantees,omitempty"`
	Source               SourceSpec                   `json:"source"`
	Sink                 SinkSpec                     `json:"sink"`
	RetryDetails         *RetryDetails                `json:"retryDetails,omitempty"`
	UserConfig           string                       `json:"userConfig,omitempty"`
	AutoAck              bool                         `json:"autoAck"`
	Parallelism          int                          `json:"parallelism"`
	Resources            *Resources                   `json:"resources,omitempty"`
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface
func (d FunctionDetails) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("tenant", d.Tenant)
	enc.AddString("namespace", d.Namespace)
	enc.AddString("name", d.Name)
	enc.AddString("className", d.ClassName)
	enc.AddString("runtime", string(d.Runtime))
	enc.AddString("subscriptionType", string(d.Source.SubscriptionType))
	enc.AddInt("parallelism", d.Parallelism)

	return nil
}
