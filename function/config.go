package function

import (
	"go.uber.org/zap/zapcore"
)

// Runtime identifies the execution runtime of a function.
type Runtime string

// Supported runtimes.
const (
	RuntimeJava   Runtime = "JAVA"
	RuntimePython Runtime = "PYTHON"
	RuntimeGo     Runtime = "GO"
)

// ProcessingGuarantee is the delivery/acknowledgment strength a function is
// executed with.
type ProcessingGuarantee string

// Supported processing guarantees.
const (
	AtLeastOnce     ProcessingGuarantee = "ATLEAST_ONCE"
	AtMostOnce      ProcessingGuarantee = "ATMOST_ONCE"
	EffectivelyOnce ProcessingGuarantee = "EFFECTIVELY_ONCE"
)

// WindowConfigKey is the reserved user-config key under which windowing
// parameters are carried inside the descriptor's user-config bag.
const WindowConfigKey = "__WINDOW_CONFIG__"

// WindowFunctionExecutorClassName is the executor class that wraps a windowed
// function. A descriptor built from a windowed config always names it as the
// class to run.
const WindowFunctionExecutorClassName = "org.apache.pulsar.functions.windowing.WindowFunctionExecutor"

// Config is the user-authored declarative description of a stream-processing
// function. It is authored by the CLI/API layer and translated into a
// descriptor before submission to the runtime.
type Config struct {
	Tenant    string  `json:"tenant" yaml:"tenant" validate:"required"`
	Namespace string  `json:"namespace" yaml:"namespace" validate:"required"`
	Name      string  `json:"name" yaml:"name" validate:"required"`
	ClassName string  `json:"className" yaml:"className" validate:"required"`
	Runtime   Runtime `json:"runtime" yaml:"runtime" validate:"required"`

	// Input topics can be declared in five overlapping forms. The union of all
	// of them is the function's input set.
	Inputs             []string                  `json:"inputs,omitempty" yaml:"inputs"`
	TopicsPattern      string                    `json:"topicsPattern,omitempty" yaml:"topicsPattern"`
	CustomSerdeInputs  map[string]string         `json:"customSerdeInputs,omitempty" yaml:"customSerdeInputs"`
	CustomSchemaInputs map[string]string         `json:"customSchemaInputs,omitempty" yaml:"customSchemaInputs"`
	InputSpecs         map[string]ConsumerConfig `json:"inputSpecs,omitempty" yaml:"inputSpecs"`

	Output               string `json:"output,omitempty" yaml:"output" validate:"omitempty,topic"`
	OutputSerdeClassName string `json:"outputSerdeClassName,omitempty" yaml:"outputSerdeClassName"`
	OutputSchemaType     string `json:"outputSchemaType,omitempty" yaml:"outputSchemaType"`
	LogTopic             string `json:"logTopic,omitempty" yaml:"logTopic" validate:"omitempty,topic"`

	ProcessingGuarantees ProcessingGuarantee `json:"processingGuarantees,omitempty" yaml:"processingGuarantees"`
	RetainOrdering       bool                `json:"retainOrdering" yaml:"retainOrdering"`
	SubName              string              `json:"subName,omitempty" yaml:"subName"`
	TimeoutMs            *int64              `json:"timeoutMs,omitempty" yaml:"timeoutMs"`
	AutoAck              bool                `json:"autoAck" yaml:"autoAck"`

	// MaxMessageRetries below zero disables retries entirely.
	MaxMessageRetries int    `json:"maxMessageRetries" yaml:"maxMessageRetries"`
	DeadLetterTopic   string `json:"deadLetterTopic,omitempty" yaml:"deadLetterTopic" validate:"omitempty,topic"`

	Parallelism int        `json:"parallelism" yaml:"parallelism" validate:"gt=0"`
	Resources   *Resources `json:"resources,omitempty" yaml:"resources"`

	// Artifact locators. Jar for the Java runtime, Py for Python; either may
	// be a local path, a package URL, or a builtin:// name.
	Jar string `json:"jar,omitempty" yaml:"jar"`
	Py  string `json:"py,omitempty" yaml:"py"`

	UserConfig   map[string]interface{} `json:"userConfig,omitempty" yaml:"userConfig"`
	WindowConfig *WindowConfig          `json:"windowConfig,omitempty" yaml:"windowConfig"`
}

// NewConfig returns a Config with the field defaults expected by decoding
// layers: retries disabled and a single instance.
func NewConfig() *Config {
	return &Config{
		MaxMessageRetries: -1,
		Parallelism:       1,
	}
}

// ConsumerConfig holds per-input-topic consumer settings. At most one of
// SchemaType and SerdeClassName may be set; validation enforces this.
type ConsumerConfig struct {
	SchemaType     string `json:"schemaType,omitempty" yaml:"schemaType"`
	SerdeClassName string `json:"serdeClassName,omitempty" yaml:"serdeClassName"`
	IsRegexPattern bool   `json:"isRegexPattern" yaml:"isRegexPattern"`
}

// Resources are the per-instance resource limits of a function.
type Resources struct {
	CPU  float64 `json:"cpu" yaml:"cpu"`
	RAM  int64   `json:"ram" yaml:"ram"`
	Disk int64   `json:"disk" yaml:"disk"`
}

// WindowConfig configures the optional windowing layer wrapped around a
// function. ActualWindowFunctionClassName carries the user's class name while
// the descriptor's class name points at the window executor.
type WindowConfig struct {
	WindowLengthCount             *int   `json:"windowLengthCount,omitempty" yaml:"windowLengthCount"`
	WindowLengthDurationMs        *int64 `json:"windowLengthDurationMs,omitempty" yaml:"windowLengthDurationMs"`
	SlidingIntervalCount          *int   `json:"slidingIntervalCount,omitempty" yaml:"slidingIntervalCount"`
	SlidingIntervalDurationMs     *int64 `json:"slidingIntervalDurationMs,omitempty" yaml:"slidingIntervalDurationMs"`
	ActualWindowFunctionClassName string `json:"actualWindowFunctionClassName,omitempty" yaml:"actualWindowFunctionClassName"`
}

// MarshalLogObject is a part of zapcore.ObjectMarshaler interface
func (c Config) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("tenant", c.Tenant)
	enc.AddString("namespace", c.Namespace)
	enc.AddString("name", c.Name)
	enc.AddString("className", c.ClassName)
	enc.AddString("runtime", string(c.Runtime))
	enc.AddInt("parallelism", c.Parallelism)
	if c.Output != "" {
		enc.AddString("output", c.Output)
	}

	return nil
}
