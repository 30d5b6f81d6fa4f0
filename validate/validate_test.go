package validate_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/serverless/stream-functions/artifact"
	"github.com/serverless/stream-functions/function"
	"github.com/serverless/stream-functions/mock"
	"github.com/serverless/stream-functions/validate"
)

const packageURL = "http://example.com/word-count.jar"

func javaConfig() *function.Config {
	config := function.NewConfig()
	config.Tenant = "t"
	config.Namespace = "ns"
	config.Name = "f"
	config.ClassName = "com.x.F"
	config.Runtime = function.RuntimeJava
	config.Inputs = []string{"persistent://t/ns/in"}
	config.Output = "persistent://t/ns/out"
	config.ProcessingGuarantees = function.AtLeastOnce
	return config
}

func pythonConfig() *function.Config {
	config := javaConfig()
	config.Runtime = function.RuntimePython
	config.ClassName = "word_count.WordCount"
	return config
}

func setup(ctrl *gomock.Controller) (*validate.Validator, *mock.MockLoader, *mock.MockTypeValidator) {
	loader := mock.NewMockLoader(ctrl)
	types := mock.NewMockTypeValidator(ctrl)
	return validate.New(loader, types, zap.NewNop()), loader, types
}

func TestValidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: artifact.VoidType}, nil)

	returned, err := validator.Validate(javaConfig(), packageURL, "")

	assert.Nil(t, err)
	assert.Equal(t, handle, returned)
}

func TestValidate_SerdeAndSchemaChecked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, types := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: "java.lang.Integer"}, nil)
	types.EXPECT().ValidateSerde("com.x.Serde", "java.lang.String", handle, true).Return(nil)
	types.EXPECT().ValidateSchema("json", "java.lang.Integer", handle, false).Return(nil)

	config := javaConfig()
	config.CustomSerdeInputs = map[string]string{"persistent://t/ns/custom": "com.x.Serde"}
	config.OutputSchemaType = "json"

	_, err := validator.Validate(config, packageURL, "")

	assert.Nil(t, err)
}

func TestValidate_OutputChecksSkippedForVoid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: artifact.VoidType}, nil)

	// both set would be rejected for a non-void output
	config := javaConfig()
	config.OutputSchemaType = "json"
	config.OutputSerdeClassName = "com.x.Serde"

	_, err := validator.Validate(config, packageURL, "")

	assert.Nil(t, err)
}

func TestValidate_OutputSchemaAndSerdeBothSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: "java.lang.Integer"}, nil)
	handle.EXPECT().Close().Return(nil)

	config := javaConfig()
	config.OutputSchemaType = "json"
	config.OutputSerdeClassName = "com.x.Serde"

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Only one of outputSchemaType or outputSerdeClassName should be set"}, err)
}

func TestValidate_ConsumerSpecBothSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: artifact.VoidType}, nil)
	handle.EXPECT().Close().Return(nil)

	config := javaConfig()
	config.InputSpecs = map[string]function.ConsumerConfig{
		"persistent://t/ns/both": {SchemaType: "json", SerdeClassName: "com.x.Serde"},
	}

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Only one of schemaType or serdeClassName should be set in inputSpec"}, err)
}

func TestValidate_EmptyConsumerSpecIsLegal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(&artifact.TypeArguments{Input: "java.lang.String", Output: artifact.VoidType}, nil)

	// neither schema nor serde set falls through to the default schema
	config := javaConfig()
	config.InputSpecs = map[string]function.ConsumerConfig{"persistent://t/ns/plain": {}}

	_, err := validator.Validate(config, packageURL, "")

	assert.Nil(t, err)
}

func TestValidate_PackageNotProvided(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	_, err := validator.Validate(javaConfig(), "", "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Function package is not provided"}, err)
}

func TestValidate_CorruptPackage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	loader.EXPECT().Load(packageURL).Return(nil, &function.ErrArtifact{Message: "corrupted package"})

	_, err := validator.Validate(javaConfig(), packageURL, "")

	assert.IsType(t, &function.ErrArtifact{}, err)
}

func TestValidate_UnresolvableTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, loader, _ := setup(ctrl)

	handle := mock.NewMockHandle(ctrl)
	loader.EXPECT().Load(packageURL).Return(handle, nil)
	loader.EXPECT().FunctionTypes(handle).Return(nil, &function.ErrArtifact{Message: "no input type"})
	handle.EXPECT().Close().Return(nil)

	_, err := validator.Validate(javaConfig(), packageURL, "")

	assert.IsType(t, &function.ErrArtifact{}, err)
}

func TestValidate_NoInputs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Inputs = nil

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "No input topic(s) specified for the function"}, err)
}

func TestValidate_TopicClash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Output = "persistent://t/ns/in"

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{
		Message: "Output topic persistent://t/ns/in is also being used as an input topic (topics must be one or the other)",
	}, err)
}

func TestValidate_ParallelismZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Parallelism = 0

	_, err := validator.Validate(config, packageURL, "")

	assert.IsType(t, &function.ErrInvalidConfiguration{}, err)
}

func TestValidate_MissingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Tenant = ""

	_, err := validator.Validate(config, packageURL, "")

	assert.IsType(t, &function.ErrInvalidConfiguration{}, err)
}

func TestValidate_RetriesWithEffectivelyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.ProcessingGuarantees = function.EffectivelyOnce
	config.MaxMessageRetries = 3

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "MaxMessageRetries and effectively-once processing guarantees are mutually exclusive"}, err)
}

func TestValidate_DeadLetterWithoutRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.MaxMessageRetries = -1
	config.DeadLetterTopic = "persistent://t/ns/dead"

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Dead letter topic specified, however max retries is set to infinity"}, err)
}

func TestValidate_TimeoutRequiresAtLeastOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	timeout := int64(1000)
	config := javaConfig()
	config.ProcessingGuarantees = function.AtMostOnce
	config.TimeoutMs = &timeout

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{
		Message: "Message timeout can only be specified with processing guarantee " + string(function.AtLeastOnce),
	}, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	timeout := int64(-1)
	config := javaConfig()
	config.TimeoutMs = &timeout

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Function timeout must be a positive number"}, err)
}

func TestValidate_WindowingForbidsAutoAck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	count := 10
	config := javaConfig()
	config.AutoAck = true
	config.WindowConfig = &function.WindowConfig{WindowLengthCount: &count}

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Cannot enable auto ack when using windowing functionality"}, err)
}

func TestValidate_WindowLengthMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.WindowConfig = &function.WindowConfig{}

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Window length is not specified"}, err)
}

func TestValidate_NegativeResources(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Resources = &function.Resources{CPU: -1, RAM: 1024}

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "CPU request must be positive"}, err)
}

func TestValidate_PythonEffectivelyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := pythonConfig()
	config.ProcessingGuarantees = function.EffectivelyOnce

	_, err := validator.Validate(config, "", "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Effectively-once processing guarantees are not supported by the PYTHON runtime"}, err)
}

func TestValidate_PythonWindowing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	count := 10
	config := pythonConfig()
	config.WindowConfig = &function.WindowConfig{WindowLengthCount: &count}

	_, err := validator.Validate(config, "", "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Windowing is not supported by the PYTHON runtime"}, err)
}

func TestValidate_PythonRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := pythonConfig()
	config.MaxMessageRetries = 3

	_, err := validator.Validate(config, "", "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Message retries are not supported by the PYTHON runtime"}, err)
}

func TestValidate_PythonReturnsNoHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	handle, err := validator.Validate(pythonConfig(), "", "")

	assert.Nil(t, err)
	assert.Nil(t, handle)
}

func TestValidate_GoRuntimeRestricted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	count := 10
	config := pythonConfig()
	config.Runtime = function.RuntimeGo
	config.WindowConfig = &function.WindowConfig{WindowLengthCount: &count}

	_, err := validator.Validate(config, "", "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "Windowing is not supported by the GO runtime"}, err)
}

func TestValidate_UnknownRuntime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	validator, _, _ := setup(ctrl)

	config := javaConfig()
	config.Runtime = function.Runtime("RUST")

	_, err := validator.Validate(config, packageURL, "")

	assert.Equal(t, &function.ErrInvalidConfiguration{Message: "runtime RUST is not supported"}, err)
}
