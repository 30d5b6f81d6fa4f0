package artifact

import (
	"archive/zip"
	"bufio"
	"strings"

	"github.com/serverless/stream-functions/function"
)

// Manifest attribute names a function package declares its types and
// serialization support under.
const (
	manifestPath     = "META-INF/MANIFEST.MF"
	attrInputType    = "X-Function-Input-Type"
	attrOutputType   = "X-Function-Output-Type"
	attrSerdeClasses = "X-Function-Serde-Classes"
	attrSchemaTypes  = "X-Function-Schema-Types"
	filePrefix       = "file://"
)

// FileLoader opens function packages from the local filesystem. A package is
// a zip archive whose manifest declares the function's input and output types.
type FileLoader struct{}

// NewFileLoader creates a FileLoader.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load opens the package at the given locator. Only local paths and file://
// URLs are supported; fetching remote packages is the caller's concern.
func (l *FileLoader) Load(locator string) (Handle, error) {
	path := strings.TrimPrefix(locator, filePrefix)
	if IsPackageURLSupported(path) {
		return nil, &function.ErrArtifact{Message: "remote package " + locator + " cannot be opened locally"}
	}

	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, &function.ErrArtifact{Message: "corrupted package " + path, Original: err}
	}

	manifest, err := readManifest(reader)
	if err != nil {
		reader.Close()
		return nil, err
	}

	return &fileHandle{path: path, reader: reader, manifest: manifest}, nil
}

// FunctionTypes resolves the declared input and output types of an opened
// package. A package without a declared input type is unresolvable.
func (l *FileLoader) FunctionTypes(h Handle) (*TypeArguments, error) {
	fh, ok := h.(*fileHandle)
	if !ok {
		return nil, &function.ErrArtifact{Message: "handle was not opened by this loader"}
	}

	input := fh.manifest[attrInputType]
	if input == "" {
		return nil, &function.ErrArtifact{Message: "package " + fh.path + " does not declare an input type"}
	}

	output := fh.manifest[attrOutputType]
	if output == "" {
		output = VoidType
	}

	return &TypeArguments{Input: input, Output: output}, nil
}

// ValidateSerde checks that the named serde class is packaged in the handle's
// archive. The expected type and direction are recorded in the rejection only;
// structural compatibility beyond packaging is the runtime's concern.
func (l *FileLoader) ValidateSerde(serdeClassName string, typeArg string, h Handle, isInput bool) error {
	return l.validateDeclared(attrSerdeClasses, "serde class", serdeClassName, h)
}

// ValidateSchema checks that the named schema type is supported by the
// handle's archive or is one of the well-known builtin schema types.
func (l *FileLoader) ValidateSchema(schemaType string, typeArg string, h Handle, isInput bool) error {
	switch strings.ToLower(schemaType) {
	case "string", "json", "avro", "protobuf", "bytes":
		return nil
	}
	return l.validateDeclared(attrSchemaTypes, "schema type", schemaType, h)
}

func (l *FileLoader) validateDeclared(attr, kind, name string, h Handle) error {
	fh, ok := h.(*fileHandle)
	if !ok {
		return &function.ErrArtifact{Message: "handle was not opened by this loader"}
	}

	for _, declared := range strings.Split(fh.manifest[attr], ",") {
		if strings.TrimSpace(declared) == name {
			return nil
		}
	}
	return &function.ErrInvalidConfiguration{Message: kind + " " + name + " is not packaged in " + fh.path}
}

type fileHandle struct {
	path     string
	reader   *zip.ReadCloser
	manifest map[string]string
}

func (h *fileHandle) Location() string {
	return h.path
}

func (h *fileHandle) Close() error {
	return h.reader.Close()
}

func readManifest(reader *zip.ReadCloser) (map[string]string, error) {
	manifest := map[string]string{}

	for _, f := range reader.File {
		if f.Name != manifestPath {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, &function.ErrArtifact{Message: "unreadable manifest", Original: err}
		}
		defer rc.Close()

		scanner := bufio.NewScanner(rc)
		for scanner.Scan() {
			line := scanner.Text()
			idx := strings.Index(line, ":")
			if idx < 0 {
				continue
			}
			manifest[strings.TrimSpace(line[:idx])] = strings.TrimSpace(line[idx+1:])
		}
		break
	}

	return manifest, nil
}
