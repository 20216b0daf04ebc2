package manifest

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.schema.json
var schemaFS embed.FS

// Schema names.
const (
	SchemaSkill  = "skill.schema.json"
	SchemaConfig = "skill-config.schema.json"
)

type compiled struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

var (
	schemas = map[string]*compiled{
		SchemaSkill:  {},
		SchemaConfig: {},
	}
	printer = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/answers/greet/0")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

// getSchema compiles an embedded JSON schema once and returns it.
func getSchema(name string) (*jsonschema.Schema, error) {
	entry, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q", name)
	}
	entry.once.Do(func() {
		raw, err := schemaFS.ReadFile("schema/" + name)
		if err != nil {
			entry.err = fmt.Errorf("reading schema %s: %w", name, err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			entry.err = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(name, doc); err != nil {
			entry.err = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		entry.schema, entry.err = c.Compile(name)
		if entry.err != nil {
			entry.err = fmt.Errorf("compiling schema: %w", entry.err)
		}
	})
	return entry.schema, entry.err
}

// ValidateSkill validates a skill manifest (JSON or YAML bytes).
func ValidateSkill(data []byte) (*ValidationResult, error) {
	return validate(SchemaSkill, data)
}

// ValidateConfig validates a skill config (JSON or YAML bytes).
func ValidateConfig(data []byte) (*ValidationResult, error) {
	return validate(SchemaConfig, data)
}

// ValidateFile reads a file and validates it against the named schema.
func ValidateFile(schemaName, path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return validate(schemaName, data)
}

// validate checks raw bytes against a schema. The error return is for I/O or
// schema compilation failures; validation issues are returned in the result.
func validate(schemaName string, data []byte) (*ValidationResult, error) {
	schema, err := getSchema(schemaName)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// JSON is valid YAML, so one decoder covers both formats. Tabs are not
	// valid YAML indentation, so JSON is tried first.
	var raw interface{}
	if jsonErr := json.Unmarshal(data, &raw); jsonErr != nil {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
	}

	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: extractIssues(validationErr),
	}, nil
}

// Summary renders a one-line count of issues, e.g. "2 issues".
func (r *ValidationResult) Summary() string {
	if len(r.Issues) == 1 {
		return "1 issue"
	}
	return printer.Sprintf("%d issues", len(r.Issues))
}

// extractIssues walks the ValidationError tree and returns leaf-level issues.
// For oneOf schemas (string-or-object templates), all branches are walked to
// collect specific errors rather than just "oneOf failed".
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{
			Message: ve.Error(),
		}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively walks the error tree to find leaf errors
// with specific property information.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		// Skip generic container errors that aren't informative.
		if keyword == "oneOf" || keyword == "anyOf" || keyword == "allOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{
			Path:    path,
			Message: msg,
			Keyword: keyword,
		})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues removes duplicate issues (same path + keyword + message).
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}
