package config

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", e.FilePath, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		if e.FilePath == "" {
			return fmt.Sprintf("field '%s': %s", e.Field, e.Message)
		}
		return fmt.Sprintf("%s: field '%s': %s", e.FilePath, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.FilePath, e.Message)
}

// ValidateJSONSyntax checks if data is syntactically valid JSON.
// Returns nil if valid, or a ValidationError with line/column information if invalid.
func ValidateJSONSyntax(data []byte, filePath string) error {
	var v interface{}
	err := stdjson.Unmarshal(data, &v)
	if err == nil {
		return nil
	}

	var syntaxErr *stdjson.SyntaxError
	if errors.As(err, &syntaxErr) {
		line, column := lineColumn(data, syntaxErr.Offset)
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  syntaxErr.Error(),
		}
	}
	return &ValidationError{FilePath: filePath, Message: err.Error()}
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (line, column int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	before := data[:offset]
	line = bytes.Count(before, []byte("\n")) + 1
	column = int(offset) - bytes.LastIndexByte(before, '\n')
	return line, column
}

// fieldError turns the first validator failure into a ValidationError naming
// the config key.
func fieldError(err error, filePath string) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &ValidationError{
		FilePath: filePath,
		Field:    configKey(fe.StructField()),
		Message:  ruleMessage(fe),
	}
}

var keysByField = map[string]string{
	"AppID":         "app_id",
	"Backend":       "backend",
	"ExpireTimeout": "expire_timeout",
	"LogLevel":      "log_level",
}

func configKey(structField string) string {
	if key, ok := keysByField[structField]; ok {
		return key
	}
	return strings.ToLower(structField)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "backend":
		return "must be one of: auto, native, beeep"
	case "min":
		return "must be at least " + fe.Param()
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
