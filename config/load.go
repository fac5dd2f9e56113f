package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load builds an AppConfig from a raw variable map. Absent optional keys get
// their defaults, present values are kept verbatim. All failures are returned
// together in a *ValidationError and the zero AppConfig is returned with it.
func Load(vars map[string]string) (AppConfig, error) {
	var cfg AppConfig

	err := env.ParseWithOptions(&cfg, env.Options{Environment: withDefaults(vars)})

	if err == nil {
		return cfg, nil
	}

	return AppConfig{}, translateError(err)
}

// LoadFromEnv loads the configuration from the process environment.
func LoadFromEnv() (AppConfig, error) {
	return Load(environMap(os.Environ()))
}

// LoadFile loads the configuration from a dotenv file without touching the
// process environment.
func LoadFile(path string) (AppConfig, error) {
	vars, err := godotenv.Read(path)

	if err != nil {
		return AppConfig{}, fmt.Errorf("read env file %s: %w", path, err)
	}

	return Load(vars)
}

// withDefaults copies vars and fills in defaults for absent keys only.
// envDefault tags would also replace present-but-empty values.
func withDefaults(vars map[string]string) map[string]string {
	result := make(map[string]string, len(vars)+len(defaults))

	for key, value := range vars {
		result[key] = value
	}

	for key, value := range defaults {
		if _, ok := result[key]; !ok {
			result[key] = value
		}
	}

	return result
}

func environMap(environ []string) map[string]string {
	result := make(map[string]string, len(environ))

	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")

		if !ok {
			continue
		}

		result[key] = value
	}

	return result
}

func translateError(err error) error {
	var aggregate env.AggregateError

	if !errors.As(err, &aggregate) {
		return fmt.Errorf("parse config: %w", err)
	}

	validationErr := &ValidationError{}

	for _, fieldErr := range flatten(aggregate.Errors) {
		validationErr.Fields = append(validationErr.Fields, toFieldError(fieldErr))
	}

	return validationErr
}

func flatten(errs []error) []error {
	result := make([]error, 0, len(errs))

	for _, err := range errs {
		var nested env.AggregateError

		if errors.As(err, &nested) {
			result = append(result, flatten(nested.Errors)...)
			continue
		}

		result = append(result, err)
	}

	return result
}

func toFieldError(err error) FieldError {
	var (
		notSet   env.EnvVarIsNotSetError
		empty    env.EmptyEnvVarError
		parseErr env.ParseError
	)

	switch {
	case errors.As(err, &notSet):
		return FieldError{Field: notSet.Key, Reason: ReasonMissing}
	case errors.As(err, &empty):
		return FieldError{Field: empty.Key, Reason: ReasonEmpty}
	case errors.As(err, &parseErr):
		return FieldError{Field: parseErr.Name, Reason: ReasonMalformed, Detail: parseErr.Error()}
	default:
		return FieldError{Field: UnknownField, Reason: ReasonMalformed, Detail: err.Error()}
	}
}
