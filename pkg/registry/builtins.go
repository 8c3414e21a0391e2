package registry

import (
	"fmt"
	"regexp"

	"github.com/aretw0/formtree/pkg/validators"
	"github.com/mitchellh/mapstructure"
)

type requiredArgs struct {
	Message string `mapstructure:"message"`
}

type oneOfArgs struct {
	Values  []any  `mapstructure:"values"`
	Message string `mapstructure:"message"`
}

type matchesArgs struct {
	Pattern string `mapstructure:"pattern"`
	Message string `mapstructure:"message"`
}

type sanitizedArgs struct {
	Limit   int    `mapstructure:"limit"`
	Message string `mapstructure:"message"`
}

// messages turns an optional custom message into the variadic form the
// validators package takes.
func messages(message string) []any {
	if message == "" {
		return nil
	}
	return []any{message}
}

// DecodeArgs decodes definition arguments into out, rejecting unknown keys.
// Numbers and strings are converted loosely, since YAML and JSON documents
// disagree on numeric types.
func DecodeArgs(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(args)
}

func requiredFactory(args map[string]any) (validators.Validator, error) {
	var a requiredArgs
	if err := DecodeArgs(args, &a); err != nil {
		return nil, err
	}
	return validators.Required(messages(a.Message)...), nil
}

func oneOfFactory(args map[string]any) (validators.Validator, error) {
	var a oneOfArgs
	if err := DecodeArgs(args, &a); err != nil {
		return nil, err
	}
	if len(a.Values) == 0 {
		return nil, fmt.Errorf("values must list at least one value")
	}
	return validators.OneOf(a.Values, messages(a.Message)...), nil
}

func matchesFactory(args map[string]any) (validators.Validator, error) {
	var a matchesArgs
	if err := DecodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Pattern == "" {
		return nil, fmt.Errorf("pattern is required")
	}
	re, err := regexp.Compile(a.Pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern: %w", err)
	}
	return validators.Matches(re, messages(a.Message)...), nil
}

func sanitizedFactory(args map[string]any) (validators.Validator, error) {
	var a sanitizedArgs
	if err := DecodeArgs(args, &a); err != nil {
		return nil, err
	}
	return validators.Sanitized(a.Limit, messages(a.Message)...), nil
}
