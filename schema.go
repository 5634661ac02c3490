package llmagent

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/openai/openai-go"
)

func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	return reflector.Reflect(v)
}

// GenerateParameters reflects T into the function parameter object sent to
// the model, along with the names of its required properties. Fields tagged
// omitempty have defaults and are optional.
func GenerateParameters[T any]() (openai.FunctionParameters, []string) {
	schema := GenerateSchema[T]()

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("marshal schema for %T: %v", *new(T), err))
	}
	parameters := openai.FunctionParameters{}
	if err := json.Unmarshal(raw, &parameters); err != nil {
		panic(fmt.Sprintf("unmarshal schema for %T: %v", *new(T), err))
	}
	delete(parameters, "$schema")
	delete(parameters, "$id")
	if _, ok := parameters["properties"]; !ok {
		parameters["properties"] = map[string]any{}
	}

	required := append([]string{}, schema.Required...)
	parameters["required"] = required
	return parameters, required
}

// DecodeArguments copies the model-supplied argument map onto out using the
// struct's json tags. Numbers sent as strings and similar mismatches are
// coerced rather than rejected; keys the struct does not declare are an error.
func DecodeArguments(args map[string]any, out any) error {
	if len(args) == 0 {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
