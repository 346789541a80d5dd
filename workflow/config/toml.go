package config

import (
	"io"
	"reflect"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"

	"github.com/dorafactory/maci-demo/config"
)

// WriteTOML encodes the given config into TOML and writes it to the given io.Writer.
// Keys are taken from the mapstructure tags.
func WriteTOML(w io.Writer, cfg interface{}) error {
	mapped, err := structToMap(cfg)
	if err != nil {
		return err
	}

	return toml.NewEncoder(w).Encode(mapped)
}

func structToMap(cfg interface{}) (map[string]interface{}, error) {
	mapped := make(map[string]interface{})

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &mapped})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(cfg); err != nil {
		return nil, err
	}

	for k, v := range mapped {
		converted, err := convertValue(v)
		if err != nil {
			return nil, err
		}
		mapped[k] = converted
	}

	return mapped, nil
}

// convertValue turns nested structs into maps and durations and networks into strings
func convertValue(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}

	switch d := v.(type) {
	case time.Duration:
		return d.String(), nil
	case config.Network:
		return d.String(), nil
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Struct:
		return structToMap(v)
	case reflect.Slice:
		result := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			converted, err := convertValue(val.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			result[i] = converted
		}
		return result, nil
	case reflect.Map:
		result := make(map[string]interface{})
		for iter := val.MapRange(); iter.Next(); {
			converted, err := convertValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			result[iter.Key().String()] = converted
		}
		return result, nil
	default:
		return v, nil
	}
}
