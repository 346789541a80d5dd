package config

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/dorafactory/maci-demo/config"
)

func stringToNetwork(
	f reflect.Type,
	t reflect.Type,
	data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}

	if t != reflect.TypeOf(config.Network("")) {
		return data, nil
	}

	name, err := cast.ToStringE(data)
	if err != nil {
		return nil, err
	}

	return config.ParseNetwork(name)
}

// AddDecodeHooks adds decode hooks to the given config to correctly translate strings into networks
func AddDecodeHooks(cfg *mapstructure.DecoderConfig) {
	hooks := []mapstructure.DecodeHookFunc{
		stringToNetwork,
	}
	if cfg.DecodeHook != nil {
		hooks = append(hooks, cfg.DecodeHook)
	}

	cfg.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
}

// ReplaceSlices makes configured lists replace the default lists instead of being merged into them element by element
func ReplaceSlices(cfg *mapstructure.DecoderConfig) {
	cfg.ZeroFields = true
}

// Unmarshal decodes the settings of v on top of the default config
func Unmarshal(v *viper.Viper) (Config, error) {
	conf := DefaultConfig()
	if err := v.Unmarshal(&conf, AddDecodeHooks, ReplaceSlices); err != nil {
		return Config{}, err
	}

	return conf, nil
}
