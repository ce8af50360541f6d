package transforms

import (
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/travigo/formation/pkg/util"
	"gopkg.in/yaml.v3"
)

// TransformDefinition overrides string fields on any decoded record whose fields equal Match.
// Type optionally restricts it to one record type, for example ctdf.WagonAttribute.
type TransformDefinition struct {
	Type  string            `yaml:"type"`
	Match map[string]string `yaml:"match"`
	Data  map[string]string `yaml:"data"`
}

var (
	transforms      []*TransformDefinition
	transformsMutex sync.RWMutex
)

// SetupClient loads the definitions file named by TRAVIGO_FORMATION_TRANSFORMS, if any.
func SetupClient() error {
	path := util.GetEnvironmentVariable("TRAVIGO_FORMATION_TRANSFORMS", "")
	if path == "" {
		log.Debug().Msg("No formation transforms configured")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading transforms: %w", err)
	}

	if err := Load(data); err != nil {
		return err
	}

	log.Info().Str("path", path).Int("count", Count()).Msg("Loaded formation transforms")

	return nil
}

func Load(data []byte) error {
	var definitions []*TransformDefinition
	if err := yaml.Unmarshal(data, &definitions); err != nil {
		return fmt.Errorf("parsing transforms: %w", err)
	}

	transformsMutex.Lock()
	transforms = definitions
	transformsMutex.Unlock()

	return nil
}

func Count() int {
	transformsMutex.RLock()
	defer transformsMutex.RUnlock()

	return len(transforms)
}

func (t *TransformDefinition) Transform(inputValue reflect.Value) {
	if t.Type != "" && strings.TrimPrefix(inputValue.Type().String(), "*") != t.Type {
		return
	}

	for key, value := range t.Match {
		field := inputValue.FieldByName(key)
		if !field.IsValid() || fmt.Sprint(field.Interface()) != value {
			return
		}
	}

	for key, value := range t.Data {
		field := inputValue.FieldByName(key)
		if field.IsValid() && field.CanSet() && field.Kind() == reflect.String {
			field.SetString(value)
		}
	}
}

// Transform walks input through pointers, slices and exported struct fields, applying every
// loaded definition to each struct it reaches. Only addressable values are modified.
func Transform(input any) {
	transformsMutex.RLock()
	defer transformsMutex.RUnlock()

	if len(transforms) == 0 {
		return
	}

	transformValue(reflect.ValueOf(input))
}

func transformValue(value reflect.Value) {
	switch value.Kind() {
	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return
		}
		transformValue(value.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < value.Len(); i++ {
			transformValue(value.Index(i))
		}
	case reflect.Struct:
		for _, transformDef := range transforms {
			transformDef.Transform(value)
		}

		for i := 0; i < value.NumField(); i++ {
			if value.Type().Field(i).IsExported() {
				transformValue(value.Field(i))
			}
		}
	}
}
