package nwsaver

import (
	"fmt"

	"github.com/bodgit/nwsaver/container"
	"gopkg.in/yaml.v2"
)

const configFilename = "config.yaml"

type fieldType int

const (
	fieldString fieldType = iota
	fieldInt
	fieldStrings
	fieldInts
)

func (t fieldType) String() string {
	return [...]string{"a string", "an integer", "a list of strings", "a list of integers"}[t]
}

type schema map[string]fieldType

func isString(v interface{}) bool {
	_, ok := v.(string)
	return ok
}

func isInt(v interface{}) bool {
	_, ok := v.(int)
	return ok
}

func isList(v interface{}, elem func(interface{}) bool) bool {
	l, ok := v.([]interface{})
	if !ok {
		return false
	}
	for _, e := range l {
		if !elem(e) {
			return false
		}
	}
	return true
}

// check makes sure every field is present with the right type and that
// there are no unexpected fields. YAML will happily turn a number into a
// string so this is done on the raw document before decoding.
func (s schema) check(b []byte) error {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", container.ErrValidation, err)
	}

	for k := range raw {
		if _, ok := s[k]; !ok {
			return fmt.Errorf("%w: unexpected field %q", container.ErrValidation, k)
		}
	}

	for k, t := range s {
		v, ok := raw[k]
		if !ok {
			return fmt.Errorf("%w: missing field %q", container.ErrValidation, k)
		}

		switch t {
		case fieldString:
			ok = isString(v)
		case fieldInt:
			ok = isInt(v)
		case fieldStrings:
			ok = isList(v, isString)
		case fieldInts:
			ok = isList(v, isInt)
		}
		if !ok {
			return fmt.Errorf("%w: field %q must be %s", container.ErrValidation, k, t)
		}
	}

	return nil
}

type validator interface {
	Validate() error
}

// parseConfig decodes b into c. Any problem rejects the whole document.
func parseConfig(b []byte, s schema, c validator) error {
	if err := s.check(b); err != nil {
		return err
	}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return fmt.Errorf("%w: %v", container.ErrValidation, err)
	}
	return c.Validate()
}
