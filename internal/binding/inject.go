package binding

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"go.uber.org/multierr"

	"github.com/oshokin/config-property/internal/logger"
	"github.com/oshokin/config-property/internal/property"
)

var (
	// ErrInvalidTarget is returned when Inject gets anything but a non-nil struct pointer.
	ErrInvalidTarget = errors.New("target must be a non-nil pointer to a struct")
	// ErrNilRegistry is returned when Inject gets no registry to resolve from.
	ErrNilRegistry = errors.New("registry is nil")
	// ErrUnsupportedField is returned for tagged fields that cannot receive a value.
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrConvert is returned when a raw value does not parse as the field type.
	ErrConvert = errors.New("cannot convert property value")
)

//nolint:gochecknoglobals // Type token compared against field types.
var durationType = reflect.TypeFor[time.Duration]()

// Inject sets every field of target tagged with `property:"name"` to the
// value bound to that name in r. Fields tagged `property:"name,optional"`
// keep their current value when the name is unbound. All failing fields
// are reported together.
func Inject(ctx context.Context, r *Registry, target any) error {
	if r == nil {
		return ErrNilRegistry
	}

	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}

	v = v.Elem()
	t := v.Type()

	var err error

	for i := range t.NumField() {
		field := t.Field(i)

		key, optional, ok := property.ParseTag(field.Tag)
		if !ok {
			continue
		}

		if !field.IsExported() {
			err = multierr.Append(err, fmt.Errorf("%w: %s.%s is unexported", ErrUnsupportedField, t.Name(), field.Name))

			continue
		}

		raw, lookupErr := r.Lookup(key)
		if lookupErr != nil {
			if optional && errors.Is(lookupErr, ErrNotBound) {
				continue
			}

			err = multierr.Append(err, fmt.Errorf("field %s: %w", field.Name, lookupErr))

			continue
		}

		if setErr := setField(v.Field(i), raw); setErr != nil {
			err = multierr.Append(err, fmt.Errorf("field %s (%s): %w", field.Name, key, setErr))

			continue
		}

		logger.DebugKV(ctx, "Property injected", "field", field.Name, "property", key.Value())
	}

	return err
}

// setField parses raw into the kind of field.
func setField(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConvert, err)
		}

		field.SetInt(int64(d))

		return nil
	}

	//nolint:exhaustive // Remaining kinds are unsupported.
	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConvert, err)
		}

		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConvert, err)
		}

		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConvert, err)
		}

		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrConvert, err)
		}

		field.SetFloat(f)
	default:
		return fmt.Errorf("%w: kind %s", ErrUnsupportedField, field.Kind())
	}

	return nil
}
