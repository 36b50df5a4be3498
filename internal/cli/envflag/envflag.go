// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package envflag provides a wrapper around the standard flag package, allowing
// flags to be overridden by environment variables.
//
// Flags are declared with [Value] and resolved with [Apply] after the flag set
// is parsed. A flag given on the command line always wins over the
// environment.
package envflag

import (
	"flag"
	"fmt"
	"strconv"
)

// Type is a constraint that permits only types supported by envflag package.
type Type interface {
	int | bool | string
}

// Value defines a flag with the given name, default value, and usage
// information that can be overridden by the environment variable envName.
func Value[T Type](fs *flag.FlagSet, name, envName string, value T, usage string) *T {
	v := &flagValue[T]{envName: envName, value: new(T)}
	*v.value = value
	fs.Var(v, name, usage+" Can be overridden by "+envName+" environment variable.")
	return v.value
}

// Apply sets every flag declared with [Value] that was not given on the command
// line from its environment variable, if that variable is non-empty.
func Apply(fs *flag.FlagSet, getenv func(string) string) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var err error
	fs.VisitAll(func(f *flag.Flag) {
		ev, ok := f.Value.(envVar)
		if !ok || set[f.Name] || err != nil {
			return
		}
		s := getenv(ev.EnvName())
		if s == "" {
			return
		}
		if serr := f.Value.Set(s); serr != nil {
			err = fmt.Errorf("invalid value %q for %s: %w", s, ev.EnvName(), serr)
		}
	})
	return err
}

type envVar interface {
	EnvName() string
}

type flagValue[T Type] struct {
	envName string
	value   *T
}

func (f *flagValue[T]) EnvName() string { return f.envName }

func (f *flagValue[T]) String() string {
	if f == nil || f.value == nil {
		return ""
	}
	switch v := any(*f.value).(type) {
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case string:
		return v
	}
	return ""
}

func (f *flagValue[T]) Set(s string) error {
	switch p := any(f.value).(type) {
	case *int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*p = v
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*p = v
	case *string:
		*p = s
	}
	return nil
}

// IsBoolFlag lets boolean flags be given without a value.
func (f *flagValue[T]) IsBoolFlag() bool {
	_, ok := any(f.value).(*bool)
	return ok
}
