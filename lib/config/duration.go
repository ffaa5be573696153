/*
Copyright 2020 Gravitational, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package config

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gravitational/trace"
)

// Timeout is a duration setting. It accepts Go duration strings like "90s"
// and bare integers, which count seconds as in robottelo.properties.
// It is written back as a duration string
type Timeout struct {
	time.Duration
}

// Seconds returns a timeout of n seconds
func Seconds(n int) Timeout {
	return Timeout{time.Duration(n) * time.Second}
}

// MarshalJSON encodes the timeout as a duration string
func (d Timeout) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a duration string or a number of seconds
func (d *Timeout) UnmarshalJSON(buf []byte) error {
	var value interface{}
	if err := json.Unmarshal(buf, &value); err != nil {
		return trace.BadParameter("cannot parse %s as timeout: %v", buf, err)
	}
	switch v := value.(type) {
	case string:
		return trace.Wrap(d.parse(v))
	case float64:
		return trace.Wrap(d.parse(strconv.FormatFloat(v, 'f', -1, 64)))
	}
	return trace.BadParameter("cannot parse %s as timeout", buf)
}

// MarshalYAML encodes the timeout as a duration string
func (d Timeout) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML accepts a duration string or a number of seconds.
// Integers reach parse as their decimal text
func (d *Timeout) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var data string
	if err := unmarshal(&data); err != nil {
		return trace.BadParameter("cannot parse timeout: %v", err)
	}
	return trace.Wrap(d.parse(data))
}

// SetEnv implements configure.EnvSetter
func (d *Timeout) SetEnv(data string) error {
	return trace.Wrap(d.parse(data))
}

func (d *Timeout) parse(data string) error {
	data = strings.TrimSpace(data)
	if data == "" {
		return trace.BadParameter("empty timeout")
	}
	dur, err := time.ParseDuration(data)
	if err != nil {
		seconds, convErr := strconv.ParseFloat(data, 64)
		if convErr != nil {
			return trace.BadParameter("cannot parse %q as timeout: %v", data, err)
		}
		dur = time.Duration(seconds * float64(time.Second))
	}
	if dur < 0 {
		return trace.BadParameter("timeout %q is negative", data)
	}
	d.Duration = dur
	return nil
}
