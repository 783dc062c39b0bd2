package lang

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

// Entry is the value side of [Table.ToMap]: a process's command and its
// environment as ordered [name, value] pairs.
type Entry struct {
	Cmd string      `json:"cmd" yaml:"cmd"`
	Env [][2]string `json:"env" yaml:"env"`
}

// entry converts p to its map representation. Env is never nil so that it
// marshals as an empty list.
func (p *Process) entry() Entry {
	env := make([][2]string, len(p.Env))
	for i, v := range p.Env {
		env[i] = [2]string{v.Name, v.Value}
	}

	return Entry{Cmd: p.Command, Env: env}
}

// ToMap converts the table to a map from process type to [Entry].
func (t *Table) ToMap() map[string]Entry {
	m := make(map[string]Entry, len(t.Processes))
	for _, p := range t.Processes {
		m[p.Type] = p.entry()
	}

	return m
}

// MarshalJSON implements json.Marshaler.
// Map keys are sorted by encoding/json.
func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToMap())
}

// MarshalYAML implements yaml.InterfaceMarshaler, keeping declaration order.
func (t *Table) MarshalYAML() (any, error) {
	return t.mapSlice(), nil
}

// mapSlice returns the table as an ordered YAML mapping.
func (t *Table) mapSlice() yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(t.Processes))

	for _, p := range t.Processes {
		env := make(yaml.MapSlice, 0, len(p.Env))
		for _, v := range p.Env {
			env = append(env, yaml.MapItem{Key: v.Name, Value: v.Value})
		}

		ms = append(ms, yaml.MapItem{
			Key: p.Type,
			Value: yaml.MapSlice{
				{Key: "cmd", Value: p.Command},
				{Key: "env", Value: env},
			},
		})
	}

	return ms
}
