package encode

import (
	"bytes"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Object is a JSON object which keeps its keys in insertion order.
type Object struct {
	keys []string
	vals map[string]any
}

func (o *Object) Set(k string, v any) {
	if o.vals == nil {
		o.vals = map[string]any{}
	}
	if _, ok := o.vals[k]; !ok {
		o.keys = append(o.keys, k)
	}
	o.vals[k] = v
}

func (o *Object) Get(k string) (any, bool) {
	v, ok := o.vals[k]
	return v, ok
}

func (o *Object) Keys() []string {
	return o.keys
}

// Merge sets each key of p in o, in p's order.
func (o *Object) Merge(p *Object) {
	for _, k := range p.keys {
		o.Set(k, p.vals[k])
	}
}

func (o *Object) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i != 0 {
			buf.WriteByte(',')
		}
		kd, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kd)
		buf.WriteByte(':')
		vd, err := json.Marshal(o.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vd)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MapSlice converts o, and any objects nested within it, for YAML
// encoding.
func (o *Object) MapSlice() yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(o.keys))
	for _, k := range o.keys {
		res = append(res, yaml.MapItem{Key: k, Value: yamlValue(o.vals[k])})
	}
	return res
}

func yamlValue(v any) any {
	switch x := v.(type) {
	case *Object:
		return x.MapSlice()
	case []any:
		res := make([]any, len(x))
		for i := range x {
			res[i] = yamlValue(x[i])
		}
		return res
	}
	return v
}
