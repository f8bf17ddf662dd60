package ir

// FieldType is a named schema field: its element and its options.
type FieldType struct {
	name    string
	value   *Element
	options *Options
}

// NewField creates a field. A nil opts is treated as empty.
func NewField(name string, value *Element, opts *Options) *FieldType {
	if opts == nil {
		opts = NewOptions()
	}
	return &FieldType{name: name, value: value, options: opts}
}

func (f *FieldType) Name() string {
	return f.name
}

func (f *FieldType) Value() *Element {
	return f.value
}

func (f *FieldType) Options() *Options {
	return f.options
}

func (f *FieldType) Clone() *FieldType {
	return &FieldType{name: f.name, value: f.value.Clone(), options: f.options.Clone()}
}

// Module is a named, ordered group of top level fields.
type Module struct {
	name   string
	fields Fields
}

func NewModule(name string) *Module {
	return &Module{name: name}
}

func (m *Module) Name() string {
	return m.name
}

// Add adds f, returning false if its name is already used.
func (m *Module) Add(f *FieldType) bool {
	return m.fields.Add(f)
}

func (m *Module) Field(name string) (*FieldType, bool) {
	return m.fields.Get(name)
}

func (m *Module) Fields() *Fields {
	return &m.fields
}

func ModuleEqual(a, b *Module) bool {
	return a.name == b.name && fieldsEqual(&a.fields, &b.fields)
}
