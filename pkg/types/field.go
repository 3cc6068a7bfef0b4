package types

// Field is a static reference row describing one element attribute a
// presentation layer may sort or group by. The rows are seeded at
// schema creation and never mutated by the store.
type Field struct {
	ID        int64
	Name      string
	Sortable  bool
	Groupable bool
}

// Field names seeded into the fields table.
const (
	FieldUUID      = "uuid"
	FieldName      = "name"
	FieldDirectory = "directory"
	FieldType      = "type"
	FieldExtension = "extension"
	FieldFolder    = "folder"
	FieldModified  = "modified"
	FieldUser      = "user"
	FieldCtime     = "ctime"
)
