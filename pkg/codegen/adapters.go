package codegen

import (
	"fmt"

	"github.com/scylladb/go-set/strset"

	"github.com/anchore/newtype/internal/selection"
)

const (
	JSONAdapter    = "json"
	YAMLAdapter    = "yaml"
	MsgpackAdapter = "msgpack"
	BSONAdapter    = "bson"
	SQLAdapter     = "sql"
	CQLAdapter     = "cql"
)

const (
	// DefaultTag selects the adapters used when no plain names are given
	DefaultTag = "default"
	// SerializationTag selects the adapters encoding the payload as a document value
	SerializationTag = "serialization"
	// RowTag selects the adapters mapping the payload to a single database column
	RowTag = "row"
	// StdlibTag selects the adapters that only need the standard library
	StdlibTag = "stdlib"
	AllTag    = "all"
)

// Adapter describes the methods emitted for one external serialization or row-mapping boundary
type Adapter struct {
	Name string

	// Constraint is the build constraint guarding the adapter in the core package, empty when always built
	Constraint string

	// Imports lists the packages the emitted methods refer to
	Imports []ImportSpec

	// Methods lists the names of the emitted methods
	Methods []string

	body string
}

// adapter names and tags an adapter to be used in the set of all adapters
func adapter(a *Adapter, tags ...string) selection.Value[*Adapter] {
	return selection.New(a, append([]string{a.Name, AllTag}, tags...)...)
}

// Adapters returns every adapter the generator can emit
func Adapters() selection.Values[*Adapter] {
	return selection.Values[*Adapter]{
		// serialization adapters
		adapter(&Adapter{
			Name:    JSONAdapter,
			Methods: []string{"MarshalJSON", "UnmarshalJSON"},
			body:    jsonBody,
		}, DefaultTag, SerializationTag, StdlibTag),
		adapter(&Adapter{
			Name:       YAMLAdapter,
			Constraint: "!tagged_noyaml",
			Imports:    []ImportSpec{{Path: "gopkg.in/yaml.v3"}},
			Methods:    []string{"MarshalYAML", "UnmarshalYAML"},
			body:       yamlBody,
		}, SerializationTag),
		adapter(&Adapter{
			Name:       MsgpackAdapter,
			Constraint: "!tagged_nomsgpack",
			Imports:    []ImportSpec{{Path: "github.com/vmihailenco/msgpack/v5"}},
			Methods:    []string{"EncodeMsgpack", "DecodeMsgpack"},
			body:       msgpackBody,
		}, SerializationTag),
		adapter(&Adapter{
			Name:       BSONAdapter,
			Constraint: "!tagged_nobson",
			Imports:    []ImportSpec{{Path: "go.mongodb.org/mongo-driver/bson/bsontype"}},
			Methods:    []string{"MarshalBSONValue", "UnmarshalBSONValue"},
			body:       bsonBody,
		}, SerializationTag),

		// row adapters
		adapter(&Adapter{
			Name:       SQLAdapter,
			Constraint: "!tagged_nosql",
			Imports:    []ImportSpec{{Path: "database/sql/driver"}},
			Methods:    []string{"Scan", "Value"},
			body:       sqlBody,
		}, DefaultTag, RowTag, StdlibTag),
		adapter(&Adapter{
			Name:       CQLAdapter,
			Constraint: "!tagged_nocql",
			Imports:    []ImportSpec{{Path: "github.com/gocql/gocql"}},
			Methods:    []string{"MarshalCQL", "UnmarshalCQL"},
			body:       cqlBody,
		}, RowTag),
	}
}

// SelectAdapters resolves a selection expression such as "serialization,-bson" or "+cql" against all adapters.
// Without plain names the selection starts from the default adapters.
func SelectAdapters(expr string) ([]*Adapter, error) {
	selected, err := selection.Apply(Adapters(), selection.ParseRequest(expr, DefaultTag))
	if err != nil {
		return nil, fmt.Errorf("invalid adapter selection %q: %w", expr, err)
	}
	return selected.Collect(), nil
}

var coreMethods = []string{
	"From", "Tagged", "setTagged", "Get", "Unwrap", "Take", "Set", "Equal", "String", "Format",
	"InnerTypeName", "Compare", "Hash", "Values", "All", "Drain",
}

// reservedNames holds every method name generated code may declare; a field cannot share one
func reservedNames() *strset.Set {
	names := strset.New(coreMethods...)
	for _, a := range Adapters().Collect() {
		names.Add(a.Methods...)
	}
	return names
}
