package queryops

import (
	"reflect"

	"github.com/barkimedes/go-deepcopy"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// QueryOperators holds every supported operator under its symbolic
// name. Values obtained from Table are copies: assigning to a field
// never changes what other callers see.
type QueryOperators struct {
	Equal              Operator `json:"Equal" yaml:"Equal"`
	NotEqual           Operator `json:"NotEqual" yaml:"NotEqual"`
	GreaterThan        Operator `json:"GreaterThan" yaml:"GreaterThan"`
	GreaterThanOrEqual Operator `json:"GreaterThanOrEqual" yaml:"GreaterThanOrEqual"`
	LessThan           Operator `json:"LessThan" yaml:"LessThan"`
	LessThanOrEqual    Operator `json:"LessThanOrEqual" yaml:"LessThanOrEqual"`
	In                 Operator `json:"In" yaml:"In"`
	NotIn              Operator `json:"NotIn" yaml:"NotIn"`
	Exists             Operator `json:"Exists" yaml:"Exists"`
	Type               Operator `json:"Type" yaml:"Type"`
	Modulus            Operator `json:"Modulus" yaml:"Modulus"`
	Regex              Operator `json:"Regex" yaml:"Regex"`
	Text               Operator `json:"Text" yaml:"Text"`
	Where              Operator `json:"Where" yaml:"Where"`
	Size               Operator `json:"Size" yaml:"Size"`
	All                Operator `json:"All" yaml:"All"`
	ElemMatch          Operator `json:"ElemMatch" yaml:"ElemMatch"`
	Not                Operator `json:"Not" yaml:"Not"`
	Nor                Operator `json:"Nor" yaml:"Nor"`
	Or                 Operator `json:"Or" yaml:"Or"`
	And                Operator `json:"And" yaml:"And"`
	GeoWithin          Operator `json:"GeoWithin" yaml:"GeoWithin"`
	GeoIntersects      Operator `json:"GeoIntersects" yaml:"GeoIntersects"`
	Near               Operator `json:"Near" yaml:"Near"`
	NearSphere         Operator `json:"NearSphere" yaml:"NearSphere"`
	Geometry           Operator `json:"Geometry" yaml:"Geometry"`
	CenterSphere       Operator `json:"CenterSphere" yaml:"CenterSphere"`
	Box                Operator `json:"Box" yaml:"Box"`
	Polygon            Operator `json:"Polygon" yaml:"Polygon"`
	UniqueDocs         Operator `json:"UniqueDocs" yaml:"UniqueDocs"`
	Comment            Operator `json:"Comment" yaml:"Comment"`

	TextOperators TextOperators `json:"TextOperators" yaml:"TextOperators"`
}

// TextOperators holds the options accepted by the Text operator.
type TextOperators struct {
	Search             TextOption `json:"Search" yaml:"Search"`
	Language           TextOption `json:"Language" yaml:"Language"`
	CaseSensitive      TextOption `json:"CaseSensitive" yaml:"CaseSensitive"`
	DiacriticSensitive TextOption `json:"DiacriticSensitive" yaml:"DiacriticSensitive"`
}

// Entry is a single name/token pair.
type Entry struct {
	Name  string
	Token string
}

const textOperatorsKey = "TextOperators"

var table = QueryOperators{
	Equal:              Equal,
	NotEqual:           NotEqual,
	GreaterThan:        GreaterThan,
	GreaterThanOrEqual: GreaterThanOrEqual,
	LessThan:           LessThan,
	LessThanOrEqual:    LessThanOrEqual,
	In:                 In,
	NotIn:              NotIn,
	Exists:             Exists,
	Type:               Type,
	Modulus:            Modulus,
	Regex:              Regex,
	Text:               Text,
	Where:              Where,
	Size:               Size,
	All:                All,
	ElemMatch:          ElemMatch,
	Not:                Not,
	Nor:                Nor,
	Or:                 Or,
	And:                And,
	GeoWithin:          GeoWithin,
	GeoIntersects:      GeoIntersects,
	Near:               Near,
	NearSphere:         NearSphere,
	Geometry:           Geometry,
	CenterSphere:       CenterSphere,
	Box:                Box,
	Polygon:            Polygon,
	UniqueDocs:         UniqueDocs,
	Comment:            Comment,
	TextOperators: TextOperators{
		Search:             Search,
		Language:           Language,
		CaseSensitive:      CaseSensitive,
		DiacriticSensitive: DiacriticSensitive,
	},
}

// Indexes derived from table. Read-only after init.
var (
	operatorIndex   = fieldIndex[Operator](reflect.ValueOf(table))
	textOptionIndex = fieldIndex[TextOption](reflect.ValueOf(table.TextOperators))
	canonical       = table.toMap()
)

// Table returns the operator table.
func Table() QueryOperators {
	return table
}

// Map returns the table as nested generic maps, the shape produced by
// decoding its JSON form. Every call returns a fresh copy.
func Map() map[string]any {
	return deepcopy.MustAnything(canonical).(map[string]any)
}

// Operators returns all top-level entries sorted by name.
func Operators() []Entry {
	return entries(operatorIndex)
}

// TextOptions returns the Text operator options sorted by name.
func TextOptions() []Entry {
	return entries(textOptionIndex)
}

// Names returns the sorted top-level keys of the table, including the
// TextOperators sub-table.
func Names() []string {
	names := maps.Keys(canonical)
	slices.Sort(names)
	return names
}

// Lookup returns the operator registered under name. Names are case
// sensitive; TextOperators is a sub-table and is not found here.
func Lookup(name string) (Operator, bool) {
	op, ok := operatorIndex[name]
	if !ok {
		logger.Debug("Unknown operator name", "name", name)
	}
	return op, ok
}

// LookupTextOption returns the Text option registered under name.
func LookupTextOption(name string) (TextOption, bool) {
	opt, ok := textOptionIndex[name]
	if !ok {
		logger.Debug("Unknown text option name", "name", name)
	}
	return opt, ok
}

// Map returns q as nested generic maps. The result is not shared.
func (q QueryOperators) Map() map[string]any {
	return q.toMap()
}

func (q QueryOperators) toMap() map[string]any {
	m := stringMap(fieldIndex[Operator](reflect.ValueOf(q)))
	m[textOperatorsKey] = stringMap(fieldIndex[TextOption](reflect.ValueOf(q.TextOperators)))
	return m
}

// fieldIndex maps field names of struct v to the fields of type T.
func fieldIndex[T ~string](v reflect.Value) map[string]T {
	res := map[string]T{}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if tok, ok := v.Field(i).Interface().(T); ok {
			res[t.Field(i).Name] = tok
		}
	}
	return res
}

func stringMap[T ~string](index map[string]T) map[string]any {
	res := make(map[string]any, len(index))
	for name, tok := range index {
		res[name] = string(tok)
	}
	return res
}

func entries[T ~string](index map[string]T) []Entry {
	names := maps.Keys(index)
	slices.Sort(names)
	res := make([]Entry, 0, len(names))
	for _, name := range names {
		res = append(res, Entry{name, string(index[name])})
	}
	return res
}
