package queryops

// Operator is a MongoDB query operator token, such as "$eq".
type Operator string

func (op Operator) String() string {
	return string(op)
}

// Comparison
const (
	// Equal matches values equal to a specified value.
	Equal Operator = "$eq"
	// NotEqual matches values not equal to a specified value.
	NotEqual Operator = "$ne"
	// GreaterThan matches values greater than a specified value.
	GreaterThan Operator = "$gt"
	// GreaterThanOrEqual matches values greater than or equal to a specified value.
	GreaterThanOrEqual Operator = "$gte"
	// LessThan matches values less than a specified value.
	LessThan Operator = "$lt"
	// LessThanOrEqual matches values less than or equal to a specified value.
	LessThanOrEqual Operator = "$lte"
	// In matches any of the values in an array.
	In Operator = "$in"
	// NotIn matches none of the values in an array.
	NotIn Operator = "$nin"
)

// Element
const (
	// Exists matches documents that have the specified field.
	Exists Operator = "$exists"
	// Type matches documents whose field has the given BSON type.
	Type Operator = "$type"
)

// Evaluation
const (
	// Modulus selects documents where field % divisor == remainder.
	Modulus Operator = "$mod"
	Regex   Operator = "$regex"
	// Text performs a text search. Its argument document is keyed by
	// TextOption values.
	Text  Operator = "$text"
	Where Operator = "$where"
)

// Array
const (
	Size      Operator = "$size"
	All       Operator = "$all"
	ElemMatch Operator = "$elemMatch"
)

// Logical
const (
	Not Operator = "$not"
	Nor Operator = "$nor"
	Or  Operator = "$or"
	And Operator = "$and"
)

// Geospatial
const (
	GeoWithin     Operator = "$geoWithin"
	GeoIntersects Operator = "$geoIntersects"
	Near          Operator = "$near"
	NearSphere    Operator = "$nearSphere"

	// Geometry, CenterSphere, Box and Polygon are shape specifiers used
	// inside GeoWithin, GeoIntersects, Near and NearSphere.
	Geometry     Operator = "$geometry"
	CenterSphere Operator = "$centerSphere"
	Box          Operator = "$box"
	Polygon      Operator = "$polygon"

	// UniqueDocs is deprecated by MongoDB and has no effect on 2.2+ servers.
	UniqueDocs Operator = "$uniqueDocs"
)

// Comment attaches a comment to a query predicate.
const Comment Operator = "$comment"

// TextOption is a field of the document passed to the Text operator.
type TextOption string

func (o TextOption) String() string {
	return string(o)
}

const (
	Search             TextOption = "$search"
	Language           TextOption = "$language"
	CaseSensitive      TextOption = "$caseSensitive"
	DiacriticSensitive TextOption = "$diacriticSensitive"
)
