/*
Package queryops names the MongoDB query operators so that code building
query documents can refer to them symbolically instead of spelling out
"$eq" or "$geoWithin" by hand.

Each operator is an Operator constant:

	filter := map[string]any{
		"age": map[string]any{queryops.GreaterThanOrEqual.String(): 21},
	}

The same values are available as one struct from Table, whose layout and
JSON encoding match the MongoDB query operators table used by other
language clients:

	ops := queryops.Table()
	ops.Equal                // "$eq"
	ops.TextOperators.Search // "$search"

The package does not build, validate or run queries.

Lookups by name never fail loudly. Lookup and LookupTextOption report a
missing name through their boolean result and a debug log message; see
SetLogger.
*/
package queryops
