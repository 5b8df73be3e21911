// Package binding resolves configuration values by property marker.
//
// Registry is the binding map: values are bound under a property.Property
// and looked up with any equal marker, whether built with property.New or
// read from a `property` struct tag. Inject fills tagged struct fields from
// a Registry, converting the raw values to the field types.
package binding
