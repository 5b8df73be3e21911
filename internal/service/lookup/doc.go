// Package lookup implements the config-property CLI commands.
//
// Get and List load the properties file into a binding.Registry and resolve
// values by marker; Describe renders a marker without any configuration.
package lookup
