// Package schemafile loads shape declarations from YAML or JSONC
// documents. A document names a set of shapes which may reference each
// other; Resolve inlines the references and hands back ready shape
// descriptors.
//
// Key capabilities:
//   - scalar shorthand for primitives, sentinels, and named references
//   - object/array/tuple/func/union forms
//   - "key?" optional-field marker with field order preserved
//   - reference cycle detection
package schemafile
