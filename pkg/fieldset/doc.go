// Package fieldset models ordered groups of admin form fields and the two
// transforms applied to them: expanding a placeholder entry into every model
// field not mentioned elsewhere, and removing named fields from the whole
// structure. Both transforms are pure and return new values.
package fieldset
