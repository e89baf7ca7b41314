// Package dtd renders an inferred reterm.Term as a DTD element declaration,
// a thin presentation layer kept outside the inference core's scope.
package dtd
