package dsl

// Package dsl builds paramcheck Descriptors:
//
// - Explicit builders: Object/Field/Required plus the primitive constructors
// - Reflection: DescriptorOf derives an object descriptor from a struct type
// - Typed bind: Bind/For produce Schema[T] values that construct T on success
//
// Descriptors are built once, up front, and shared read-only across
// validations.
