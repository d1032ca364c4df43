//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package mpa implements fixed-width multi-precision arithmetics for
// the RSA engine. The integers are slices of 32-bit limbs, least
// significant limb first. The width of an integer is the length of
// its slice; the operations never grow or allocate their arguments.
//
// The package provides only the two primitives the modular
// exponentiation needs: schoolbook multiplication into a double-width
// product and in-place modular reduction of a double-width value.
package mpa
