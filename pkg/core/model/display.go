// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the displayable records, namely City and Color.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
//
// Each record type owns its canonical human-readable rendering through
// a String method. The same value may be printed differently depending
// on the fmt verb which is used: %v and %s call String, while %#v calls
// GoString (producing a debugging-friendly representation).
// That is, formatting is driven by a set of small interfaces, one per
// verb family, and a type opts into each one by implementing it.
package model

import "fmt"

// Displayer is a collection of methods which are defined for an
// unknown type. Methods of a Displayer may call other methods of the
// same set. Currently, it only demands the String method, so any
// fmt.Stringer is a Displayer, and types in this package implement it
// statically without any registration.
type Displayer interface {
	fmt.Stringer
}

var (
	_ Displayer      = City{}
	_ Displayer      = Color{}
	_ fmt.GoStringer = City{}
	_ fmt.GoStringer = Color{}
)
