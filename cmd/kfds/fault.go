// Copyright 2024 The kfds Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import "errors"

// InvalidError is returned for unusable command-line input.
type InvalidError string

func (e InvalidError) Error() string { return string(e) }

// IsErrInvalid reports whether e is, or wraps, an InvalidError.
func IsErrInvalid(e error) bool {
	var ie InvalidError
	return errors.As(e, &ie)
}

// common errors - keep in alphabetic order
const (
	ErrInvalidNumber = InvalidError("invalid number")
	ErrInvalidOrder  = InvalidError("traversal order can only be in/pre/post")
	ErrNoNumbers     = InvalidError("no numbers given")
)
