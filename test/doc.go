// This file is part of retroinput.
//
// retroinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// retroinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with retroinput.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect functions report a test error but allow the test to continue.
// The Demand functions are fatal and should be used when a value is needed
// for the tests that follow. For example, testing that the length of a slice
// is as expected before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// type:
//
//	bool -> true is success
//	error -> nil is success
//
// Note that an untyped nil is considered a success. This is because of how
// errors usually work: nil indicates no error.
//
// The Writer type implements the io.Writer interface and can be used to
// capture output for comparison.
package test
