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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf(), which takes a formatting pattern and
// placeholder values in the manner of fmt.Errorf().
//
// The pattern is kept alongside the values and is what distinguishes one
// curated error from another. Packages export their patterns as string
// constants, which act as sentinels:
//
//	const ErrOverflow = "pointer: index %d exceeds capacity"
//
//	err := curated.Errorf(ErrOverflow, 9)
//	if curated.Is(err, ErrOverflow) {
//		...
//	}
//
// Has() is like Is() but searches the entire chain of wrapped curated
// errors. IsAny() answers whether an error was created by Errorf() at all;
// we can think of that as the difference between an 'expected' error and an
// 'unexpected' one.
//
// Error() normalises the message chain by removing duplicate adjacent parts,
// so that wrapping an error with the same prefix more than once doesn't
// produce "driver: driver: ..." messages. Parts of a chain are separated by
// the sub-string ": ".
package curated
