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

// Package random provides the random numbers used to generate synthetic
// input.
//
// There are two functions belonging to the Random type that return random
// numbers:
//
// Reproducible() returns numbers based on the current sequence value. The
// number will always be the same for the same sequence value and argument.
// Synthetic input generated with Reproducible() can be replayed exactly.
//
// Intn() returns random numbers regardless of the sequence value.
//
// If the same random numbers are required every single time then set ZeroSeed
// to true. This is useful for testing purposes.
package random
