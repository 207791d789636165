// Package grid models the two value types every navigator in cleanbot is
// built on: a cardinal facing (Direction) and an integer cell coordinate
// (Position).
//
// What:
//
//   - Direction is a closed 4-element cyclic set: Up → Right → Down → Left.
//     TurnRight advances it by 90°, TurnLeft is the inverse.
//   - Position is an (X, Y) pair compared by value. Y grows downward, so
//     Up is (x, y-1) and Down is (x, y+1).
//   - Key packs a Position into a uint64 for use as a map/set key.
//   - DeltaToDirection converts two adjacent cells into the direction that
//     connects them; RightTurns computes how many right turns take one
//     facing to another.
//
// Why:
//
//   - A robot that can only turn and step needs cheap, allocation-free
//     conversions between "where am I going" and "which way do I face".
//   - Packed keys avoid string formatting and its collision risks.
//
// Complexity:
//
//   - Every operation is O(1) with no allocation.
//
// Errors:
//
//   - ErrInvalidAdjacency: the two cells are not 4-neighbors.
//   - ErrInvalidDirection: a Direction value outside the closed set.
//   - ErrKeyRange: a coordinate outside int32, which Key cannot encode.
package grid
