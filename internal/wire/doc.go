// Package wire renders reconciled case state into the versioned XML wire
// format consumed by devices.
//
// All functions are pure transformations producing in-memory element trees;
// serialization to UTF-8 bytes is a separate, trivial step ([Serialize]).
// Element and attribute names are part of the deployed protocol contract and
// must remain stable per version.
package wire
