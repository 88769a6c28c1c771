// Package configstore provides durable storage for named configurations.
//
// This package contains the only component that talks to the relational
// store. Every other package. including the dispatcher, reaches the store
// exclusively through the Store type defined here.
//
// Key design constraints:
//   - All JSON document fields use upper-snake-case (CONFIG_NAME, SETTINGS, ...)
//   - "not found" is never an empty result; it is a typed StoreError
//   - db_state (see State) is always overwritten by the most recent call
package configstore
