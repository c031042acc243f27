//go:build unit || e2e

package cache

var PutScriptHash = putScript.Hash()
