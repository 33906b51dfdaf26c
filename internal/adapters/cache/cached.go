package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/singleflight"
)

// Fingerprint hashes a raw cache key into a short fixed-width form so
// arbitrary paths and ids stay cheap as map keys.
func Fingerprint(raw string) string {
	return strconv.FormatUint(xxhash.Sum64String(raw), 16)
}

// Cached wraps fn so it consults the scope before delegating. keyFn maps
// the argument to a raw key, which is fingerprinted into the scope.
//
// Concurrent misses for the same key are deduplicated through singleflight
// so fn runs once. Errors are not cached: a failing fn is retried on the
// next call. A cache failure degrades to calling fn directly.
func Cached[A, R any](scope *Scope, keyFn func(A) string, fn func(A) (R, error)) func(A) (R, error) {
	var group singleflight.Group

	return func(arg A) (R, error) {
		key := Fingerprint(keyFn(arg))

		if v, ok := scope.Get(key); ok {
			if typed, ok := v.(R); ok {
				return typed, nil
			}
			// A colliding write of a different type; drop it and recompute.
			scope.Delete(key)
		}

		v, err, _ := group.Do(key, func() (any, error) {
			// A concurrent flight may have populated the scope already.
			if v, ok := scope.Get(key); ok {
				if typed, ok := v.(R); ok {
					return typed, nil
				}
			}

			result, err := fn(arg)
			if err != nil {
				return nil, err
			}
			scope.Set(key, result)
			return result, nil
		})
		if err != nil {
			var zero R
			return zero, err
		}
		return v.(R), nil
	}
}
