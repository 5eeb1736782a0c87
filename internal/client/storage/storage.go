// Package storage is the durable client-side store: a small string key/value
// table in a local SQLite database. It plays the role a browser's
// localStorage would play for this application and holds exactly two keys,
// "theme" and "currentUser".
package storage

import "context"

// Repository is a string key/value store. Get returns "" (and no error) for
// an absent key, mirroring localStorage semantics.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string]string, error)
	Clear(ctx context.Context) error
}
