package interfaces

import "context"

// ICollectionCache is the read-through list cache keyed by collection name.
// Use cases consult it before hitting the store and explicitly invalidate the
// affected collections after every successful mutation; stale reads between
// a mutation and its invalidation are acceptable, stale reads after are not.
//
// A nil cache disables caching: use cases must treat it as always-miss.

type ICollectionCache interface {
	GetList(ctx context.Context, collection string, dest interface{}) (bool, error)
	SetList(ctx context.Context, collection string, value interface{}) error
	Invalidate(ctx context.Context, collections ...string) error
}
