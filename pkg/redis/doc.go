// Package redis publishes serialized logging settings to Redis.
//
// Connect opens a go-redis client with retries. Store writes the pairs of one
// serialization run into a hash, replacing the previous content in a single
// MULTI/EXEC transaction, and keeps their order in a companion list so Fetch
// returns them as they were published. When a channel is configured, the
// settings key is published on it after each update so loaders can reload.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store, err := redis.NewStoreFromConfig(client, cfg)
//	if err != nil {
//		return err
//	}
//	if err := store.Publish(ctx, pairs); err != nil {
//		return err
//	}
//
// Healthcheck returns a check function suitable for readiness endpoints.
package redis
