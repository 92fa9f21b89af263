package errors

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalServerError represents a generic internal server error.
	GeneralInternalServerError ErrorCode = "general_internal_server_error"
	// GeneralBadRequestError represents a generic bad request error.
	GeneralBadRequestError ErrorCode = "general_bad_request_error"
	// GeneralNotFoundError represents a generic not found error.
	GeneralNotFoundError ErrorCode = "general_not_found_error"

	// SnapshotNotFoundError represents an error when a snapshot handle does not
	// resolve to a live cached dataset (expired or never built).
	SnapshotNotFoundError ErrorCode = "snapshot_not_found_error"
	// SnapshotDecodeError represents an error when a cached snapshot cannot be
	// deserialized. Treated as a cache miss by callers.
	SnapshotDecodeError ErrorCode = "snapshot_decode_error"
	// StoreUnavailableError represents an error when the long-term time-series
	// store cannot serve a range query.
	StoreUnavailableError ErrorCode = "store_unavailable_error"
	// InvalidIntervalError represents an error when an interval name is not in
	// the supported registry.
	InvalidIntervalError ErrorCode = "invalid_interval_error"

	// RedisConfigError represents an error when the Redis configuration is invalid or nil.
	RedisConfigError ErrorCode = "redis_config_error"
	// RedisConnectionError represents an error when connecting to Redis.
	RedisConnectionError ErrorCode = "redis_connection_error"
	// RedisDisconnectionError represents an error when disconnecting from Redis.
	RedisDisconnectionError ErrorCode = "redis_disconnection_error"
	// RedisPingError represents an error when pinging Redis.
	RedisPingError ErrorCode = "redis_pinging_error"

	// RedisGetError represents an error when getting a value from Redis.
	RedisGetError ErrorCode = "redis_get_error"
	// RedisSetError represents an error when setting a value in Redis.
	RedisSetError ErrorCode = "redis_set_error"
	// RedisDelError represents an error when deleting a value from Redis.
	RedisDelError ErrorCode = "redis_del_error"
	// RedisRPushError represents an error when appending to a list in Redis.
	RedisRPushError ErrorCode = "redis_rpush_error"
	// RedisLRangeError represents an error when reading a list range from Redis.
	RedisLRangeError ErrorCode = "redis_lrange_error"
	// RedisExpireError represents an error when setting a key expiration in Redis.
	RedisExpireError ErrorCode = "redis_expire_error"
	// RedisSubscribeError represents an error when subscribing to channels in Redis.
	RedisSubscribeError ErrorCode = "redis_subscribe_error"
	// RedisPublishError represents an error when publishing messages to channels in Redis.
	RedisPublishError ErrorCode = "redis_publish_error"
)
