package redis

import "errors"

var (
	ErrFailedToParseRedisConnString = errors.New("failed to parse redis connection string")
	ErrRedisNotReady                = errors.New("redis did not become ready within the given time period")
	ErrEmptyConnectionURL           = errors.New("empty redis connection URL")
	ErrHealthcheckFailed            = errors.New("redis healthcheck failed")
	ErrEmptySettingsKey             = errors.New("empty settings key")
	ErrPublishFailed                = errors.New("failed to publish settings")
	ErrFetchFailed                  = errors.New("failed to fetch settings")
)
