package config

// redisNamespace prefixes every Redis key the panel writes, so the panel can
// share a Redis database with the bot.
const redisNamespace = "garajhub:admin:"

// SessionKey returns the Redis key holding one admin session.
func SessionKey(sessionID string) string {
	return redisNamespace + "session:" + sessionID
}
