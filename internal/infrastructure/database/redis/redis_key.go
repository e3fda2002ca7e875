package redis

import "fmt"

// RedisKeyGenerator génère les clés Redis selon la convention
// clinique_{env}_{domain}_{context}:{identifier}
type RedisKeyGenerator struct {
	environment string
}

// NewRedisKeyGenerator crée une nouvelle instance du générateur
func NewRedisKeyGenerator(environment string) *RedisKeyGenerator {
	return &RedisKeyGenerator{environment: environment}
}

func (rkg *RedisKeyGenerator) key(domain, context, identifier string) string {
	return fmt.Sprintf("clinique_%s_%s_%s:%s", rkg.environment, domain, context, identifier)
}

// SessionKey clé de la session principale d'un token
func (rkg *RedisKeyGenerator) SessionKey(token string) string {
	return rkg.key("auth", "session", token)
}

// UserSessionsKey index des sessions actives d'un utilisateur
func (rkg *RedisKeyGenerator) UserSessionsKey(userID string) string {
	return rkg.key("auth", "user_sessions", userID)
}

// UnreadNotificationsKey compteur de notifications non lues d'un utilisateur
func (rkg *RedisKeyGenerator) UnreadNotificationsKey(userID string) string {
	return rkg.key("cache", "notif_unread", userID)
}
