package services

import (
	"context"
	"time"

	"clinique-core/internal/app/config"
	"clinique-core/internal/infrastructure/database/redis"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SessionService gère le cycle de vie des sessions. Redis est le
// stockage primaire, la collection sessions sert de repli quand Redis
// est indisponible au moment de la lecture ou de l'écriture.
type SessionService struct {
	cache    *redis.Client
	fallback *repository.SessionRepository
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewSessionService(cache *redis.Client, fallback *repository.SessionRepository, cfg *config.Config, logger zerolog.Logger) *SessionService {
	return &SessionService{
		cache:    cache,
		fallback: fallback,
		ttl:      cfg.Session.TTL,
		logger:   logger.With().Str("component", "session").Logger(),
	}
}

// Create ouvre une session pour un utilisateur et retourne le token
func (s *SessionService) Create(ctx context.Context, user *models.User) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		Role:      user.Role,
		Email:     user.Email,
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().UTC().Add(s.ttl),
	}

	key := s.cache.Keys().SessionKey(session.Token)
	err := s.cache.HSet(ctx, key,
		"token", session.Token,
		"user_id", session.UserID.Hex(),
		"role", session.Role,
		"email", session.Email,
		"created_at", session.CreatedAt.Format(time.RFC3339),
		"expires_at", session.ExpiresAt.Format(time.RFC3339),
	)
	if err == nil {
		if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("expiration session Redis non définie")
		}
		s.indexUserSession(ctx, session)
	} else {
		s.logger.Warn().Err(err).Msg("écriture session Redis échouée, repli MongoDB")
	}

	// Copie de repli, purgée par l'index TTL sur expires_at
	if err := s.fallback.Insert(ctx, session); err != nil {
		s.logger.Warn().Err(err).Msg("écriture session MongoDB échouée")
	}

	return session, nil
}

// Resolve retrouve la session d'un token. Retourne nil sans erreur
// quand le token est inconnu ou expiré.
func (s *SessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	fields, err := s.cache.HGetAll(ctx, s.cache.Keys().SessionKey(token))
	if err == nil && len(fields) > 0 {
		session := sessionFromFields(fields)
		if session != nil && !session.IsExpired() {
			return session, nil
		}
		return nil, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Msg("lecture session Redis échouée, repli MongoDB")
	}

	session, err := s.fallback.FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil || session.IsExpired() {
		return nil, nil
	}
	return session, nil
}

// Delete ferme une session
func (s *SessionService) Delete(ctx context.Context, token string) error {
	session, err := s.Resolve(ctx, token)
	if err == nil && session != nil {
		userKey := s.cache.Keys().UserSessionsKey(session.UserID.Hex())
		if err := s.cache.SRem(ctx, userKey, token); err != nil {
			s.logger.Debug().Err(err).Msg("retrait index sessions utilisateur échoué")
		}
	}

	if err := s.cache.Del(ctx, s.cache.Keys().SessionKey(token)); err != nil {
		s.logger.Warn().Err(err).Msg("suppression session Redis échouée")
	}
	return s.fallback.DeleteByToken(ctx, token)
}

// DeleteAllForUser invalide toutes les sessions d'un utilisateur,
// utilisé à la désactivation du compte.
func (s *SessionService) DeleteAllForUser(ctx context.Context, userID primitive.ObjectID) error {
	userKey := s.cache.Keys().UserSessionsKey(userID.Hex())
	tokens, err := s.cache.SMembers(ctx, userKey)
	if err == nil {
		for _, token := range tokens {
			if err := s.cache.Del(ctx, s.cache.Keys().SessionKey(token)); err != nil {
				s.logger.Debug().Err(err).Str("token", token).Msg("suppression session Redis échouée")
			}
		}
		if err := s.cache.Del(ctx, userKey); err != nil {
			s.logger.Debug().Err(err).Msg("suppression index sessions échouée")
		}
	}

	return s.fallback.DeleteByUser(ctx, userID)
}

func (s *SessionService) indexUserSession(ctx context.Context, session *models.Session) {
	userKey := s.cache.Keys().UserSessionsKey(session.UserID.Hex())
	if err := s.cache.SAdd(ctx, userKey, session.Token); err != nil {
		s.logger.Debug().Err(err).Msg("index sessions utilisateur non mis à jour")
		return
	}
	if err := s.cache.Expire(ctx, userKey, s.ttl); err != nil {
		s.logger.Debug().Err(err).Msg("expiration index sessions non définie")
	}
}

func sessionFromFields(fields map[string]string) *models.Session {
	userID, err := primitive.ObjectIDFromHex(fields["user_id"])
	if err != nil {
		return nil
	}

	session := &models.Session{
		Token:  fields["token"],
		UserID: userID,
		Role:   fields["role"],
		Email:  fields["email"],
	}
	if t, err := time.Parse(time.RFC3339, fields["created_at"]); err == nil {
		session.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, fields["expires_at"]); err == nil {
		session.ExpiresAt = t
	}
	return session
}
