package service

import (
	"errors"
	"slices"
	"tunebot/internal/core/domain"

	"github.com/spf13/viper"
)

type Authorizer interface {
	LevelOf(message *domain.Message) domain.PermissionLevel
}

// PermissionGate derives the permission level of a caller from the user id
// lists in the configuration. Everyone else is a plain user.
type PermissionGate struct {
	owners []int64
	admins []int64
	djs    []int64
}

func NewPermissionGate() (*PermissionGate, error) {
	g := &PermissionGate{}

	lists := map[string]*[]int64{
		"permissions.bot_owners": &g.owners,
		"permissions.admins":     &g.admins,
		"permissions.djs":        &g.djs,
	}

	for key, list := range lists {
		if err := viper.UnmarshalKey(key, list); err != nil {
			return nil, errors.New("failed to load " + key)
		}
	}

	return g, nil
}

func (g *PermissionGate) LevelOf(message *domain.Message) domain.PermissionLevel {
	switch {
	case slices.Contains(g.owners, message.UserID):
		return domain.PermBotOwner
	case slices.Contains(g.admins, message.UserID):
		return domain.PermAdmin
	case slices.Contains(g.djs, message.UserID):
		return domain.PermDJ
	default:
		return domain.PermUser
	}
}
