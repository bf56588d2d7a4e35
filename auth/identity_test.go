package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"message-service/domain"
)

var secret = []byte("unit test signing secret")

func Test_Round_Trip_Restores_The_Identity(t *testing.T) {
	req := require.New(t)

	// Given a freshly issued token
	token, err := GenerateToken("user-1", "alice", []string{"user"}, secret, time.Minute)
	req.NoError(err)

	// When parsing it back
	identity, err := ParseIdentity(token, secret)

	req.NoError(err)
	req.Equal(domain.Identity{UserID: "user-1", Username: "alice", Roles: []string{"user"}}, identity)
	req.False(identity.IsConsultant())
}

func Test_Consultant_Role_Survives_The_Trip(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("cons-1", "bob", []string{"consultant"}, secret, time.Minute)
	req.NoError(err)

	identity, err := ParseIdentity(token, secret)
	req.NoError(err)
	req.True(identity.IsConsultant())
	req.Equal(domain.RoleConsultant, identity.Role())
}

func Test_Wrong_Secret_Is_Rejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-1", "alice", nil, secret, time.Minute)
	req.NoError(err)

	_, err = ParseIdentity(token, []byte("a different secret"))
	req.Error(err)
}

func Test_Expired_Token_Is_Rejected(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-1", "alice", nil, secret, -time.Minute)
	req.NoError(err)

	_, err = ParseIdentity(token, secret)
	req.Error(err)
}

func Test_Garbage_Token_Is_Rejected(t *testing.T) {
	req := require.New(t)

	_, err := ParseIdentity("not.a.token", secret)
	req.Error(err)
}
