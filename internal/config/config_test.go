package config

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/FairyTail2000/in-mem/internal/store"
	"github.com/FairyTail2000/in-mem/pkg/proto"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discardWriter{})
	return log
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	require.Empty(t, cfg.Users)
	require.Empty(t, cfg.Acls)
}

func TestValidUsersSkipsMalformedEntries(t *testing.T) {
	goodHash := store.HashPassword("secret")
	users := []User{
		{Name: "alice", Password: goodHash},
		{Name: "", Password: goodHash},
		{Name: "bob", Password: ""},
		{Name: "carol", Password: "too-short"},
	}

	out := ValidUsers(users, discardLogger())
	require.Len(t, out, 1)
	require.Equal(t, "alice", out[0].Name)
}

func TestResolveAclsSkipsUnknownCommands(t *testing.T) {
	acls := []Acl{
		{Name: "alice", Commands: []string{"GET", "SET", "NOT_A_COMMAND"}},
	}
	resolved := ResolveAcls(acls, discardLogger())
	require.Len(t, resolved, 1)
	require.ElementsMatch(t, []proto.CommandID{proto.Get, proto.Set}, resolved[0].Commands)
}

func TestPasswordHashLenMatchesHashPasswordOutput(t *testing.T) {
	require.Equal(t, store.PasswordHashLen, len(store.HashPassword("anything")))
	require.True(t, strings.TrimSpace(store.HashPassword("x")) != "")
}
