package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/tzbot")
	t.Setenv("PAY_AMOUNT_STARS", "")
	t.Setenv("ADMIN_IDS", "")
	t.Setenv("PORT", "")

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, "tzbot", s.AppName)
	require.Equal(t, int64(10), s.PayAmount)
	require.Equal(t, 5, s.HistoryWindow)
	require.Equal(t, "8080", s.Port)
	require.Equal(t, "meta-llama/llama-3.3-70b-instruct:free", s.DefaultModel)
	require.Empty(t, s.AdminIDs)
}

func TestLoad_AdminIDsSkipsGarbage(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/tzbot")
	t.Setenv("ADMIN_IDS", " 123, abc, 456 ,,")

	s, err := Load()
	require.NoError(t, err)
	require.Equal(t, []int64{123, 456}, s.AdminIDs)
	require.True(t, s.IsAdmin(123))
	require.True(t, s.IsAdmin(456))
	require.False(t, s.IsAdmin(789))
}

func TestLoad_RequiresToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/tzbot")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BadPayAmount(t *testing.T) {
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_URL", "postgres://localhost/tzbot")
	t.Setenv("PAY_AMOUNT_STARS", "-5")

	_, err := Load()
	require.Error(t, err)
}
