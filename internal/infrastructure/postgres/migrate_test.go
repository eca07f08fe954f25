package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	script, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	sql := string(script)
	for _, want := range []string{
		"CREATE TABLE IF NOT EXISTS vacancies",
		"applications_active_uniq",
		"WHERE status <> 'withdrawn'",
		"resumes_primary_uniq",
		"PRIMARY KEY (user_id, vacancy_id)",
	} {
		assert.True(t, strings.Contains(sql, want), want)
	}
}
