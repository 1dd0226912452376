//go:build integration

package records_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"defensoria/internal/records"
	"defensoria/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())

	_, err := s.postgres.DB.Exec(`
		CREATE TABLE IF NOT EXISTS radicados (
			id SERIAL PRIMARY KEY,
			"Cedula" TEXT,
			"Tipo de documento" TEXT,
			"Defensor asignado" TEXT,
			"Delito" TEXT
		)`)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "radicados"))
}

func (s *PostgresStoreSuite) seed(cedula, docType, defender, offense string) {
	_, err := s.postgres.DB.Exec(
		`INSERT INTO radicados ("Cedula", "Tipo de documento", "Defensor asignado", "Delito") VALUES ($1, $2, $3, $4)`,
		cedula, docType, defender, offense,
	)
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestColumnsSurfaceAsRecordKeys() {
	s.seed("12345678", "CC", "Ana Gómez", "Hurto")

	store := records.NewPostgres(s.postgres.DB)
	recs, err := store.All(context.Background())
	s.Require().NoError(err)
	s.Require().Len(recs, 1)

	s.Equal("12345678", records.Resolve(recs[0], records.FieldID))
	s.Equal("Ana Gómez", records.Resolve(recs[0], records.FieldDefender))
	s.Equal("Hurto", records.Resolve(recs[0], records.FieldOffense))
}

func (s *PostgresStoreSuite) TestLoadIsCachedForProcessLifetime() {
	s.seed("111", "CC", "Ana Gómez", "Hurto")

	store := records.NewPostgres(s.postgres.DB)
	first, err := store.All(context.Background())
	s.Require().NoError(err)
	s.Require().Len(first, 1)

	s.seed("222", "CC", "Ana Gómez", "Estafa")

	second, err := store.All(context.Background())
	s.Require().NoError(err)
	s.Len(second, 1, "rows inserted after first load must not appear")
}

func (s *PostgresStoreSuite) TestNullColumnsResolveAsAbsent() {
	_, err := s.postgres.DB.Exec(`INSERT INTO radicados ("Cedula") VALUES ('333')`)
	s.Require().NoError(err)

	store := records.NewPostgres(s.postgres.DB)
	recs, err := store.All(context.Background())
	s.Require().NoError(err)
	s.Require().Len(recs, 1)

	s.Equal(records.NotAvailable, records.ResolveOrNA(recs[0], records.FieldOffense))
}
