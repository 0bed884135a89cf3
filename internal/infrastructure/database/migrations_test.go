package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	data, err := migrationsFS.ReadFile("migrations/" + name)
	require.NoError(t, err, "migration %s must be embedded", name)
	return string(data)
}

func TestEveryMigrationHasDownPair(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	files := map[string]bool{}
	for _, e := range entries {
		files[e.Name()] = true
	}

	for name := range files {
		if strings.HasSuffix(name, ".up.sql") {
			down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
			assert.True(t, files[down], "%s has no down migration", name)
		}
	}
}

func TestSchemaDeclaresCheckConstraints(t *testing.T) {
	schema := readMigration(t, "000001_init_schema.up.sql")

	// Date ordering, range and numeric checks from the data model.
	assert.Contains(t, schema, "CHECK (scheduled_start < scheduled_end)")
	assert.Contains(t, schema, "CHECK (start_time < end_time)")
	assert.Contains(t, schema, "CHECK (day_of_week BETWEEN 0 AND 6)")
	assert.Contains(t, schema, "CHECK (amount >= 0)")
	assert.Contains(t, schema, "CHECK (years_experience >= 0)")
}

func TestSchemaDeclaresReferentialActions(t *testing.T) {
	schema := readMigration(t, "000001_init_schema.up.sql")

	// User deletion cascades to the 1:1 profile rows and, transitively,
	// availabilities and specialty/clinic links.
	assert.Contains(t, schema, "user_id          uuid PRIMARY KEY REFERENCES users (id) ON DELETE CASCADE")
	assert.Contains(t, schema, "doctor_id   uuid NOT NULL REFERENCES doctors (user_id) ON DELETE CASCADE")
	assert.Contains(t, schema, "specialty_id integer NOT NULL REFERENCES specialties (id) ON DELETE CASCADE")

	// Historical records protect their doctor row.
	assert.Contains(t, schema, "doctor_id      uuid NOT NULL REFERENCES doctors (user_id) ON DELETE RESTRICT")

	// Optional references survive as NULL.
	assert.Contains(t, schema, "clinic_id   uuid REFERENCES clinics (id) ON DELETE SET NULL")
	assert.Contains(t, schema, "user_id     uuid REFERENCES users (id) ON DELETE SET NULL")
}

func TestSchemaDeclaresClosedEnums(t *testing.T) {
	schema := readMigration(t, "000001_init_schema.up.sql")

	assert.Contains(t, schema,
		"'REQUESTED', 'CONFIRMED', 'RESCHEDULED', 'COMPLETED', 'CANCELLED', 'NO_SHOW'")
	assert.Contains(t, schema, "'CASH', 'CARD', 'M-PESA', 'INTASEND', 'OTHER'")
	assert.Contains(t, schema, "'PENDING', 'COMPLETED', 'FAILED', 'REFUNDED'")

	assert.Contains(t, schema, "DEFAULT 'KES'")
	assert.Contains(t, schema, "DEFAULT 'INTASEND'")
	assert.Contains(t, schema, "DEFAULT 'REQUESTED'")
}

func TestOverlapPreventionStaysOutOfTheSchema(t *testing.T) {
	schema := readMigration(t, "000001_init_schema.up.sql")

	// The index only accelerates an external overlap check. If an exclusion
	// constraint ever shows up here, overlapping inserts would start failing
	// at this layer, which is a behavior change, not a fix.
	assert.Contains(t, schema, "idx_appointments_doctor_time")
	assert.NotContains(t, schema, "EXCLUDE USING")
	assert.NotContains(t, schema, "btree_gist")
}

func TestSeedMigrationInstallsFiveRoles(t *testing.T) {
	seed := readMigration(t, "000002_seed_roles.up.sql")

	for _, role := range []string{"'Admin'", "'Doctor'", "'Patient'", "'Receptionist'", "'Nurse'"} {
		assert.Contains(t, seed, role)
	}
	assert.Contains(t, seed, "ON CONFLICT (name) DO NOTHING")
	assert.Equal(t, 5, strings.Count(seed, "\n    ('"), "exactly five role tuples expected")
}
