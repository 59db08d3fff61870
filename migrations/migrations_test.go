package migrations

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDDL(t *testing.T) {
	content := `-- header comment
CREATE TABLE a (
  id INT64 NOT NULL,
) PRIMARY KEY (id);

-- second
CREATE INDEX a_by_id ON a(id);
`
	statements := SplitDDL(content)
	require.Len(t, statements, 2)
	assert.Equal(t, "CREATE TABLE a (\nid INT64 NOT NULL,\n) PRIMARY KEY (id)", statements[0])
	assert.Equal(t, "CREATE INDEX a_by_id ON a(id)", statements[1])

	assert.Empty(t, SplitDDL("-- only comments\n\n"))
}

func TestLoad_Order(t *testing.T) {
	fsys := fstest.MapFS{
		"002_b.sql":  {Data: []byte("CREATE INDEX x ON t(c);")},
		"001_a.sql":  {Data: []byte("CREATE TABLE t (c INT64) PRIMARY KEY (c);")},
		"README.txt": {Data: []byte("ignored")},
	}

	migrations, err := Load(fsys)
	require.NoError(t, err)
	require.Len(t, migrations, 2)
	assert.Equal(t, "001_a.sql", migrations[0].Name)
	assert.Equal(t, "002_b.sql", migrations[1].Name)
}

func TestEmbeddedBeverages(t *testing.T) {
	migrations, err := Load(Files)
	require.NoError(t, err)
	require.NotEmpty(t, migrations)

	assert.Equal(t, "001_beverages.sql", migrations[0].Name)
	require.Len(t, migrations[0].Statements, 2)
	assert.Contains(t, migrations[0].Statements[0], "CREATE TABLE beverages")
	assert.Contains(t, migrations[0].Statements[0], "PRIMARY KEY (dataset, row_index)")
}

func TestPending(t *testing.T) {
	existing := []string{
		"CREATE TABLE beverages (\n  dataset STRING(64) NOT NULL,\n) PRIMARY KEY (dataset, row_index)",
	}
	statements := []string{
		"CREATE TABLE beverages (dataset STRING(64) NOT NULL) PRIMARY KEY (dataset)",
		"CREATE INDEX beverages_by_identity ON beverages(dataset, cafe, name)",
		"ALTER TABLE beverages ADD COLUMN note STRING(MAX)",
	}

	pending := Pending(existing, statements)
	assert.Equal(t, statements[1:], pending)

	assert.Equal(t, statements, Pending(nil, statements))
	assert.Empty(t, Pending(append(existing, "create unique index `BEVERAGES_BY_IDENTITY` on beverages(cafe)"), statements[:2]))
}
